package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// DataspaceType distinguishes a dataspace's shape.
type DataspaceType uint8

const (
	DataspaceScalar DataspaceType = 0
	DataspaceSimple DataspaceType = 1
	DataspaceNull   DataspaceType = 2
)

// Dataspace describes a dataset or attribute's shape (message 0x0001).
type Dataspace struct {
	Version    uint8
	Rank       int
	SpaceType  DataspaceType
	Dimensions []uint64
	MaxDims    []uint64 // nil when not present
}

func (m *Dataspace) Type() Type { return TypeDataspace }

// NumElements returns the dataspace's element count.
func (m *Dataspace) NumElements() uint64 {
	switch m.SpaceType {
	case DataspaceNull:
		return 0
	case DataspaceScalar:
		return 1
	case DataspaceSimple:
		if len(m.Dimensions) == 0 {
			return 0
		}
		n := uint64(1)
		for _, d := range m.Dimensions {
			n *= d
		}
		return n
	default:
		return 0
	}
}

func (m *Dataspace) IsScalar() bool { return m.SpaceType == DataspaceScalar }
func (m *Dataspace) IsNull() bool   { return m.SpaceType == DataspaceNull }

/*
Dataspace message layout:

	0   1    Version
	1   1    Rank
	2   1    Flags (bit 0: max dimensions present)
	3   1    Type (version >= 2 only); version 1 has 5 reserved bytes (3..7) instead
	var L*Rank  Dimension sizes
	var L*Rank  Max dimension sizes, if flag bit 0 set
*/
func parseDataspace(data []byte, r *binary.Reader) (*Dataspace, error) {
	if len(data) < 4 {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "dataspace message", Need: int64(4 - len(data))}
	}

	ds := &Dataspace{Version: data[0], Rank: int(data[1])}
	hasMaxDims := data[2]&0x01 != 0

	if ds.Version >= 2 {
		ds.SpaceType = DataspaceType(data[3])
	} else if ds.Rank == 0 {
		ds.SpaceType = DataspaceScalar
	} else {
		ds.SpaceType = DataspaceSimple
	}

	if ds.SpaceType != DataspaceSimple || ds.Rank == 0 {
		return ds, nil
	}

	offset := 4
	if ds.Version == 1 {
		offset = 8 // 5 reserved bytes follow the flags byte in version 1
	}

	lengthSize := r.LengthSize()
	if lengthSize == 0 {
		lengthSize = 8
	}

	ds.Dimensions = make([]uint64, ds.Rank)
	for i := 0; i < ds.Rank; i++ {
		if offset+lengthSize > len(data) {
			return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "dataspace dimensions", Need: int64(offset + lengthSize - len(data))}
		}
		ds.Dimensions[i] = binary.DecodeUint(data[offset : offset+lengthSize])
		offset += lengthSize
	}

	if hasMaxDims {
		ds.MaxDims = make([]uint64, ds.Rank)
		for i := 0; i < ds.Rank; i++ {
			if offset+lengthSize > len(data) {
				return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "dataspace max dimensions", Need: int64(offset + lengthSize - len(data))}
			}
			ds.MaxDims[i] = binary.DecodeUint(data[offset : offset+lengthSize])
			offset += lengthSize
		}
	}

	return ds, nil
}
