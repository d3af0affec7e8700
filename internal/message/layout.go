package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// LayoutClass is a data layout message's storage class.
type LayoutClass uint8

const (
	LayoutCompact    LayoutClass = 0
	LayoutContiguous LayoutClass = 1
	LayoutChunked    LayoutClass = 2
	LayoutVirtual    LayoutClass = 3
)

// DataLayout describes where a dataset's raw data lives (message 0x0008).
// Only the version-3 contiguous form is fully parsed: compact and chunked
// storage are out of scope, so [DataLayout.Address] and [DataLayout.Size]
// are the only fields this library's dataset reader consults.
type DataLayout struct {
	Version uint8
	Class   LayoutClass
	Address uint64
	Size    uint64
}

func (m *DataLayout) Type() Type { return TypeDataLayout }

func (m *DataLayout) IsContiguous() bool { return m.Class == LayoutContiguous }

/*
Version-3 data layout message:

	0  1  Version (3)
	1  1  Class
	2  var  Class-specific layout

Contiguous class-specific layout:

	0  O  Address
	O  L  Size
*/
func parseDataLayout(data []byte, r *binary.Reader) (*DataLayout, error) {
	if len(data) < 2 {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "data layout message", Need: int64(2 - len(data))}
	}

	version := data[0]
	if version != 3 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "data layout message", Version: version}
	}

	layout := &DataLayout{Version: version, Class: LayoutClass(data[1])}
	if layout.Class != LayoutContiguous {
		return layout, nil
	}

	offsetSize := r.OffsetSize()
	lengthSize := r.LengthSize()
	body := data[2:]
	if len(body) < offsetSize+lengthSize {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "contiguous data layout", Need: int64(offsetSize + lengthSize - len(body))}
	}
	layout.Address = binary.DecodeUint(body[0:offsetSize])
	layout.Size = binary.DecodeUint(body[offsetSize : offsetSize+lengthSize])

	return layout, nil
}
