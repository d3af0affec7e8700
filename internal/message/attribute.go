package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// Attribute is an attribute message (0x000C): a name, its element
// datatype and dataspace, and the raw element bytes. Only the version-1
// wire form — where the name, datatype, and dataspace sub-fields are each
// padded out to an 8-byte boundary — is supported; versions 2 and 3 drop
// that padding and are out of scope.
type Attribute struct {
	Version       uint8
	Name          string
	DatatypeSize  uint16
	DataspaceSize uint16
	Datatype      *Datatype
	Dataspace     *Dataspace
	Data          []byte
}

func (m *Attribute) Type() Type { return TypeAttribute }

/*
Version-1 attribute message:

	0   1  Version (1)
	1   1  Reserved
	2   2  Name size (including null terminator)
	4   2  Datatype size
	6   2  Dataspace size
	8   var  Name, padded to 8-byte boundary
	var var  Datatype, padded to 8-byte boundary
	var var  Dataspace, padded to 8-byte boundary
	var var  Element data
*/
func parseAttribute(data []byte, r *binary.Reader) (*Attribute, error) {
	if len(data) < 8 {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "attribute message", Need: int64(8 - len(data))}
	}

	version := data[0]
	if version != 1 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "attribute message", Version: version}
	}

	attr := &Attribute{Version: version}
	nameSize := uint16(binary.DecodeUint(data[2:4]))
	attr.DatatypeSize = uint16(binary.DecodeUint(data[4:6]))
	attr.DataspaceSize = uint16(binary.DecodeUint(data[6:8]))

	offset := 8

	if offset+int(nameSize) > len(data) {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "attribute name", Need: int64(offset + int(nameSize) - len(data))}
	}
	nameEnd := offset
	for nameEnd < offset+int(nameSize) && data[nameEnd] != 0 {
		nameEnd++
	}
	attr.Name = string(data[offset:nameEnd])
	offset = int(binary.Pad8(int64(offset + int(nameSize))))

	if offset+int(attr.DatatypeSize) > len(data) {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "attribute datatype", Need: int64(offset + int(attr.DatatypeSize) - len(data))}
	}
	dt, err := parseDatatype(data[offset : offset+int(attr.DatatypeSize)])
	if err != nil {
		return nil, err
	}
	attr.Datatype = dt
	offset = int(binary.Pad8(int64(offset + int(attr.DatatypeSize))))

	if offset+int(attr.DataspaceSize) > len(data) {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "attribute dataspace", Need: int64(offset + int(attr.DataspaceSize) - len(data))}
	}
	ds, err := parseDataspace(data[offset:offset+int(attr.DataspaceSize)], r)
	if err != nil {
		return nil, err
	}
	attr.Dataspace = ds
	offset = int(binary.Pad8(int64(offset + int(attr.DataspaceSize))))

	if offset < len(data) {
		attr.Data = append([]byte(nil), data[offset:]...)
	}

	return attr, nil
}
