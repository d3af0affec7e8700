// Package message parses the object-header messages this library cares
// about: dataspace, datatype, data layout, fill value, attribute, symbol
// table, object-header continuation, and the old-style modification time.
// Every other message type — filter pipelines, v2 link messages, shared
// message tables, and the rest of HDF5's larger message catalogue — is
// out of scope and is carried through as [Unknown] rather than rejected,
// matching the format's own forward-compatibility rule that an object
// header reader must tolerate message types it doesn't understand.
package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// Type is an HDF5 header message type code.
type Type uint16

const (
	TypeNIL                       Type = 0x0000
	TypeDataspace                 Type = 0x0001
	TypeLinkInfo                  Type = 0x0002
	TypeDatatype                  Type = 0x0003
	TypeFillValueOld              Type = 0x0004
	TypeFillValue                 Type = 0x0005
	TypeLink                      Type = 0x0006
	TypeExternalDataFiles         Type = 0x0007
	TypeDataLayout                Type = 0x0008
	TypeBogus                     Type = 0x0009
	TypeGroupInfo                 Type = 0x000A
	TypeFilterPipeline            Type = 0x000B
	TypeAttribute                 Type = 0x000C
	TypeObjectComment             Type = 0x000D
	TypeObjectModTime             Type = 0x000E
	TypeSharedMessageTable        Type = 0x000F
	TypeObjectHeaderContinuation  Type = 0x0010
	TypeSymbolTable               Type = 0x0011
	TypeObjectModificationTimeOld Type = 0x0012
	TypeBTreeKValues              Type = 0x0013
	TypeDriverInfo                Type = 0x0014
	TypeAttributeInfo             Type = 0x0015
	TypeObjectRefCount            Type = 0x0016
)

// Message is implemented by every parsed header message.
type Message interface {
	Type() Type
}

// Parse dispatches a message frame's raw data to its type-specific
// parser. Types outside the closed set this library understands are
// wrapped in [Unknown] rather than failing the whole header.
func Parse(typ Type, data []byte, flags uint8, r *binary.Reader) (Message, error) {
	switch typ {
	case TypeDataspace:
		return parseDataspace(data, r)
	case TypeDatatype:
		return parseDatatype(data)
	case TypeDataLayout:
		return parseDataLayout(data, r)
	case TypeFillValue:
		return parseFillValue(data)
	case TypeAttribute:
		return parseAttribute(data, r)
	case TypeSymbolTable:
		return parseSymbolTable(data, r)
	case TypeObjectModificationTimeOld:
		return parseModificationTime(data)
	default:
		return &Unknown{typ: typ, data: data}, nil
	}
}

// Unknown carries the raw bytes of a message type this library doesn't
// interpret, so a header's message count and continuation bookkeeping
// stay correct even when a message body is never decoded.
type Unknown struct {
	typ  Type
	data []byte
}

func (m *Unknown) Type() Type   { return m.typ }
func (m *Unknown) Data() []byte { return m.data }

// Continuation points at another span of header messages living
// elsewhere in the file.
type Continuation struct {
	Offset uint64
	Length uint64
}

func (m *Continuation) Type() Type { return TypeObjectHeaderContinuation }

// ParseContinuation decodes a continuation message: two fixed 8-byte
// fields (offset, then length), never parameterized by the superblock's
// offset/length sizes.
func ParseContinuation(data []byte) (*Continuation, error) {
	const want = 16
	if len(data) < want {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "continuation message", Need: int64(want - len(data))}
	}
	return &Continuation{
		Offset: binary.DecodeUint(data[0:8]),
		Length: binary.DecodeUint(data[8:16]),
	}, nil
}

// ModificationTime is the legacy (type 0x0012) object modification time
// message: a plain Unix timestamp, superseded in later files by the
// richer timestamp fields on a v2 object header, which this library does
// not read.
type ModificationTime struct {
	Seconds uint32
}

func (m *ModificationTime) Type() Type { return TypeObjectModificationTimeOld }

// parseModificationTime reads version(1), three reserved bytes, then the
// 4-byte seconds-since-epoch value.
func parseModificationTime(data []byte) (*ModificationTime, error) {
	if len(data) < 8 {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "modification time message", Need: int64(8 - len(data))}
	}
	return &ModificationTime{Seconds: uint32(binary.DecodeUint(data[4:8]))}, nil
}
