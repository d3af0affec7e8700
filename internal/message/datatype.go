package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// DatatypeClass is an HDF5 datatype class code. Only the classes this
// library materializes into Go values are parsed in detail; the rest
// (Time, Bitfield, Opaque, Compound, Reference, Array) are recognized
// only well enough to report [binary.KindUnsupportedDatatype].
type DatatypeClass uint8

const (
	ClassFixedPoint DatatypeClass = 0
	ClassFloatPoint DatatypeClass = 1
	ClassTime       DatatypeClass = 2
	ClassString     DatatypeClass = 3
	ClassBitfield   DatatypeClass = 4
	ClassOpaque     DatatypeClass = 5
	ClassCompound   DatatypeClass = 6
	ClassReference  DatatypeClass = 7
	ClassEnum       DatatypeClass = 8
	ClassVarLen     DatatypeClass = 9
	ClassArray      DatatypeClass = 10
)

// ByteOrder is a numeric datatype's byte order bit.
type ByteOrder uint8

const (
	OrderLE ByteOrder = 0
	OrderBE ByteOrder = 1
)

// StringPadding is a fixed-length string's padding convention.
type StringPadding uint8

const (
	PadNullTerm StringPadding = 0
	PadNullPad  StringPadding = 1
	PadSpacePad StringPadding = 2
)

// Datatype describes the element type of a dataset or attribute
// (message 0x0003).
type Datatype struct {
	Class     DatatypeClass
	ClassBits uint32
	Size      uint32

	ByteOrder ByteOrder

	// Fixed-point
	Signed bool

	// String
	StringPadding StringPadding

	// Enum: this library represents only the boolean special case, a
	// 1-byte enum with two members, surfaced as a Go bool.
	IsBoolEnum bool

	// Variable-length
	IsVarLenString bool
}

func (m *Datatype) Type() Type { return TypeDatatype }

func (m *Datatype) IsInteger() bool { return m.Class == ClassFixedPoint }
func (m *Datatype) IsFloat() bool   { return m.Class == ClassFloatPoint }
func (m *Datatype) IsString() bool {
	return m.Class == ClassString || (m.Class == ClassVarLen && m.IsVarLenString)
}
func (m *Datatype) IsBool() bool   { return m.Class == ClassEnum && m.IsBoolEnum }
func (m *Datatype) IsVarLen() bool { return m.Class == ClassVarLen }

/*
Datatype message layout:

	0     1    Class (low nibble) and version (high nibble)
	1     3    Class bit field
	4     4    Size, in bytes
	8     var  Class-specific properties

Fixed-point properties: bit offset(2) + bit precision(2).
Float-point properties: bit offset(2) + bit precision(2) + exponent
location(1) + exponent size(1) + mantissa location(1) + mantissa size(1)
+ exponent bias(4).
String: no properties.
Enum: a base (fixed-point) datatype followed by name/value pairs — only
consulted here to recognize the 1-byte boolean special case.
Variable-length: the base datatype, a complete datatype message; the
sequence/string variant is carried in the class bit field, and only the
string variant is recognized.
*/
func parseDatatype(data []byte) (*Datatype, error) {
	dt, _, err := parseDatatypeWithSize(data)
	return dt, err
}

func parseDatatypeWithSize(data []byte) (*Datatype, int, error) {
	if len(data) < 8 {
		return nil, 0, &binary.ParseError{Kind: binary.KindTruncated, Context: "datatype message", Need: int64(8 - len(data))}
	}

	classAndVersion := data[0]
	class := DatatypeClass(classAndVersion & 0x0F)
	classBits := uint32(data[1]) | uint32(data[2])<<8 | uint32(data[3])<<16
	size := uint32(binary.DecodeUint(data[4:8]))

	dt := &Datatype{Class: class, ClassBits: classBits, Size: size}
	props := data[8:]

	switch class {
	case ClassFixedPoint:
		dt.ByteOrder = ByteOrder(classBits & 0x01)
		dt.Signed = classBits&0x08 != 0
		return dt, 8 + 4, nil

	case ClassFloatPoint:
		dt.ByteOrder = ByteOrder(classBits & 0x01)
		return dt, 8 + 12, nil

	case ClassString:
		dt.StringPadding = StringPadding(classBits & 0x0F)
		return dt, 8, nil

	case ClassEnum:
		baseVersion := classAndVersion >> 4
		numMembers := int(classBits & 0xFFFF)
		dt.IsBoolEnum = size == 1 && numMembers == 2
		// base type (8 bytes + its own properties) + numMembers *
		// (name, padded per baseVersion, + value of base size)
		baseSize := 4
		if baseVersion < 3 {
			baseSize = 4 // fixed-point base properties are always 4 bytes
		}
		consumed := 8 + 8 + baseSize
		for i := 0; i < numMembers && consumed < len(props)+8; i++ {
			nameEnd := 0
			for consumed-8+nameEnd < len(props) && props[consumed-8+nameEnd] != 0 {
				nameEnd++
			}
			nameLen := nameEnd + 1
			if baseVersion < 3 {
				nameLen = int(binary.Pad8(int64(nameLen)))
			}
			consumed += nameLen + int(size)
		}
		return dt, consumed, nil

	case ClassVarLen:
		dt.IsVarLenString = (classBits & 0x0F) == 1
		baseType, baseLen, err := parseDatatypeWithSize(props)
		if err != nil {
			return dt, 8, nil //nolint:nilerr // tolerate an unparsed base type; IsVarLenString is already known
		}
		_ = baseType
		return dt, 8 + baseLen, nil

	default:
		// Compound, Array, Bitfield, Opaque, Reference, Time: recognized
		// but not decoded. Callers that need an element value from one of
		// these classes get KindUnsupportedDatatype.
		return dt, len(data), nil
	}
}
