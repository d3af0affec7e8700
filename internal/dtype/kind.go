package dtype

import (
	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/message"
)

// Elem is the closed set of Go types a View/Attr caller may request.
// Unlike the teacher's reflection-driven GoType mapping, this is a
// sealed constraint: adding a new element representation means adding a
// Kind and a branch in [DecodeSlice], never opening the set to arbitrary
// caller-provided types.
type Elem interface {
	int32 | int64 | float32 | float64 | bool | string
}

// Kind is the runtime tag for one of the types in [Elem].
type Kind uint8

const (
	KindInt32 Kind = iota
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// kindOf reports the Kind corresponding to the generic parameter T,
// resolved once via a type switch on the zero value rather than carried
// as runtime state.
func kindOf[T Elem]() Kind {
	var zero T
	switch any(zero).(type) {
	case int32:
		return KindInt32
	case int64:
		return KindInt64
	case float32:
		return KindFloat32
	case float64:
		return KindFloat64
	case bool:
		return KindBool
	case string:
		return KindString
	default:
		panic("dtype: unreachable, Elem is a sealed constraint")
	}
}

// KindOf classifies a file datatype into the Kind this library would
// materialize it as, or fails with KindUnsupportedDatatype for any class
// or width this library doesn't represent (Compound, Array, Bitfield,
// Opaque, Reference, Time, unsigned Fixed-Point, non-boolean Enum, or a
// Fixed-Point/Float-Point width other than 4 or 8 bytes).
func KindOf(dt *message.Datatype) (Kind, error) {
	switch dt.Class {
	case message.ClassFixedPoint:
		if !dt.Signed {
			break
		}
		switch dt.Size {
		case 4:
			return KindInt32, nil
		case 8:
			return KindInt64, nil
		}
	case message.ClassFloatPoint:
		switch dt.Size {
		case 4:
			return KindFloat32, nil
		case 8:
			return KindFloat64, nil
		}
	case message.ClassString:
		return KindString, nil
	case message.ClassVarLen:
		if dt.IsVarLenString {
			return KindString, nil
		}
	case message.ClassEnum:
		if dt.IsBoolEnum {
			return KindBool, nil
		}
	}
	return 0, &binary.ParseError{Kind: binary.KindUnsupportedDatatype, Context: "datatype", Class: uint8(dt.Class), Size: dt.Size, Bitfields: dt.ClassBits}
}
