package dtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/message"
)

func TestKindOfFixedPoint(t *testing.T) {
	k, err := KindOf(&message.Datatype{Class: message.ClassFixedPoint, Signed: true, Size: 4})
	require.NoError(t, err)
	assert.Equal(t, KindInt32, k)

	k, err = KindOf(&message.Datatype{Class: message.ClassFixedPoint, Signed: true, Size: 8})
	require.NoError(t, err)
	assert.Equal(t, KindInt64, k)
}

func TestKindOfUnsignedFixedPointRejected(t *testing.T) {
	_, err := KindOf(&message.Datatype{Class: message.ClassFixedPoint, Signed: false, Size: 4})
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindUnsupportedDatatype, pe.Kind)
}

func TestKindOfFloatPoint(t *testing.T) {
	k, err := KindOf(&message.Datatype{Class: message.ClassFloatPoint, Size: 4})
	require.NoError(t, err)
	assert.Equal(t, KindFloat32, k)

	k, err = KindOf(&message.Datatype{Class: message.ClassFloatPoint, Size: 8})
	require.NoError(t, err)
	assert.Equal(t, KindFloat64, k)
}

func TestKindOfString(t *testing.T) {
	k, err := KindOf(&message.Datatype{Class: message.ClassString, Size: 16})
	require.NoError(t, err)
	assert.Equal(t, KindString, k)
}

func TestKindOfVarLenString(t *testing.T) {
	k, err := KindOf(&message.Datatype{Class: message.ClassVarLen, IsVarLenString: true})
	require.NoError(t, err)
	assert.Equal(t, KindString, k)
}

func TestKindOfVarLenNonStringRejected(t *testing.T) {
	_, err := KindOf(&message.Datatype{Class: message.ClassVarLen, IsVarLenString: false})
	require.Error(t, err)
}

func TestKindOfBoolEnum(t *testing.T) {
	k, err := KindOf(&message.Datatype{Class: message.ClassEnum, IsBoolEnum: true, Size: 1})
	require.NoError(t, err)
	assert.Equal(t, KindBool, k)
}

func TestKindOfNonBoolEnumRejected(t *testing.T) {
	_, err := KindOf(&message.Datatype{Class: message.ClassEnum, IsBoolEnum: false, Size: 1})
	require.Error(t, err)
}

func TestKindOfUnsupportedClassesRejected(t *testing.T) {
	for _, class := range []message.DatatypeClass{
		message.ClassCompound, message.ClassArray, message.ClassBitfield,
		message.ClassOpaque, message.ClassReference, message.ClassTime,
	} {
		_, err := KindOf(&message.Datatype{Class: class})
		require.Error(t, err, "class %v should be unsupported", class)
		var pe *binary.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, binary.KindUnsupportedDatatype, pe.Kind)
	}
}

func TestKindOfWrongWidthRejected(t *testing.T) {
	_, err := KindOf(&message.Datatype{Class: message.ClassFixedPoint, Signed: true, Size: 2})
	require.Error(t, err)
}
