package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigo/hdf5ro/internal/binary"
)

func TestParseFillValueUndefined(t *testing.T) {
	data := []byte{2, 1, 1, 0}
	fv, err := parseFillValue(data)
	require.NoError(t, err)
	assert.False(t, fv.IsDefined)
	assert.Nil(t, fv.Value)
}

func TestParseFillValueDefined(t *testing.T) {
	data := []byte{2, 1, 1, 1, 4, 0, 0, 0, 0xde, 0xad, 0xbe, 0xef}
	fv, err := parseFillValue(data)
	require.NoError(t, err)
	assert.True(t, fv.IsDefined)
	assert.Equal(t, uint32(4), fv.Size)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, fv.Value)
}

func TestParseFillValueTruncatedHeader(t *testing.T) {
	_, err := parseFillValue([]byte{2, 1})
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindTruncated, pe.Kind)
}

func TestParseFillValueTruncatedData(t *testing.T) {
	data := []byte{2, 1, 1, 1, 4, 0, 0, 0, 0xde}
	_, err := parseFillValue(data)
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindTruncated, pe.Kind)
}
