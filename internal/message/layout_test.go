package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigo/hdf5ro/internal/binary"
)

func TestParseDataLayoutContiguous(t *testing.T) {
	data := make([]byte, 2+8+8)
	data[0] = 3
	data[1] = byte(LayoutContiguous)
	putDim(data, 2, 4096)
	putDim(data, 10, 64)

	layout, err := parseDataLayout(data, testReader())
	require.NoError(t, err)
	assert.True(t, layout.IsContiguous())
	assert.Equal(t, uint64(4096), layout.Address)
	assert.Equal(t, uint64(64), layout.Size)
}

func TestParseDataLayoutNonContiguousShortCircuits(t *testing.T) {
	data := []byte{3, byte(LayoutChunked)}
	layout, err := parseDataLayout(data, testReader())
	require.NoError(t, err)
	assert.False(t, layout.IsContiguous())
	assert.Equal(t, uint64(0), layout.Address)
}

func TestParseDataLayoutUnsupportedVersion(t *testing.T) {
	data := []byte{1, byte(LayoutContiguous)}
	_, err := parseDataLayout(data, testReader())
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindUnsupportedVersion, pe.Kind)
}

func TestParseDataLayoutTruncatedBody(t *testing.T) {
	data := []byte{3, byte(LayoutContiguous), 0x01, 0x02}
	_, err := parseDataLayout(data, testReader())
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindTruncated, pe.Kind)
}
