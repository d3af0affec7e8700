package message

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigo/hdf5ro/internal/binary"
)

func TestParseSymbolTable(t *testing.T) {
	data := make([]byte, 16)
	putDim(data, 0, 128)
	putDim(data, 8, 256)

	st, err := parseSymbolTable(data, testReader())
	require.NoError(t, err)
	assert.Equal(t, uint64(128), st.BTreeAddress)
	assert.Equal(t, uint64(256), st.LocalHeapAddress)
}

func TestParseSymbolTableSmallerOffsetSize(t *testing.T) {
	r := binary.NewReader(nil, binary.Config{OffsetSize: 4, LengthSize: 4})
	data := make([]byte, 8)
	data[0] = 0x10
	data[4] = 0x20

	st, err := parseSymbolTable(data, r)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x10), st.BTreeAddress)
	assert.Equal(t, uint64(0x20), st.LocalHeapAddress)
}

func TestParseSymbolTableTruncated(t *testing.T) {
	_, err := parseSymbolTable(make([]byte, 4), testReader())
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindTruncated, pe.Kind)
}
