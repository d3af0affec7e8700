package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/message"
)

func putU16(b []byte, at int, v uint16) {
	b[at] = byte(v)
	b[at+1] = byte(v >> 8)
}

func putU32(b []byte, at int, v uint32) {
	for i := 0; i < 4; i++ {
		b[at+i] = byte(v >> (8 * i))
	}
}

func putU64(b []byte, at int, v uint64) {
	for i := 0; i < 8; i++ {
		b[at+i] = byte(v >> (8 * i))
	}
}

// buildHeaderWithContinuation lays out a version-1 object header whose
// primary window holds a scalar dataspace message and a continuation
// message pointing at a second window (address 200) holding a single
// modification-time message.
func buildHeaderWithContinuation() []byte {
	buf := make([]byte, 216)

	buf[0] = 1 // version
	putU16(buf, 2, 2)  // numMessages
	putU32(buf, 4, 1)  // refCount
	putU32(buf, 8, 40) // headerSize (primary window byte length)

	// Message 1 at offset 16: dataspace, scalar.
	putU16(buf, 16, uint16(message.TypeDataspace))
	putU16(buf, 18, 4) // dataSize
	buf[20] = 0        // flags
	copy(buf[24:28], []byte{1, 0, 0, 0})

	// Message 2 at offset 32: continuation pointing at address 200, length 16.
	putU16(buf, 32, uint16(message.TypeObjectHeaderContinuation))
	putU16(buf, 34, 16) // dataSize
	putU64(buf, 40, 200)
	putU64(buf, 48, 16)

	// Second window at address 200: modification time message.
	putU16(buf, 200, uint16(message.TypeObjectModificationTimeOld))
	putU16(buf, 202, 8) // dataSize
	buf[208] = 1        // version
	putU32(buf, 212, 12345)

	return buf
}

func TestReadV1HeaderWithContinuation(t *testing.T) {
	buf := buildHeaderWithContinuation()
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	hdr, err := Read(r, 0)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), hdr.RefCount)
	require.Len(t, hdr.Messages, 2)
	assert.NotNil(t, hdr.Dataspace())
	assert.True(t, hdr.Dataspace().IsScalar())
	assert.Equal(t, uint32(12345), hdr.ModTime)
}

func TestReadV1HeaderUnsupportedVersion(t *testing.T) {
	buf := make([]byte, 16)
	buf[0] = 2
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	_, err := Read(r, 0)
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindUnsupportedVersion, pe.Kind)
}

func TestHeaderGetMessage(t *testing.T) {
	hdr := &Header{Messages: []message.Message{
		&message.Datatype{Class: message.ClassFloatPoint, Size: 8},
		&message.Dataspace{SpaceType: message.DataspaceScalar},
	}}
	assert.Nil(t, hdr.SymbolTable())
	require.NotNil(t, hdr.Datatype())
	assert.Equal(t, message.ClassFloatPoint, hdr.Datatype().Class)
}
