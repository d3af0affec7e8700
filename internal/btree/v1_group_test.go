package btree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/heap"
)

func putLE(b []byte, at int, n int, v uint64) {
	for i := 0; i < n; i++ {
		b[at+i] = byte(v >> (8 * i))
	}
}

// buildGroupFixture lays out, back to back starting at address 0: a local
// heap holding the name "alpha", a single-entry level-0 "TREE" node, and
// the "SNOD" leaf it points at.
func buildGroupFixture(t *testing.T) (buf []byte, heapAddr, treeAddr uint64) {
	t.Helper()

	const headerSize = 32 // HEAP signature+version+reserved(8) + dataSize(8) + freeOffset(8) + dataAddr(8)
	heapData := append([]byte{0x00}, append([]byte("alpha"), 0x00)...)
	heapBuf := make([]byte, headerSize+len(heapData))
	copy(heapBuf[0:4], []byte("HEAP"))
	putLE(heapBuf, 8, 8, uint64(len(heapData)))
	putLE(heapBuf, 16, 8, 0)
	putLE(heapBuf, 24, 8, uint64(headerSize))
	copy(heapBuf[headerSize:], heapData)

	heapAddr = 0
	treeAddr = uint64(len(heapBuf))

	treeHeader := make([]byte, 24) // signature+type+level+entriesUsed+leftSib+rightSib
	copy(treeHeader[0:4], btreeSignature)
	treeHeader[4] = 0 // node type: group
	treeHeader[5] = 0 // level 0
	putLE(treeHeader, 6, 2, 1)

	snodAddr := treeAddr + uint64(len(treeHeader)) + 16 // one (key+child) entry follows

	treeEntry := make([]byte, 16) // key(8) + child offset(8)
	putLE(treeEntry, 8, 8, snodAddr)

	treeBuf := append(treeHeader, treeEntry...)

	snodHeader := make([]byte, 8) // signature+version+reserved+numSymbols
	copy(snodHeader[0:4], snodSignature)
	snodHeader[4] = 1 // version
	putLE(snodHeader, 6, 2, 1)

	snodEntry := make([]byte, 40) // nameOffset(8)+objAddr(8)+cacheType(4)+reserved(4)+scratchpad(16)
	putLE(snodEntry, 0, 8, 1)     // name offset 1 -> "alpha"
	putLE(snodEntry, 8, 8, 9999)  // object header address

	snodBuf := append(snodHeader, snodEntry...)

	buf = append(append(append([]byte(nil), heapBuf...), treeBuf...), snodBuf...)
	return buf, heapAddr, treeAddr
}

// buildMultiLevelFixture lays out a local heap holding "alpha" and "beta",
// two level-0 leaf TREE nodes each pointing at its own single-entry SNOD,
// and one level-1 internal TREE node whose two entries point at those leaf
// nodes, exercising readBTreeNode's recursive nodeLevel != 0 branch.
func buildMultiLevelFixture(t *testing.T) (buf []byte, heapAddr, rootTreeAddr uint64) {
	t.Helper()

	const headerSize = 32
	heapData := []byte{0x00}
	aOffset := uint64(len(heapData))
	heapData = append(heapData, append([]byte("alpha"), 0x00)...)
	bOffset := uint64(len(heapData))
	heapData = append(heapData, append([]byte("beta"), 0x00)...)

	heapBuf := make([]byte, headerSize+len(heapData))
	copy(heapBuf[0:4], []byte("HEAP"))
	putLE(heapBuf, 8, 8, uint64(len(heapData)))
	putLE(heapBuf, 16, 8, 0)
	putLE(heapBuf, 24, 8, uint64(headerSize))
	copy(heapBuf[headerSize:], heapData)

	heapAddr = 0
	buf = append([]byte(nil), heapBuf...)

	buildLeaf := func(nameOffset, objAddr uint64) (snodAddr, treeAddr uint64) {
		snodHeader := make([]byte, 8)
		copy(snodHeader[0:4], snodSignature)
		snodHeader[4] = 1
		putLE(snodHeader, 6, 2, 1)

		snodEntry := make([]byte, 40)
		putLE(snodEntry, 0, 8, nameOffset)
		putLE(snodEntry, 8, 8, objAddr)

		snodAddr = uint64(len(buf))
		buf = append(buf, snodHeader...)
		buf = append(buf, snodEntry...)

		treeHeader := make([]byte, 24)
		copy(treeHeader[0:4], btreeSignature)
		treeHeader[4] = 0 // node type: group
		treeHeader[5] = 0 // level 0 (leaf)
		putLE(treeHeader, 6, 2, 1)

		treeEntry := make([]byte, 16)
		putLE(treeEntry, 8, 8, snodAddr)

		treeAddr = uint64(len(buf))
		buf = append(buf, treeHeader...)
		buf = append(buf, treeEntry...)
		return snodAddr, treeAddr
	}

	_, leafTreeA := buildLeaf(aOffset, 9001)
	_, leafTreeB := buildLeaf(bOffset, 9002)

	rootHeader := make([]byte, 24)
	copy(rootHeader[0:4], btreeSignature)
	rootHeader[4] = 0 // node type: group
	rootHeader[5] = 1 // level 1 (internal)
	putLE(rootHeader, 6, 2, 2)

	entryA := make([]byte, 16)
	putLE(entryA, 8, 8, leafTreeA)
	entryB := make([]byte, 16)
	putLE(entryB, 8, 8, leafTreeB)

	rootTreeAddr = uint64(len(buf))
	buf = append(buf, rootHeader...)
	buf = append(buf, entryA...)
	buf = append(buf, entryB...)

	return buf, heapAddr, rootTreeAddr
}

func TestReadGroupEntriesMultiLevel(t *testing.T) {
	buf, heapAddr, rootTreeAddr := buildMultiLevelFixture(t)
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	localHeap, err := heap.ReadLocalHeap(r, heapAddr)
	require.NoError(t, err)

	entries, err := ReadGroupEntries(r, rootTreeAddr, localHeap)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Name, entries[1].Name}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)

	for _, e := range entries {
		switch e.Name {
		case "alpha":
			assert.Equal(t, uint64(9001), e.ObjectAddress)
		case "beta":
			assert.Equal(t, uint64(9002), e.ObjectAddress)
		}
	}
}

func TestReadGroupEntries(t *testing.T) {
	buf, heapAddr, treeAddr := buildGroupFixture(t)
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	localHeap, err := heap.ReadLocalHeap(r, heapAddr)
	require.NoError(t, err)

	entries, err := ReadGroupEntries(r, treeAddr, localHeap)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, uint64(9999), entries[0].ObjectAddress)
}

func TestReadGroupEntriesBadMagic(t *testing.T) {
	buf := make([]byte, 64)
	copy(buf, "XXXX")
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	_, err := readBTreeNode(r, 0, &heap.LocalHeap{})
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindBadMagic, pe.Kind)
}

func TestReadGroupEntriesWrongNodeType(t *testing.T) {
	buf := make([]byte, 24)
	copy(buf[0:4], btreeSignature)
	buf[4] = 1 // chunk node type, not a group node
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	_, err := readBTreeNode(r, 0, &heap.LocalHeap{})
	require.Error(t, err)
	var pe *binary.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, binary.KindUnsupportedVariant, pe.Kind)
}
