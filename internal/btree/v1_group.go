package btree

import (
	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/heap"
)

// GroupEntry is a single hard-linked member discovered while walking a
// group's B-tree: a name resolved through the local heap, paired with the
// address of the member's own object header.
type GroupEntry struct {
	Name          string
	ObjectAddress uint64
}

var btreeSignature = []byte{'T', 'R', 'E', 'E'}
var snodSignature = []byte{'S', 'N', 'O', 'D'}

/*
V1 B-tree node layout ("TREE"):

	0   4  Signature
	4   1  Node type (0 = group)
	5   1  Node level (0 = leaf)
	6   2  Entries used
	8   O  Left sibling address
	8+O O  Right sibling address
	var    entries_used * (key(L) + child pointer(O))

A level-0 node's child pointers address Symbol Table Nodes; a node at any
higher level addresses further B-tree nodes, and ReadGroupEntries descends
through as many levels as the tree has.
*/

// ReadGroupEntries walks the B-tree rooted at btreeAddr to completion,
// recursing through every internal level, and returns every member found
// in its leaf Symbol Table Nodes.
func ReadGroupEntries(r *binary.Reader, btreeAddr uint64, localHeap *heap.LocalHeap) ([]GroupEntry, error) {
	return readBTreeNode(r, btreeAddr, localHeap)
}

func readBTreeNode(r *binary.Reader, address uint64, localHeap *heap.LocalHeap) ([]GroupEntry, error) {
	nr := r.At(int64(address))

	if err := nr.ExpectMagic("group btree node", btreeSignature); err != nil {
		return nil, err
	}

	nodeType, err := nr.ReadUint8()
	if err != nil {
		return nil, err
	}
	if nodeType != 0 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVariant, Context: "group btree node type", Offset: nr.Pos() - 1, Value: uint64(nodeType)}
	}

	nodeLevel, err := nr.ReadUint8()
	if err != nil {
		return nil, err
	}

	entriesUsed, err := nr.ReadUint16()
	if err != nil {
		return nil, err
	}

	nr.Skip(int64(nr.OffsetSize())) // left sibling
	nr.Skip(int64(nr.OffsetSize())) // right sibling

	var entries []GroupEntry

	for i := uint16(0); i < entriesUsed; i++ {
		if _, err := nr.ReadLength(); err != nil { // key
			return nil, err
		}
		childAddr, err := nr.ReadOffset()
		if err != nil {
			return nil, err
		}

		var childEntries []GroupEntry
		if nodeLevel == 0 {
			childEntries, err = readSymbolTableNode(r, childAddr, localHeap)
		} else {
			childEntries, err = readBTreeNode(r, childAddr, localHeap)
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, childEntries...)
	}

	return entries, nil
}

func readSymbolTableNode(r *binary.Reader, address uint64, localHeap *heap.LocalHeap) ([]GroupEntry, error) {
	nr := r.At(int64(address))

	if err := nr.ExpectMagic("symbol table node", snodSignature); err != nil {
		return nil, err
	}

	version, err := nr.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "symbol table node", Offset: nr.Pos() - 1, Version: version}
	}

	nr.Skip(1) // reserved

	numSymbols, err := nr.ReadUint16()
	if err != nil {
		return nil, err
	}

	entries := make([]GroupEntry, 0, numSymbols)
	for i := uint16(0); i < numSymbols; i++ {
		entry, err := readSymbolTableEntry(nr, localHeap)
		if err != nil {
			return nil, err
		}
		if entry.Name != "" {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

/*
Symbol table entry layout (always this shape, regardless of cache type):

	0    O  Link name offset (into the group's local heap)
	O    O  Object header address
	2O   4  Cache type
	2O+4 4  Reserved
	2O+8 16 Scratch-pad (cache-type specific; unused here — only hard
	        links are represented)
*/
func readSymbolTableEntry(r *binary.Reader, localHeap *heap.LocalHeap) (GroupEntry, error) {
	var entry GroupEntry

	nameOffset, err := r.ReadOffset()
	if err != nil {
		return entry, err
	}
	objAddr, err := r.ReadOffset()
	if err != nil {
		return entry, err
	}
	r.Skip(4)  // cache type
	r.Skip(4)  // reserved
	r.Skip(16) // scratch-pad

	entry.Name = localHeap.GetString(nameOffset)
	entry.ObjectAddress = objAddr
	return entry, nil
}
