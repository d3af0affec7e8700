package heap

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// LocalHeap stores the variable-length names of a group's members. Every
// v0 superblock group has exactly one, reachable via the symbol-table
// entry's scratch pad.
type LocalHeap struct {
	DataSize    uint64
	FreeOffset  uint64
	DataAddress uint64
	data        []byte
}

var localHeapSignature = []byte{'H', 'E', 'A', 'P'}

/*
Local heap layout:

	0   4   Signature "HEAP"
	4   1   Version (0)
	5   3   Reserved
	8   L   Data segment size
	8+L L   Offset to head of free list
	8+2L O  Data segment address
*/

// ReadLocalHeap reads the local heap header at address and its data
// segment.
func ReadLocalHeap(r *binary.Reader, address uint64) (*LocalHeap, error) {
	hr := r.At(int64(address))

	if err := hr.ExpectMagic("local heap", localHeapSignature); err != nil {
		return nil, err
	}

	version, err := hr.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "local heap", Offset: hr.Pos() - 1, Version: version}
	}

	hr.Skip(3) // reserved

	dataSize, err := hr.ReadLength()
	if err != nil {
		return nil, err
	}
	freeOffset, err := hr.ReadLength()
	if err != nil {
		return nil, err
	}
	dataAddr, err := hr.ReadOffset()
	if err != nil {
		return nil, err
	}

	h := &LocalHeap{DataSize: dataSize, FreeOffset: freeOffset, DataAddress: dataAddr}

	dr := r.At(int64(dataAddr))
	h.data, err = dr.ReadBytes(int(dataSize))
	if err != nil {
		return nil, err
	}

	return h, nil
}

// GetString returns the null-terminated string starting at offset within
// the heap's data segment.
func (h *LocalHeap) GetString(offset uint64) string {
	if offset >= uint64(len(h.data)) {
		return ""
	}
	end := offset
	for end < uint64(len(h.data)) && h.data[end] != 0 {
		end++
	}
	return string(h.data[offset:end])
}
