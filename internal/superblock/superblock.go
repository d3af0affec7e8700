package superblock

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// Signature is the 8-byte magic every HDF5 file begins with.
var Signature = []byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'}

// Superblock is the parsed version-0 superblock: the file's signature
// block, offset/length widths, and the root group's symbol-table entry.
type Superblock struct {
	Version    uint8
	OffsetSize uint8
	LengthSize uint8

	GroupLeafNodeK     uint16
	GroupInternalNodeK uint16

	BaseAddress uint64
	EOFAddress  uint64

	// RootGroupAddress is the root group's object header address.
	RootGroupAddress uint64
	// RootGroupBTreeAddress and RootGroupLocalHeapAddress come from the
	// root symbol-table entry's scratch-pad, read unconditionally
	// alongside the object header address (see symbolTableEntry below).
	RootGroupBTreeAddress     uint64
	RootGroupLocalHeapAddress uint64
}

/*
Version 0 superblock layout (offset 0 only):

	0      8    Signature
	8      1    Version (0)
	9      1    Free-space storage version
	10     1    Root group symbol table entry version
	11     1    Reserved
	12     1    Shared header message format version
	13     1    Size of offsets (O)
	14     1    Size of lengths (L)
	15     1    Reserved
	16     2    Group leaf node K
	18     2    Group internal node K
	20     4    File consistency flags
	24     O    Base address
	24+O   O    Free-space info address
	24+2O  O    EOF address
	24+3O  O    Driver info block address
	24+4O  var  Root group symbol table entry

Root group symbol table entry (unconditional on cache type, per §4.3):

	0      O    Link name offset
	O      O    Object header address
	2O     4    Cache type
	2O+4   4    Reserved
	2O+8   O    Address of B-tree (scratch-pad)
	2O+8+O O    Address of local heap (scratch-pad)
*/

// Read locates the version-0 superblock at offset 0 and parses it.
func Read(buf []byte) (*Superblock, error) {
	r := binary.NewReader(buf, binary.Config{OffsetSize: 8, LengthSize: 8})

	if err := r.ExpectMagic("superblock", Signature); err != nil {
		return nil, err
	}

	version, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "superblock", Offset: r.Pos() - 1, Version: version}
	}

	r.Skip(1) // free-space storage version
	r.Skip(1) // root group symbol table entry version
	r.Skip(1) // reserved

	r.Skip(1) // shared header message format version

	offsetSize, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	lengthSize, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	r.Skip(1) // reserved

	groupLeafNodeK, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}
	groupInternalNodeK, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	r.Skip(4) // file consistency flags

	sb := &Superblock{
		Version:            version,
		OffsetSize:         offsetSize,
		LengthSize:         lengthSize,
		GroupLeafNodeK:     groupLeafNodeK,
		GroupInternalNodeK: groupInternalNodeK,
	}

	r = r.WithSizes(int(offsetSize), int(lengthSize))

	sb.BaseAddress, err = r.ReadOffset()
	if err != nil {
		return nil, err
	}
	r.Skip(int64(offsetSize)) // free-space info address

	sb.EOFAddress, err = r.ReadOffset()
	if err != nil {
		return nil, err
	}
	r.Skip(int64(offsetSize)) // driver info block address

	r.Skip(int64(offsetSize)) // link name offset, always 0 for the root group

	sb.RootGroupAddress, err = r.ReadOffset()
	if err != nil {
		return nil, err
	}
	r.Skip(4) // cache type
	r.Skip(4) // reserved

	sb.RootGroupBTreeAddress, err = r.ReadOffset()
	if err != nil {
		return nil, err
	}
	sb.RootGroupLocalHeapAddress, err = r.ReadOffset()
	if err != nil {
		return nil, err
	}

	return sb, nil
}

// ReaderConfig returns the binary.Config derived from this superblock's
// offset/length widths.
func (sb *Superblock) ReaderConfig() binary.Config {
	return binary.Config{OffsetSize: int(sb.OffsetSize), LengthSize: int(sb.LengthSize)}
}
