package message

import (
	"github.com/scigo/hdf5ro/internal/binary"
)

// SymbolTable points a group's object header at the B-tree and local
// heap that hold its members (message 0x0011).
type SymbolTable struct {
	BTreeAddress     uint64
	LocalHeapAddress uint64
}

func (m *SymbolTable) Type() Type { return TypeSymbolTable }

func parseSymbolTable(data []byte, r *binary.Reader) (*SymbolTable, error) {
	offsetSize := r.OffsetSize()
	if len(data) < 2*offsetSize {
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "symbol table message", Need: int64(2*offsetSize - len(data))}
	}
	return &SymbolTable{
		BTreeAddress:     binary.DecodeUint(data[0:offsetSize]),
		LocalHeapAddress: binary.DecodeUint(data[offsetSize : 2*offsetSize]),
	}, nil
}
