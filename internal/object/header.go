// Package object parses HDF5 version-1 object headers: the message
// stream attached to every group, dataset, and committed datatype.
package object

import (
	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/message"
)

// Header is a parsed object header: its reference count and the flat,
// continuation-resolved sequence of messages describing the object.
type Header struct {
	Version  uint8
	Address  uint64
	RefCount uint32
	Messages []message.Message
	ModTime  uint32 // from an Object Modification Time (Old) message, if present
}

// Read parses the version-1 object header at address. Only version 1 is
// supported; the version-2 "OHDR"-signed format is out of scope.
func Read(r *binary.Reader, address uint64) (*Header, error) {
	hr := r.At(int64(address))

	version, err := hr.Peek(1)
	if err != nil {
		return nil, err
	}
	if version[0] != 1 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "object header", Offset: hr.Pos(), Version: version[0]}
	}

	return readV1(hr, address)
}

// GetMessage returns the first message of the given type, or nil.
func (h *Header) GetMessage(typ message.Type) message.Message {
	for _, msg := range h.Messages {
		if msg.Type() == typ {
			return msg
		}
	}
	return nil
}

// GetMessages returns every message of the given type.
func (h *Header) GetMessages(typ message.Type) []message.Message {
	var out []message.Message
	for _, msg := range h.Messages {
		if msg.Type() == typ {
			out = append(out, msg)
		}
	}
	return out
}

func (h *Header) Dataspace() *message.Dataspace {
	if msg := h.GetMessage(message.TypeDataspace); msg != nil {
		return msg.(*message.Dataspace)
	}
	return nil
}

func (h *Header) Datatype() *message.Datatype {
	if msg := h.GetMessage(message.TypeDatatype); msg != nil {
		return msg.(*message.Datatype)
	}
	return nil
}

func (h *Header) DataLayout() *message.DataLayout {
	if msg := h.GetMessage(message.TypeDataLayout); msg != nil {
		return msg.(*message.DataLayout)
	}
	return nil
}

func (h *Header) SymbolTable() *message.SymbolTable {
	if msg := h.GetMessage(message.TypeSymbolTable); msg != nil {
		return msg.(*message.SymbolTable)
	}
	return nil
}

func (h *Header) Attributes() []*message.Attribute {
	msgs := h.GetMessages(message.TypeAttribute)
	out := make([]*message.Attribute, 0, len(msgs))
	for _, msg := range msgs {
		out = append(out, msg.(*message.Attribute))
	}
	return out
}
