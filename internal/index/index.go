package index

import (
	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/btree"
	"github.com/scigo/hdf5ro/internal/heap"
	"github.com/scigo/hdf5ro/internal/message"
	"github.com/scigo/hdf5ro/internal/object"
	"github.com/scigo/hdf5ro/internal/superblock"
)

// Attribute is an attribute attached to a group or dataset, with its raw
// element bytes still undecoded — decoding into a concrete Go type
// happens on demand in the hdf5 package via internal/dtype.
type Attribute struct {
	Name      string
	Datatype  *message.Datatype
	Dataspace *message.Dataspace
	Data      []byte
}

// Dataset is a leaf object: its element type and shape, and the address
// and byte size of its contiguous data block.
type Dataset struct {
	Name       string
	Datatype   *message.Datatype
	Dataspace  *message.Dataspace
	Address    uint64
	Size       uint64
	Attributes []*Attribute
}

// Group is an internal tree node: named child groups and datasets, plus
// its own attributes.
type Group struct {
	Name       string
	Groups     map[string]*Group
	Datasets   map[string]*Dataset
	Attributes []*Attribute
}

// Build walks the file's object graph starting at the superblock's root
// group and returns the fully-resolved tree.
func Build(r *binary.Reader, sb *superblock.Superblock) (*Group, error) {
	return buildGroup(r, "", sb.RootGroupAddress, sb.RootGroupBTreeAddress, sb.RootGroupLocalHeapAddress)
}

func buildGroup(r *binary.Reader, name string, address, btreeAddr, heapAddr uint64) (*Group, error) {
	hdr, err := object.Read(r, address)
	if err != nil {
		return nil, err
	}

	g := &Group{
		Name:       name,
		Groups:     make(map[string]*Group),
		Datasets:   make(map[string]*Dataset),
		Attributes: buildAttributes(hdr),
	}

	symTab := hdr.SymbolTable()
	if symTab != nil {
		btreeAddr = symTab.BTreeAddress
		heapAddr = symTab.LocalHeapAddress
	}

	localHeap, err := heap.ReadLocalHeap(r, heapAddr)
	if err != nil {
		return nil, err
	}

	entries, err := btree.ReadGroupEntries(r, btreeAddr, localHeap)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		memberHdr, err := object.Read(r, entry.ObjectAddress)
		if err != nil {
			return nil, err
		}

		switch classify(memberHdr) {
		case kindGroup:
			child, err := buildGroup(r, entry.Name, entry.ObjectAddress, 0, 0)
			if err != nil {
				return nil, err
			}
			g.Groups[entry.Name] = child
		case kindDataset:
			ds, err := buildDataset(entry.Name, memberHdr)
			if err != nil {
				return nil, err
			}
			g.Datasets[entry.Name] = ds
		default:
			return nil, &binary.ParseError{Kind: binary.KindUnrecognizedObject, Context: "object header", Path: entry.Name}
		}
	}

	return g, nil
}

func buildDataset(name string, hdr *object.Header) (*Dataset, error) {
	layout := hdr.DataLayout()
	return &Dataset{
		Name:       name,
		Datatype:   hdr.Datatype(),
		Dataspace:  hdr.Dataspace(),
		Address:    layout.Address,
		Size:       layout.Size,
		Attributes: buildAttributes(hdr),
	}, nil
}

func buildAttributes(hdr *object.Header) []*Attribute {
	msgs := hdr.Attributes()
	out := make([]*Attribute, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, &Attribute{Name: m.Name, Datatype: m.Datatype, Dataspace: m.Dataspace, Data: m.Data})
	}
	return out
}

type objectKind uint8

const (
	kindUnknown objectKind = iota
	kindGroup
	kindDataset
)

func classify(hdr *object.Header) objectKind {
	if hdr.SymbolTable() != nil {
		return kindGroup
	}
	if hdr.Dataspace() != nil && hdr.Datatype() != nil {
		if layout := hdr.DataLayout(); layout != nil && layout.IsContiguous() {
			return kindDataset
		}
	}
	return kindUnknown
}
