package hdf5

import (
	"path"

	"github.com/scigo/hdf5ro/internal/index"
	"github.com/scigo/hdf5ro/internal/message"
)

// Dataset is a leaf object: its shape and element type, plus any
// attributes attached to it. Reading element values is done through the
// package-level ViewTyped, which needs the owning File to resolve
// variable-length strings.
type Dataset struct {
	idx  *index.Dataset
	path string
}

// Name returns the dataset's name, the last path component.
func (d *Dataset) Name() string { return path.Base(d.path) }

// Path returns the full path to this dataset.
func (d *Dataset) Path() string { return d.path }

// Shape returns the dataset's dimensions, or nil for a scalar.
func (d *Dataset) Shape() []uint64 {
	if d.idx.Dataspace.IsScalar() {
		return nil
	}
	return d.idx.Dataspace.Dimensions
}

// Rank returns the number of dimensions.
func (d *Dataset) Rank() int { return d.idx.Dataspace.Rank }

// NumElements returns the total element count.
func (d *Dataset) NumElements() uint64 { return d.idx.Dataspace.NumElements() }

// IsScalar reports whether the dataset holds a single value.
func (d *Dataset) IsScalar() bool { return d.idx.Dataspace.IsScalar() }

// DtypeSize returns the size in bytes of one element.
func (d *Dataset) DtypeSize() int { return int(d.idx.Datatype.Size) }

// DtypeClass returns the element's raw HDF5 datatype class.
func (d *Dataset) DtypeClass() message.DatatypeClass { return d.idx.Datatype.Class }

// Attrs returns the names of this dataset's attributes.
func (d *Dataset) Attrs() []string {
	names := make([]string, 0, len(d.idx.Attributes))
	for _, a := range d.idx.Attributes {
		names = append(names, a.Name)
	}
	return names
}

// Attr returns an attribute by name, or nil if not present.
func (d *Dataset) Attr(name string) *Attribute {
	for _, a := range d.idx.Attributes {
		if a.Name == name {
			return &Attribute{idx: a}
		}
	}
	return nil
}

// HasAttr reports whether the dataset has an attribute with the given name.
func (d *Dataset) HasAttr(name string) bool {
	return d.Attr(name) != nil
}
