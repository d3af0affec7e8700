package hdf5

import (
	"github.com/scigo/hdf5ro/internal/index"
	"github.com/scigo/hdf5ro/internal/message"
)

// Attribute is an attribute attached to a group or dataset. Its value is
// read with the package-level ReadAttr, which needs the owning File to
// resolve variable-length strings through the global heap.
type Attribute struct {
	idx *index.Attribute
}

// Name returns the attribute name.
func (a *Attribute) Name() string { return a.idx.Name }

// Shape returns the attribute's dimensions, or nil for a scalar.
func (a *Attribute) Shape() []uint64 {
	if a.idx.Dataspace == nil || a.idx.Dataspace.IsScalar() {
		return nil
	}
	return a.idx.Dataspace.Dimensions
}

// NumElements returns the attribute's element count.
func (a *Attribute) NumElements() uint64 {
	if a.idx.Dataspace == nil {
		return 1
	}
	return a.idx.Dataspace.NumElements()
}

// IsScalar reports whether the attribute holds a single value.
func (a *Attribute) IsScalar() bool {
	return a.idx.Dataspace == nil || a.idx.Dataspace.IsScalar()
}

// DtypeClass returns the attribute's raw HDF5 datatype class.
func (a *Attribute) DtypeClass() message.DatatypeClass {
	if a.idx.Datatype == nil {
		return 0
	}
	return a.idx.Datatype.Class
}
