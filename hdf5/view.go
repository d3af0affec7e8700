package hdf5

import (
	"github.com/scigo/hdf5ro/internal/dtype"
)

// Elem is the closed set of Go types a dataset or attribute value may be
// requested as: int32, int64, float32, float64, bool, or string. Fixed-
// and variable-length strings both materialise as Go string.
type Elem = dtype.Elem

// ViewTyped decodes the dataset at path into a []T, failing with a
// ParseError{Kind: KindTypeMismatch} if the file's element kind doesn't
// match T.
func ViewTyped[T Elem](f *File, path string) ([]T, error) {
	if f.closed {
		return nil, ErrClosed
	}
	ds, err := f.resolveDataset(path)
	if err != nil {
		return nil, err
	}
	raw, err := f.reader.At(int64(ds.Address)).ReadBytes(int(ds.Size))
	if err != nil {
		return nil, err
	}
	return dtype.DecodeSlice[T](ds.Datatype, raw, ds.Dataspace.NumElements(), f.reader)
}

// Attr reads a root-group attribute by simple name, decoding it as T.
// Fails with KindNotFound if no such attribute exists, or
// KindTypeMismatch if its element kind doesn't match T.
func Attr[T Elem](f *File, name string) (T, error) {
	var zero T
	if f.closed {
		return zero, ErrClosed
	}
	for _, a := range f.root.idx.Attributes {
		if a.Name != name {
			continue
		}
		vals, err := dtype.DecodeSlice[T](a.Datatype, a.Data, a.Dataspace.NumElements(), f.reader)
		if err != nil {
			return zero, err
		}
		if len(vals) == 0 {
			return zero, notFound(name)
		}
		return vals[0], nil
	}
	return zero, notFound(name)
}

// ReadAttr decodes any Group's or Dataset's attribute as a []T. Unlike
// Attr, which looks a root attribute up by name, this takes an Attribute
// already obtained from Group.Attr/Dataset.Attr so it works for
// attributes anywhere in the tree.
func ReadAttr[T Elem](f *File, a *Attribute) ([]T, error) {
	if f.closed {
		return nil, ErrClosed
	}
	n := uint64(1)
	if a.idx.Dataspace != nil {
		n = a.idx.Dataspace.NumElements()
	}
	return dtype.DecodeSlice[T](a.idx.Datatype, a.idx.Data, n, f.reader)
}
