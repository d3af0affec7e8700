package hdf5

import (
	"fmt"
	"os"
	"strings"

	"github.com/edsrzf/mmap-go"

	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/index"
	"github.com/scigo/hdf5ro/internal/superblock"
)

// File is an open HDF5 file: a read-only memory mapping plus the tree
// built from it once, at Open. No part of this library ever writes to
// the mapping.
type File struct {
	path   string
	osFile *os.File
	mapped mmap.MMap
	reader *binary.Reader
	sb     *superblock.Superblock
	root   *Group
	closed bool
}

// Open memory-maps path read-only, parses its superblock, and eagerly
// builds the group/dataset/attribute tree before returning. A malformed
// file fails here, not on first lookup.
func Open(path string) (*File, error) {
	osFile, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Err: err}
	}

	mapped, err := mmap.Map(osFile, mmap.RDONLY, 0)
	if err != nil {
		osFile.Close()
		return nil, &IOError{Op: "mmap", Err: err}
	}

	sb, err := superblock.Read(mapped)
	if err != nil {
		mapped.Unmap()
		osFile.Close()
		return nil, fmt.Errorf("reading superblock: %w", err)
	}

	if sb.EOFAddress > uint64(len(mapped)) {
		mapped.Unmap()
		osFile.Close()
		return nil, &binary.ParseError{Kind: binary.KindTruncated, Context: "superblock", Need: int64(sb.EOFAddress) - int64(len(mapped))}
	}

	reader := binary.NewReader(mapped, sb.ReaderConfig())

	rootIdx, err := index.Build(reader, sb)
	if err != nil {
		mapped.Unmap()
		osFile.Close()
		return nil, fmt.Errorf("building index: %w", err)
	}

	return &File{
		path:   path,
		osFile: osFile,
		mapped: mapped,
		reader: reader,
		sb:     sb,
		root:   &Group{idx: rootIdx, path: "/"},
	}, nil
}

// Close unmaps the file and releases its OS handle. Slices previously
// returned by View/ViewTyped MUST NOT be used after Close.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	if err := f.mapped.Unmap(); err != nil {
		f.osFile.Close()
		return &IOError{Op: "munmap", Err: err}
	}
	if err := f.osFile.Close(); err != nil {
		return &IOError{Op: "close", Err: err}
	}
	return nil
}

// Root returns the root group.
func (f *File) Root() *Group { return f.root }

// Path returns the filesystem path this handle was opened from.
func (f *File) Path() string { return f.path }

// Version returns the superblock version (always 0 for a file this
// library can open).
func (f *File) Version() int { return int(f.sb.Version) }

// OpenGroup resolves an absolute or root-relative slash-separated path to
// a group.
func (f *File) OpenGroup(path string) (*Group, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.root.OpenGroup(path)
}

// OpenDataset resolves an absolute or root-relative slash-separated path
// to a dataset.
func (f *File) OpenDataset(path string) (*Dataset, error) {
	if f.closed {
		return nil, ErrClosed
	}
	return f.root.OpenDataset(path)
}

// View returns the dataset at path as raw, undecoded element bytes: a
// sub-slice of the mapping, not a copy. At each path segment a dataset
// hit takes precedence over a group of the same name.
func (f *File) View(path string) ([]byte, error) {
	if f.closed {
		return nil, ErrClosed
	}
	ds, err := f.resolveDataset(path)
	if err != nil {
		return nil, err
	}
	return f.reader.At(int64(ds.Address)).ReadBytes(int(ds.Size))
}

// resolveDataset walks path through the group tree, returning the
// dataset at the terminal segment.
func (f *File) resolveDataset(path string) (*index.Dataset, error) {
	parts := SplitPath(path)
	if len(parts) == 0 {
		return nil, notFound(path)
	}

	cur := f.root.idx
	for _, name := range parts[:len(parts)-1] {
		child, ok := cur.Groups[name]
		if !ok {
			return nil, notFound(path)
		}
		cur = child
	}

	last := parts[len(parts)-1]
	if ds, ok := cur.Datasets[last]; ok {
		return ds, nil
	}
	return nil, notFound(path)
}

// String renders the file's structure: groups and datasets recursively,
// with datasets shown as their dimensions and element kind only, plus
// every attribute name along the way.
func (f *File) String() string {
	var b strings.Builder
	writeGroup(&b, f.root, 0)
	return b.String()
}
