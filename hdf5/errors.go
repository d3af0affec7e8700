// Package hdf5 provides a pure Go, read-only implementation for opening
// HDF5 version-0-superblock files and viewing their groups, datasets, and
// attributes.
package hdf5

import (
	"fmt"

	"github.com/scigo/hdf5ro/internal/binary"
)

// ParseError is the structured error every malformed-input failure
// returns: a Kind discriminant plus kind-specific context, in the spirit
// of strconv.NumError. It is an alias for internal/binary's type so
// errors.As works directly against this exported name without this
// module's callers ever importing an internal package.
type ParseError = binary.ParseError

// ErrKind discriminates the cause of a ParseError.
type ErrKind = binary.ErrKind

// The kinds a ParseError can carry. See ParseError's fields for which
// kind-specific payload each one populates.
const (
	KindBadMagic            = binary.KindBadMagic
	KindExpectedTag         = binary.KindExpectedTag
	KindUnsupportedVersion  = binary.KindUnsupportedVersion
	KindUnsupportedVariant  = binary.KindUnsupportedVariant
	KindUnsupportedDatatype = binary.KindUnsupportedDatatype
	KindTruncated           = binary.KindTruncated
	KindNotFound            = binary.KindNotFound
	KindTypeMismatch        = binary.KindTypeMismatch
	KindUnrecognizedObject  = binary.KindUnrecognizedObject
)

// IOError wraps a filesystem or memory-mapping failure encountered while
// opening a file. Unwrap returns the underlying error unchanged, so
// errors.Is/As still see through it.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("hdf5: %s: %v", e.Op, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }

// Sentinel errors for the navigation helpers (Group/Dataset lookups).
// Malformed-file conditions use ParseError instead.
var (
	ErrNotDataset = fmt.Errorf("hdf5: object is not a dataset")
	ErrNotGroup   = fmt.Errorf("hdf5: object is not a group")
	ErrClosed     = fmt.Errorf("hdf5: file is closed")
)

func notFound(path string) error {
	return &ParseError{Kind: KindNotFound, Path: path}
}
