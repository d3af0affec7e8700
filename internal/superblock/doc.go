// Package superblock parses the HDF5 file superblock, the fixed entry
// point that locates the root group and establishes the address and
// length widths used throughout the rest of the file.
//
// # Scope
//
// Only superblock version 0 is supported, at file offset 0 only. Versions
// 1-3 and the multi-offset search HDF5 uses to tolerate a leading user
// block are out of scope: every file this library targets is a plain,
// version-0 superblock starting at byte 0.
//
// # File Signature
//
// HDF5 files are identified by an 8-byte signature at the start of the
// superblock: 0x89 H D F \r \n 0x1a \n.
//
// # Root Group Resolution
//
// Version 0 embeds a full symbol-table entry for the root group: link
// name offset, object header address, a cache type, and — unconditionally,
// regardless of cache type — the address of the root group's own B-tree
// and local heap. [Read] parses all of these fields eagerly so callers
// never need to special-case the root group when walking the rest of the
// tree.
package superblock
