// Package dtype materializes HDF5 datatype bytes into Go values over the
// closed set of element types this library supports — a sealed generic
// constraint and a kind-dispatch table, rather than the open
// reflection-based type mapping a writer-capable library needs.
//
// # Supported Elements
//
// [Elem] admits exactly int32, int64, float32, float64, bool, and string.
// [KindOf] classifies a [message.Datatype] into the matching [Kind], and
// [DecodeSlice] decodes a contiguous run of raw element bytes into a
// []T for the T the caller asked for, failing with
// [binary.KindTypeMismatch] if the file's datatype doesn't match. A
// string element may come from a fixed-length string field or, via a
// [heap.GlobalHeap] lookup, a variable-length one.
package dtype
