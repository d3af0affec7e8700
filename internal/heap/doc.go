// Package heap implements the two heap structures HDF5 uses to store
// variable-length data alongside the fixed-width structural records.
//
// # Local Heap
//
// The [LocalHeap] ("HEAP") holds a group's member names as
// null-terminated strings; symbol-table entries reference them by byte
// offset via [LocalHeap.GetString].
//
// # Global Heap
//
// The [GlobalHeap] ("GCOL") holds variable-length attribute values — in
// this library's scope, variable-length strings. A [GlobalHeapID]
// (collection address + object index) is embedded directly in the
// attribute's raw data and is resolved with [ReadGlobalHeap] plus
// [GlobalHeap.GetString].
package heap
