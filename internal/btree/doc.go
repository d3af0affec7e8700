// Package btree implements the v1 "TREE" B-tree used to index a group's
// members in a v0 superblock file.
//
// A group's members are found by descending its B-tree (general recursive
// descent through any number of internal levels) down to leaf Symbol
// Table Nodes ("SNOD"), each holding a run of symbol-table entries whose
// names are resolved through the group's [heap.LocalHeap]. [ReadGroupEntries]
// performs the whole walk and returns the flattened member list.
//
// Only hard links are represented; soft and external links are out of
// scope.
package btree
