// Package index builds the frozen Group/Dataset/Attribute tree read once,
// eagerly, when a file is opened — rather than re-walking B-trees and
// re-parsing object headers on every lookup, the way the teacher's lazy
// per-call path resolution did.
//
// [Build] starts at the superblock's root group, classifies every member
// an object header describes as either a group (it carries a Symbol
// Table message) or a dataset (it carries Dataspace, Datatype, and
// contiguous Data Layout messages), and recurses. An object header that
// is neither fails with [binary.KindUnrecognizedObject].
package index
