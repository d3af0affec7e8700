// Package message parses the HDF5 object-header message types this
// library reads: Dataspace (0x0001), Datatype (0x0003), Fill Value
// (0x0005), Data Layout (0x0008, contiguous only), Attribute (0x000C),
// Symbol Table (0x0011), Object Header Continuation (0x0010), and the
// legacy Object Modification Time (0x0012).
//
// Every other message type is preserved as [Unknown] rather than
// rejected — an object header reader must tolerate message types it
// doesn't recognize, since the format reserves the right to add new ones.
//
// # Datatype Classes
//
// [Datatype] decodes Fixed-Point and Float-Point numerics, fixed-length
// Strings, the boolean special case of Enum (a 1-byte enum with exactly
// two members), and the string variant of Variable-Length. Compound,
// Array, Bitfield, Opaque, Reference, and Time are recognized by class
// code only, never materialized into element values.
package message
