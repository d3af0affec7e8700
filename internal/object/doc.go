// Package object parses version-1 HDF5 object headers: the reference
// count and message stream attached to every group and dataset.
//
// Version 1 is the only format this library reads; the newer
// version-2 ("OHDR"-signed) layout is out of scope. [Read] detects the
// version byte and fails with a structured error for anything else.
//
// # Continuations
//
// A header's messages can spill into one or more continuation blocks
// elsewhere in the file. [readV1] resolves these with an explicit LIFO
// stack of resume points rather than recursion: on a continuation
// message, the position just after it is pushed onto the stack and
// reading switches to the continuation block; when a window runs out, the
// most recent resume point is popped, so messages come out in stream
// order. Exhausting a window with no resume point left is the normal,
// successful end of the header.
package object
