package object

import (
	"github.com/scigo/hdf5ro/internal/binary"
	"github.com/scigo/hdf5ro/internal/message"
)

/*
Version 1 object header layout:

	0    1    Version (1)
	1    1    Reserved
	2    2    Number of header messages
	4    4    Object reference count
	8    4    Object header size (bytes of messages)
	12   4    Reserved (alignment to 8 bytes)
	16   var  Header messages, 8-byte aligned

Each message frame:

	0   2   Message type
	2   2   Size of message data
	4   1   Flags
	5   3   Reserved
	8   var Message data, then padding to an 8-byte boundary
*/

// resumePoint is a continuation window still waiting to be read.
type resumePoint struct {
	pos int64
	end int64
}

func readV1(r *binary.Reader, address uint64) (*Header, error) {
	version, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if version != 1 {
		return nil, &binary.ParseError{Kind: binary.KindUnsupportedVersion, Context: "object header", Offset: r.Pos() - 1, Version: version}
	}

	r.Skip(1) // reserved

	numMessages, err := r.ReadUint16()
	if err != nil {
		return nil, err
	}

	refCount, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	headerSize, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}

	hdr := &Header{
		Version:  1,
		Address:  address,
		RefCount: refCount,
		Messages: make([]message.Message, 0, numMessages),
	}

	r.Align(8)

	// The message stream can spill across multiple disjoint windows
	// (the primary window plus zero or more continuation blocks). Rather
	// than recursing into a continuation, the position just after the
	// continuation frame is pushed onto an explicit LIFO stack and reading
	// switches to the continuation block; when a window is exhausted, the
	// most recent resume point is popped and reading carries on there.
	var stack []resumePoint
	pos := r.Pos()
	end := pos + int64(headerSize)

	for {
		cur := r.At(pos)
		for cur.Pos() < end {
			msgType, err := cur.ReadUint16()
			if err != nil {
				return nil, err
			}
			dataSize, err := cur.ReadUint16()
			if err != nil {
				return nil, err
			}
			flags, err := cur.ReadUint8()
			if err != nil {
				return nil, err
			}
			cur.Skip(3) // reserved

			data, err := cur.ReadBytes(int(dataSize))
			if err != nil {
				return nil, err
			}
			cur.Align(8)

			if msgType == 0 { // NIL
				continue
			}

			if message.Type(msgType) == message.TypeObjectHeaderContinuation {
				cont, err := message.ParseContinuation(data)
				if err != nil {
					return nil, err
				}
				stack = append(stack, resumePoint{pos: cur.Pos(), end: end})
				cur = r.At(int64(cont.Offset))
				end = int64(cont.Offset + cont.Length)
				continue
			}

			msg, err := message.Parse(message.Type(msgType), data, flags, r)
			if err != nil {
				return nil, err
			}
			if msg.Type() == message.TypeObjectModificationTimeOld {
				hdr.ModTime = msg.(*message.ModificationTime).Seconds
			}
			hdr.Messages = append(hdr.Messages, msg)
		}

		if len(stack) == 0 {
			break
		}
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		pos, end = next.pos, next.end
	}

	return hdr, nil
}
