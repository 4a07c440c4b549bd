package riff

import "encoding/binary"

// Cursor is a bounds-checked read position over a byte slice. Multi-byte
// integers are decoded in the byte order fixed at construction; tag reads
// return the four bytes exactly as stored. A failed read leaves the position
// unchanged.
type Cursor struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// NewCursor creates a cursor over data starting at position 0.
func NewCursor(data []byte, order binary.ByteOrder) *Cursor {
	return &Cursor{data: data, order: order}
}

// ReadUint32 reads a 32-bit unsigned integer and advances the position.
func (c *Cursor) ReadUint32() (uint32, error) {
	if c.Remaining() < 4 {
		return 0, &TruncatedError{Offset: c.pos}
	}
	v := c.order.Uint32(c.data[c.pos : c.pos+4])
	c.pos += 4
	return v, nil
}

// ReadTag reads four raw bytes and advances the position. The byte order
// parameter never applies to tags.
func (c *Cursor) ReadTag() (FourCC, error) {
	if c.Remaining() < 4 {
		return FourCC{}, &TruncatedError{Offset: c.pos}
	}
	var t FourCC
	copy(t[:], c.data[c.pos:c.pos+4])
	c.pos += 4
	return t, nil
}

// Pos returns the current read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Seek sets the read position. Positions past the end of the data are legal;
// the next read reports the truncation.
func (c *Cursor) Seek(pos int) {
	c.pos = pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	if c.pos >= len(c.data) {
		return 0
	}
	return len(c.data) - c.pos
}
