package riff

import "fmt"

// UnrecognizedFormatError is returned when a file does not begin with one of
// the two supported magic values.
type UnrecognizedFormatError struct {
	Magic FourCC // first four bytes of the file
}

func (e *UnrecognizedFormatError) Error() string {
	return fmt.Sprintf("unrecognized container format: file magic is %s, want 'RIFX' or 'XFIR'", e.Magic)
}

// TruncatedError is returned when fewer bytes remain than a read requires.
// Offset is the position the failed read started at.
type TruncatedError struct {
	Offset int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("unexpected end of data at offset %d", e.Offset)
}

// OverrunError is returned when a chunk's declared length would extend past
// the end of its enclosing container. The walk cannot continue: a bad length
// field poisons every offset computed after it.
type OverrunError struct {
	Index  uint32 // traversal index of the offending chunk
	Offset int    // offset of the chunk header from file start
	Length uint32 // declared payload length
	Limit  int    // end offset of the enclosing container
}

func (e *OverrunError) Error() string {
	return fmt.Sprintf("chunk #%d at offset %d overruns its container: declared length %d ends at %d, container ends at %d (%d bytes remain)",
		e.Index, e.Offset, e.Length, e.Offset+headerSize+int(e.Length), e.Limit, e.Limit-e.Offset-headerSize)
}
