package riff

import (
	"encoding/binary"
	"fmt"
	"os"
)

const headerSize = 8 // 4-byte tag + 4-byte length

// File is a parsed RIFX/XFIR container: the whole file buffer plus the
// properties detected from its first bytes. It is immutable after Parse, so
// any number of walks (concurrent or not) may share it.
type File struct {
	data     []byte
	order    binary.ByteOrder
	reversed bool
	size     uint32
	kind     FourCC
}

// Open reads path into memory and parses it.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return f, nil
}

// Parse detects the container variant from data and prepares it for walking.
// 'RIFX' means big-endian integers; 'XFIR' means little-endian integers with
// tag bytes stored in reversed spelling. Tag bytes themselves are never
// transformed; the reversal only matters when displaying a tag's conceptual
// name. Any other magic fails before any chunk is looked at.
func Parse(data []byte) (*File, error) {
	cur := NewCursor(data, binary.BigEndian)

	magic, err := cur.ReadTag()
	if err != nil {
		return nil, err
	}

	f := &File{data: data}
	switch magic {
	case TagRIFX:
		f.order = binary.BigEndian
	case TagXFIR:
		f.order = binary.LittleEndian
		f.reversed = true
	default:
		return nil, &UnrecognizedFormatError{Magic: magic}
	}

	cur = NewCursor(data, f.order)
	cur.Seek(4)
	if f.size, err = cur.ReadUint32(); err != nil {
		return nil, err
	}
	if f.kind, err = cur.ReadTag(); err != nil {
		return nil, err
	}
	return f, nil
}

// ByteOrder returns the integer byte order selected by the file magic.
func (f *File) ByteOrder() binary.ByteOrder {
	return f.order
}

// Reversed reports whether tags in this file are stored in reversed spelling
// (the XFIR variant).
func (f *File) Reversed() bool {
	return f.reversed
}

// Kind returns the root chunk's sub-type tag, e.g. the tag identifying a
// Director movie.
func (f *File) Kind() FourCC {
	return f.kind
}

// DeclaredSize returns the root chunk's declared payload length from the
// file header.
func (f *File) DeclaredSize() uint32 {
	return f.size
}

// Len returns the actual file length in bytes.
func (f *File) Len() int {
	return len(f.data)
}

// DisplayTag renders a tag in its conceptual spelling: for reversed-tag files
// the stored bytes are flipped back before printing.
func (f *File) DisplayTag(t FourCC) string {
	if f.reversed {
		return t.Reversed().String()
	}
	return t.String()
}

// Matches reports whether a stored tag denotes the conceptually named tag.
// Reversed-tag files store names backwards, so both spellings are accepted
// there; identification is deliberately generous, display is not.
func (f *File) Matches(stored, name FourCC) bool {
	if stored == name {
		return true
	}
	return f.reversed && stored == name.Reversed()
}

// Chunks runs a full walk and collects every chunk. Payload slices still
// borrow from the file buffer.
func (f *File) Chunks() ([]Chunk, error) {
	var chunks []Chunk
	w := f.Walk()
	for w.Next() {
		chunks = append(chunks, w.Chunk())
	}
	if err := w.Err(); err != nil {
		return nil, err
	}
	return chunks, nil
}
