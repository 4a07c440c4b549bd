// Package dump writes chunk payloads out of a container file. It consumes
// the walker's output and owns the file naming; it never interprets payloads.
package dump

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hikari-no-yume/dream-sparer/pkg/riff"
)

// Selector decides which chunks to act on: a chunk matches if its tag or its
// traversal index was requested. A separate quiet set suppresses per-chunk
// listing output by tag.
type Selector struct {
	tags    map[riff.FourCC]struct{}
	indices map[uint32]struct{}
	quiet   map[riff.FourCC]struct{}
}

// NewSelector creates an empty selector; it matches nothing and silences
// nothing.
func NewSelector() *Selector {
	return &Selector{
		tags:    make(map[riff.FourCC]struct{}),
		indices: make(map[uint32]struct{}),
		quiet:   make(map[riff.FourCC]struct{}),
	}
}

// AddTag requests every chunk with the given tag.
func (s *Selector) AddTag(tag riff.FourCC) {
	s.tags[tag] = struct{}{}
}

// AddIndex requests the chunk with the given traversal index.
func (s *Selector) AddIndex(index uint32) {
	s.indices[index] = struct{}{}
}

// Silence suppresses listing output for a tag.
func (s *Selector) Silence(tag riff.FourCC) {
	s.quiet[tag] = struct{}{}
}

// Match reports whether the chunk was requested.
func (s *Selector) Match(c riff.Chunk) bool {
	if _, ok := s.tags[c.Tag]; ok {
		return true
	}
	_, ok := s.indices[c.Index]
	return ok
}

// Quiet reports whether listing output for the chunk is suppressed.
func (s *Selector) Quiet(c riff.Chunk) bool {
	_, ok := s.quiet[c.Tag]
	return ok
}

// Empty reports whether the selector requests no chunks at all.
func (s *Selector) Empty() bool {
	return len(s.tags) == 0 && len(s.indices) == 0
}

// Writer writes payloads into a directory.
type Writer struct {
	dir string
}

// NewWriter creates a writer targeting dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// filename is INDEX-OFFSET.TYPE, with the index zero-padded to four digits.
// The tag bytes go into the name as stored; non-ASCII tags are rejected
// rather than guessed at.
func (w *Writer) filename(c riff.Chunk) (string, error) {
	for _, b := range c.Tag {
		if b < 0x20 || b >= 0x7f {
			return "", fmt.Errorf("chunk #%d has a non-printable tag %s, cannot name its dump file", c.Index, c.Tag)
		}
	}
	return filepath.Join(w.dir, fmt.Sprintf("%04d-%d.%s", c.Index, c.Offset, c.Tag[:])), nil
}

// WriteChunk writes the chunk's payload and returns the path written.
func (w *Writer) WriteChunk(c riff.Chunk) (string, error) {
	name, err := w.filename(c)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(name, c.Payload, 0o644); err != nil {
		return "", fmt.Errorf("failed to dump chunk #%d: %w", c.Index, err)
	}
	return name, nil
}

// WriteText writes derived text (e.g. translated sound-header arguments) next
// to where the chunk's dump would go, under INDEX-OFFSET-SUFFIX.txt.
func (w *Writer) WriteText(c riff.Chunk, suffix, text string) (string, error) {
	name := filepath.Join(w.dir, fmt.Sprintf("%04d-%d-%s.txt", c.Index, c.Offset, suffix))
	if err := os.WriteFile(name, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return name, nil
}
