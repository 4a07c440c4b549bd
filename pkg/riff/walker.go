package riff

// Chunk is one entry of the chunk tree. It is a read-only view into the file
// buffer: Payload borrows from it and stays valid for the File's lifetime.
type Chunk struct {
	Tag     FourCC // type tag, exactly as stored
	Index   uint32 // sequential traversal index, starting at 0
	Offset  int    // offset of the chunk header from file start
	Length  uint32 // declared payload length from the header
	Payload []byte // [Offset+8, Offset+8+Length), shared with the file buffer
	Depth   int    // nesting level; direct children of the root are depth 1
}

// frame is one currently-open container: where it ends and the depth its
// chunks are emitted at.
type frame struct {
	end   int
	depth int
}

// Walker is a single forward pass over a file's chunk tree: depth-first,
// pre-order, siblings in file order. It is a pull iterator in the usual
// Next/Chunk/Err shape; stopping early just means not calling Next again.
// A Walker is not restartable, but File.Walk is cheap and the buffer is
// shared, so re-walking means constructing a fresh one.
type Walker struct {
	file       *File
	cur        *Cursor
	frames     []frame
	containers map[FourCC]struct{}
	next       uint32
	chunk      Chunk
	err        error
	done       bool
}

// WalkOption adjusts a single traversal.
type WalkOption func(*Walker)

// WithContainerTags replaces the set of tags the walker descends into.
// Matching is on the stored bytes, so the set applies identically to
// big-endian and reversed-tag files.
func WithContainerTags(tags ...FourCC) WalkOption {
	return func(w *Walker) {
		w.containers = make(map[FourCC]struct{}, len(tags))
		for _, t := range tags {
			w.containers[t] = struct{}{}
		}
	}
}

// Walk starts a new traversal positioned just after the root sub-type tag.
// By default the walker descends into LIST chunks (either spelling) and
// embedded RIFX/XFIR movies; their payloads begin with a 4-byte sub-type tag
// followed by nested chunk records.
func (f *File) Walk(opts ...WalkOption) *Walker {
	w := &Walker{
		file:   f,
		cur:    NewCursor(f.data, f.order),
		frames: []frame{{end: len(f.data), depth: 1}},
		containers: map[FourCC]struct{}{
			TagLIST: {},
			TagTSIL: {},
			TagRIFX: {},
			TagXFIR: {},
		},
	}
	w.cur.Seek(headerSize + 4)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Next advances to the next chunk. It returns false when the walk is finished
// or has failed; Err distinguishes the two. No chunk is ever emitted before
// its header and bounds have been validated against the enclosing container.
func (w *Walker) Next() bool {
	if w.done || w.err != nil {
		return false
	}

	// Close every container that ends at the current position. A container
	// with an odd declared length is followed by one pad byte, which counts
	// against its own parent.
	for {
		top := w.frames[len(w.frames)-1]
		if w.cur.Pos() > top.end {
			w.err = &OverrunError{
				Index:  w.chunk.Index,
				Offset: w.chunk.Offset,
				Length: w.chunk.Length,
				Limit:  top.end,
			}
			return false
		}
		if w.cur.Pos() < top.end {
			break
		}
		w.frames = w.frames[:len(w.frames)-1]
		if len(w.frames) == 0 {
			w.done = true
			return false
		}
		if w.cur.Pos()&1 == 1 {
			w.cur.Seek(w.cur.Pos() + 1)
		}
	}

	top := w.frames[len(w.frames)-1]
	offset := w.cur.Pos()
	if top.end-offset < headerSize {
		w.err = &TruncatedError{Offset: offset}
		return false
	}

	tag, err := w.cur.ReadTag()
	if err != nil {
		w.err = err
		return false
	}
	length, err := w.cur.ReadUint32()
	if err != nil {
		w.err = err
		return false
	}

	if offset+headerSize+int(length) > top.end {
		w.err = &OverrunError{
			Index:  w.next,
			Offset: offset,
			Length: length,
			Limit:  top.end,
		}
		return false
	}

	w.chunk = Chunk{
		Tag:     tag,
		Index:   w.next,
		Offset:  offset,
		Length:  length,
		Payload: w.file.data[offset+headerSize : offset+headerSize+int(length)],
		Depth:   top.depth,
	}
	w.next++

	if _, ok := w.containers[tag]; ok {
		// The container's payload starts with its own sub-type tag, counted
		// against the declared length. A length too short to hold it is a
		// truncation at the sub-type read; the container chunk itself has
		// already been emitted, so the error surfaces on the next call.
		if length < 4 {
			w.err = &TruncatedError{Offset: offset + headerSize}
			return true
		}
		w.frames = append(w.frames, frame{
			end:   offset + headerSize + int(length),
			depth: top.depth + 1,
		})
		w.cur.Seek(offset + headerSize + 4)
		return true
	}

	next := offset + headerSize + int(length)
	next += next & 1 // pad byte after odd-length payloads
	w.cur.Seek(next)
	return true
}

// Chunk returns the chunk produced by the last successful Next.
func (w *Walker) Chunk() Chunk {
	return w.chunk
}

// Err returns the error that terminated the walk, or nil after a clean end.
// All walk errors are terminal; the walker never guesses or clamps past a
// structural violation.
func (w *Walker) Err() error {
	return w.err
}
