// Package riff parses RIFX/XFIR container files and exposes their chunk tree
// for inspection and extraction.
//
// # Wire Format
//
// A file begins with a 4-byte magic selecting the variant:
//
//	'RIFX'  big-endian integers, tags stored in conceptual spelling
//	'XFIR'  little-endian integers, tags stored byte-reversed
//
// The magic is followed by the root chunk's declared payload length (u32) and
// a 4-byte sub-type tag identifying the file kind (for Macromedia Director
// movies, 'MV93'). After that the file is a sequence of chunk records:
//
//	[Tag(4)][Length(4)][Payload(Length)][Pad(0 or 1)]
//
// A single pad byte follows any payload of odd length, so chunk headers
// always start on even offsets. Container chunks (LIST and embedded
// RIFX/XFIR movies) hold a 4-byte sub-type tag followed by nested chunk
// records instead of opaque payload.
//
// # Traversal
//
// Parse (or Open) reads the whole file into one immutable buffer; Walk then
// produces chunks lazily in depth-first pre-order through a pull iterator:
//
//	f, err := riff.Open("movie.dir")
//	if err != nil {
//	    return err
//	}
//	w := f.Walk()
//	for w.Next() {
//	    c := w.Chunk()
//	    fmt.Println(c.Index, f.DisplayTag(c.Tag), c.Length, c.Offset)
//	}
//	if err := w.Err(); err != nil {
//	    return err // structural violation, walk stopped at first error
//	}
//
// Chunk payloads are borrowed sub-slices of the file buffer; they are valid
// for the File's lifetime and must not be modified.
//
// # Error Handling
//
// The parser is strict: a declared length that runs past its container, or a
// header truncated by end of data, stops the walk with an error carrying the
// byte offset (and chunk index where known). It never clamps or skips, since
// one corrupt length field invalidates every offset computed after it.
// Chunks emitted before the failure are valid.
//
// # Concurrency
//
// A File is immutable and safe to share; each Walker holds only its own
// cursor and frame stack, so concurrent walks over one File are safe.
package riff
