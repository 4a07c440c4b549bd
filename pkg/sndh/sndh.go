// Package sndh decodes Macromedia Director 'sndH' sound clip headers into
// PCM parameters and the matching ffmpeg raw-input arguments.
//
// The header is always 100 bytes: 25 32-bit words that are big-endian even
// inside little-endian (XFIR) movies. Only uncompressed PCM appears here;
// Director stores compressed imports under a different chunk type. The
// decoder is generous: anything that looks wrong becomes a warning rather
// than an error, except a bit depth no known format matches.
package sndh

import (
	"encoding/binary"
	"fmt"
)

// HeaderSize is the only valid 'sndH' payload length.
const HeaderSize = 100

// Known trailing identifier words. The first is what Director ships in the
// wild; a freshly created Director 8.5 movie uses the second family, which
// varies past its first word.
var (
	knownMagic     = [4]uint32{0x6a528ef2, 0x081011d0, 0xb28a0005, 0x02e85810}
	knownMagicHead = uint32(0x6a5293a2)
)

// Header is a decoded sound clip header.
type Header struct {
	ByteCount       uint32 // should match the paired sndS chunk's size
	FrameCount      uint32 // PCM frames in the clip
	FramesPerSecond uint32 // sample rate, e.g. 22050
	BytesPerSecond  uint32
	BitDepth        uint32 // e.g. 16
	BytesPerSample  uint32 // e.g. 2 for 16-bit
	ChannelCount    uint32 // e.g. 2 for stereo
	BytesPerFrame   uint32 // e.g. 4 for stereo 16-bit

	words [25]uint32
}

// Decode parses a 100-byte sndH payload.
func Decode(payload []byte) (*Header, error) {
	if len(payload) != HeaderSize {
		return nil, fmt.Errorf("sndH payload is %d bytes, want %d", len(payload), HeaderSize)
	}

	var h Header
	for i := range h.words {
		h.words[i] = binary.BigEndian.Uint32(payload[i*4 : i*4+4])
	}

	h.ByteCount = h.words[1]
	h.FrameCount = h.words[9]
	h.FramesPerSecond = h.words[11]
	h.BytesPerSecond = h.words[12]
	h.BitDepth = h.words[17]
	h.BytesPerSample = h.words[18]
	h.ChannelCount = h.words[19]
	h.BytesPerFrame = h.words[20]
	return &h, nil
}

// Check returns human-readable warnings for every internal inconsistency.
// An empty result means the header looks like every one observed in the wild.
func (h *Header) Check() []string {
	var warnings []string

	magic := h.words[21:25]
	if [4]uint32(magic) != knownMagic && magic[0] != knownMagicHead {
		warnings = append(warnings, fmt.Sprintf("unexpected trailing identifier words: %08x %08x %08x %08x",
			magic[0], magic[1], magic[2], magic[3]))
	}

	for _, i := range []int{0, 2, 3, 4, 5, 6, 7, 13, 14, 15, 16} {
		if h.words[i] != 0 {
			warnings = append(warnings, fmt.Sprintf("word %d is %d, always seen zero", i, h.words[i]))
		}
	}

	if h.words[1] != h.words[8] {
		warnings = append(warnings, fmt.Sprintf("byte counts disagree: %d vs %d", h.words[1], h.words[8]))
	}
	if h.words[9] != h.words[10] {
		warnings = append(warnings, fmt.Sprintf("frame counts disagree: %d vs %d", h.words[9], h.words[10]))
	}
	if h.BytesPerSecond != h.FramesPerSecond*h.BytesPerFrame {
		warnings = append(warnings, fmt.Sprintf("bytes/second %d != %d frames/second * %d bytes/frame",
			h.BytesPerSecond, h.FramesPerSecond, h.BytesPerFrame))
	}
	if h.BitDepth%8 != 0 {
		warnings = append(warnings, fmt.Sprintf("bit depth %d is not a whole number of bytes", h.BitDepth))
	}
	if h.BytesPerSample < h.BitDepth/8 {
		warnings = append(warnings, fmt.Sprintf("%d bytes/sample cannot hold %d bits", h.BytesPerSample, h.BitDepth))
	}
	if h.BytesPerFrame != h.BytesPerSample*h.ChannelCount {
		warnings = append(warnings, fmt.Sprintf("bytes/frame %d != %d bytes/sample * %d channels",
			h.BytesPerFrame, h.BytesPerSample, h.ChannelCount))
	}

	return warnings
}

// FFmpegArgs renders the raw-PCM input arguments for this clip, e.g.
// "-f s16be -ac 2 -ar 22050". The bit depth alone determines the sample
// format; note the endianness is not consistent across depths, matching how
// Director itself writes the samples.
func (h *Header) FFmpegArgs() (string, error) {
	var format string
	switch h.BitDepth {
	case 8:
		format = "u8"
	case 16:
		format = "s16be"
	case 24:
		format = "s24le"
	case 32:
		format = "s32le"
	default:
		return "", fmt.Errorf("no known sample format for bit depth %d", h.BitDepth)
	}
	return fmt.Sprintf("-f %s -ac %d -ar %d", format, h.ChannelCount, h.FramesPerSecond), nil
}
