package riff

import "fmt"

// FourCC is a four-byte chunk type identifier, kept exactly as it appears in
// the file. Whether those bytes spell the conceptual name forwards or
// backwards is a property of the file (see File.Reversed), not of the value.
type FourCC [4]byte

// Well-known tags.
var (
	TagRIFX = FourCC{'R', 'I', 'F', 'X'}
	TagXFIR = FourCC{'X', 'F', 'I', 'R'}
	TagLIST = FourCC{'L', 'I', 'S', 'T'}
	TagTSIL = FourCC{'T', 'S', 'I', 'L'}
	TagSndH = FourCC{'s', 'n', 'd', 'H'}
)

// ParseFourCC converts a command-line or config string into a FourCC.
// The string must be exactly four ASCII bytes.
func ParseFourCC(s string) (FourCC, error) {
	if len(s) != 4 {
		return FourCC{}, fmt.Errorf("'%s' is not 4 bytes long", s)
	}
	for i := 0; i < 4; i++ {
		if s[i] >= 0x80 {
			return FourCC{}, fmt.Errorf("'%s' is not ASCII", s)
		}
	}
	return FourCC{s[0], s[1], s[2], s[3]}, nil
}

// Reversed returns the tag with its bytes in the opposite order. Little-endian
// files store tags this way round relative to their conceptual spelling.
func (f FourCC) Reversed() FourCC {
	return FourCC{f[3], f[2], f[1], f[0]}
}

// String renders the tag quoted when it is printable ASCII, and as raw bytes
// otherwise.
func (f FourCC) String() string {
	for _, b := range f {
		if b < 0x20 || b >= 0x7f {
			return fmt.Sprintf("[% 02x]", f[:])
		}
	}
	return fmt.Sprintf("'%s'", f[:])
}
