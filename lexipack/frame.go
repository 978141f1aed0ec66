package lexipack

import "fmt"

// Frame layout (all integers big-endian):
//
//	offset 0          1 byte   language code
//	offset 1          4 bytes  idLength = byte length of idStream (even)
//	offset 5          idLength idStream: idLength/2 u16 ids, 0xFFFF = sentinel
//	offset 5+idLength 1 byte   0x00 literal marker, only if a sentinel occurs
//	offset 6+idLength rest     UTF-8 literal tokens joined by '|'
//
// When idLength is 0 there is no marker byte; any trailing bytes are raw
// '|'-joined literal text.
//
// The decoder locates the literal section by scanning for the first 0x00 at
// or after offset 5+idLength. An idStream entry can contain 0x00 in its low
// byte, so any change to this layout must keep the marker search strictly
// past the declared idStream end.
const (
	frameHeaderSize = 5

	literalMarker = 0x00
	literalSep    = "|"

	idSentinel = uint16(Unspecified)
)

// Placeholders emitted for decode-time lookup misses.
const (
	missingLiteral = "[MISSING]"
	missingIDFmt   = "[MISSING:%d]"
)

// CorruptFrameError reports a frame whose declared layout is inconsistent
// with its bytes. Truncation below the 5-byte header is not corruption (it
// decodes to ""); a declared idStream that is odd-sized or overruns the
// buffer is.
type CorruptFrameError struct {
	Reason string
}

func (e *CorruptFrameError) Error() string {
	return fmt.Sprintf("lexipack: corrupt frame: %s", e.Reason)
}
