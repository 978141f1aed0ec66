package lexipack

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// Decompress reconstructs text from a frame produced by Compress.
//
// Decoding is best-effort: a frame shorter than its 5-byte header yields "",
// and dictionary misses yield placeholder tokens rather than errors. The
// errors that do surface are store access failures and frames whose declared
// idStream is inconsistent with the buffer (*CorruptFrameError).
func (c *Codec) Decompress(data []byte) (string, error) {
	if len(data) < frameHeaderSize {
		return "", nil
	}

	lang := Language(data[0])
	idLength := int(binary.BigEndian.Uint32(data[1:5]))

	// Zero ids: the whole tail is raw literal text, no marker byte.
	if idLength == 0 {
		if len(data) == frameHeaderSize {
			return "", nil
		}
		literals := strings.Split(string(data[frameHeaderSize:]), literalSep)
		return strings.Join(literals, " "), nil
	}

	if idLength%2 != 0 {
		return "", &CorruptFrameError{Reason: fmt.Sprintf("odd idLength %d", idLength)}
	}
	if frameHeaderSize+idLength > len(data) {
		return "", &CorruptFrameError{Reason: fmt.Sprintf("idLength %d overruns %d-byte frame", idLength, len(data))}
	}

	idStream := make([]uint16, idLength/2)
	for i := range idStream {
		idStream[i] = binary.BigEndian.Uint16(data[frameHeaderSize+2*i:])
	}

	literals := literalSection(data, frameHeaderSize+idLength)

	lookup, err := c.store.LookupIDs(distinctIDs(idStream), lang)
	if err != nil {
		return "", fmt.Errorf("lexipack: decompress: %w", err)
	}

	words := make([]string, 0, len(idStream))
	next := 0
	for _, id := range idStream {
		if id == idSentinel {
			if next < len(literals) {
				words = append(words, literals[next])
				next++
			} else {
				words = append(words, missingLiteral)
			}
			continue
		}
		if word, ok := lookup[uint32(id)]; ok {
			words = append(words, word)
		} else {
			words = append(words, fmt.Sprintf(missingIDFmt, id))
		}
	}

	return strings.Join(words, " "), nil
}

// literalSection extracts the ordered literal tokens, if any. The marker is
// the first 0x00 byte at or after the idStream end; it must be followed by
// at least one byte to carry a section.
func literalSection(data []byte, end int) []string {
	rel := bytes.IndexByte(data[end:], literalMarker)
	if rel < 0 {
		return nil
	}
	start := end + rel + 1
	if start >= len(data) {
		return nil
	}
	return strings.Split(string(data[start:]), literalSep)
}

// distinctIDs returns the unique non-sentinel ids, widened for the store.
func distinctIDs(idStream []uint16) []uint32 {
	seen := make(map[uint16]struct{}, len(idStream))
	out := make([]uint32, 0, len(idStream))
	for _, id := range idStream {
		if id == idSentinel {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, uint32(id))
	}
	return out
}
