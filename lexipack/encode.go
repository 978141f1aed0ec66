package lexipack

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Codec compresses and decompresses text against an injected dictionary
// store. The zero value is not usable; construct with New.
type Codec struct {
	store Store
}

// New creates a Codec backed by the given store.
func New(store Store) *Codec {
	return &Codec{store: store}
}

// Compress encodes text as a dictionary-substitution frame.
//
// Tokens that resolve to a dictionary id occupy two bytes each; the rest are
// carried verbatim (lowercased) in the literal section. Zero tokens yield
// the 5-byte minimal frame.
//
// The language code must fit in the frame's single language byte. The only
// other error source is the store itself.
func (c *Codec) Compress(text string, lang Language) ([]byte, error) {
	if lang > 0xFF {
		return nil, fmt.Errorf("lexipack: language %s (%d) does not fit in a one-byte frame code", lang, uint16(lang))
	}

	tokens := Tokenize(text)
	if len(tokens) == 0 {
		frame := make([]byte, frameHeaderSize)
		frame[0] = byte(lang)
		return frame, nil
	}

	lookup, err := c.store.LookupWords(distinct(tokens), lang)
	if err != nil {
		return nil, fmt.Errorf("lexipack: compress: %w", err)
	}

	idLength := 2 * len(tokens)
	frame := make([]byte, frameHeaderSize, frameHeaderSize+idLength)
	frame[0] = byte(lang)
	binary.BigEndian.PutUint32(frame[1:5], uint32(idLength))

	var missing []string
	for _, token := range tokens {
		id, ok := lookup[token]
		if !ok {
			missing = append(missing, token)
			frame = binary.BigEndian.AppendUint16(frame, idSentinel)
			continue
		}
		frame = binary.BigEndian.AppendUint16(frame, uint16(id))
	}

	if len(missing) > 0 {
		frame = append(frame, literalMarker)
		frame = append(frame, strings.Join(missing, literalSep)...)
	}

	return frame, nil
}

// distinct returns the unique values of tokens, preserving first-seen order.
func distinct(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
