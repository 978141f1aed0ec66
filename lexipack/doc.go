// Package lexipack implements a dictionary-substitution text codec.
//
// The codec shrinks natural-language text by replacing each token with a
// 16-bit id drawn from a per-language word dictionary. Tokens that are not
// in the dictionary ride along in a trailing literal section, so the codec
// never refuses input.
//
// The codec is:
//   - Lossy for layout (casing, punctuation, and spacing are discarded by
//     tokenization; token order is preserved)
//   - Best-effort on decode (lookup misses degrade to placeholder text,
//     never to an error)
//   - Storage-agnostic (dictionaries are consumed through the Store
//     interface; the store package provides implementations)
//
// # Frame Format
//
// All multi-byte integers are big-endian:
//
//	[lang(1)][idLength(4)][idStream(idLength)][0x00][literals...]
//
// idStream holds idLength/2 unsigned 16-bit ids; 0xFFFF marks a position
// whose token was not in the dictionary. The 0x00 marker and the literal
// section — the missing tokens joined by '|', in order — are present only
// when at least one position carries the sentinel.
//
// # Example
//
//	db, _ := store.Open("multilang.db")
//	c := lexipack.New(db)
//	frame, _ := c.Compress("hello world", lexipack.EN)
//	text, _ := c.Decompress(frame) // "hello world"
package lexipack
