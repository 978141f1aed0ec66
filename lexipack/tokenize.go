package lexipack

import (
	"strings"
	"unicode"
)

// Single-character token scripts: CJK ideographs, Hiragana, Katakana,
// Hangul syllables. No segmentation is attempted for these; every rune in
// the range is its own token.
func isIdeograph(r rune) bool {
	switch {
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // Hangul Syllables
		return true
	}
	return false
}

// Word-class runes: letters, digits, underscore, apostrophe. Covers
// space-delimited scripts (Latin, Cyrillic, Arabic, ...) as multi-character
// runs.
func isWordRune(r rune) bool {
	return r == '_' || r == '\'' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// Tokenize splits text into an ordered sequence of lowercase tokens.
//
// Two token classes are emitted:
//   - a maximal run of word-class runes (letters, digits, underscore,
//     apostrophe) becomes one token
//   - a single CJK/Hiragana/Katakana/Hangul rune becomes its own token,
//     terminating any word run in progress
//
// Everything else (whitespace, punctuation, symbols) is discarded. Original
// spacing and punctuation cannot be recovered from the result.
func Tokenize(text string) []string {
	var tokens []string
	var run strings.Builder

	flush := func() {
		if run.Len() > 0 {
			tokens = append(tokens, strings.ToLower(run.String()))
			run.Reset()
		}
	}

	for _, r := range text {
		switch {
		case isIdeograph(r):
			flush()
			tokens = append(tokens, strings.ToLower(string(r)))
		case isWordRune(r):
			run.WriteRune(r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}
