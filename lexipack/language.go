package lexipack

import (
	"fmt"
	"strings"
)

// Language identifies a word dictionary. The numeric values are part of the
// wire format and must not be renumbered.
type Language uint16

const (
	// SEP is reserved and carries no codec meaning.
	SEP Language = 0x000

	DE Language = 0x001
	EN Language = 0x002
	ES Language = 0x003
	FR Language = 0x004
	IT Language = 0x005
	JA Language = 0x006
	PT Language = 0x007
	RU Language = 0x008
	ZH Language = 0x009
	AR Language = 0x00A
	FA Language = 0x00B
	KO Language = 0x00C
	NL Language = 0x00D
	PO Language = 0x00E
	TH Language = 0x00F
	VI Language = 0x010

	// Unspecified doubles as the id sentinel in frames: an idStream entry
	// of 0xFFFF means "no dictionary id for this position". It is not a
	// valid frame language (the language field is a single byte).
	Unspecified Language = 0xFFFF
)

// String returns the language code name.
func (l Language) String() string {
	switch l {
	case SEP:
		return "SEP"
	case DE:
		return "de"
	case EN:
		return "en"
	case ES:
		return "es"
	case FR:
		return "fr"
	case IT:
		return "it"
	case JA:
		return "ja"
	case PT:
		return "pt"
	case RU:
		return "ru"
	case ZH:
		return "zh"
	case AR:
		return "ar"
	case FA:
		return "fa"
	case KO:
		return "ko"
	case NL:
		return "nl"
	case PO:
		return "po"
	case TH:
		return "th"
	case VI:
		return "vi"
	case Unspecified:
		return "unspecified"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(l))
	}
}

// ParseLanguage parses a language code name such as "en" or "EN".
func ParseLanguage(s string) (Language, bool) {
	switch strings.ToLower(s) {
	case "de":
		return DE, true
	case "en":
		return EN, true
	case "es":
		return ES, true
	case "fr":
		return FR, true
	case "it":
		return IT, true
	case "ja":
		return JA, true
	case "pt":
		return PT, true
	case "ru":
		return RU, true
	case "zh":
		return ZH, true
	case "ar":
		return AR, true
	case "fa":
		return FA, true
	case "ko":
		return KO, true
	case "nl":
		return NL, true
	case "po":
		return PO, true
	case "th":
		return TH, true
	case "vi":
		return VI, true
	default:
		return Unspecified, false
	}
}

// Languages returns the live language codes in wire order. SEP and
// Unspecified are excluded.
func Languages() []Language {
	return []Language{DE, EN, ES, FR, IT, JA, PT, RU, ZH, AR, FA, KO, NL, PO, TH, VI}
}
