package encoding

import (
	"strings"
	"unicode/utf8"
)

// LossyText interprets data as UTF-8. Each maximal invalid subpart (a lone
// bad byte, or the valid prefix of a truncated sequence) becomes one U+FFFD.
func LossyText(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}

	var sb strings.Builder
	sb.Grow(len(data) + 8)
	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			sb.WriteRune(utf8.RuneError)
			data = data[invalidPrefixLen(data):]
			continue
		}
		sb.Write(data[:size])
		data = data[size:]
	}
	return sb.String()
}

// invalidPrefixLen returns how many leading bytes of b form the longest
// prefix of a well-formed sequence. It is at least 1.
func invalidPrefixLen(b []byte) int {
	need, lo, hi := 0, byte(0x80), byte(0xBF)
	switch lead := b[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 2
	case lead == 0xE0:
		need, lo = 3, 0xA0
	case lead == 0xED:
		need, hi = 3, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 3
	case lead == 0xF0:
		need, lo = 4, 0x90
	case lead == 0xF4:
		need, hi = 4, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 4
	default:
		return 1
	}

	i := 1
	if i < len(b) && b[i] >= lo && b[i] <= hi {
		i++
		for i < need && i < len(b) && b[i] >= 0x80 && b[i] <= 0xBF {
			i++
		}
	}
	return i
}
