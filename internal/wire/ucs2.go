package wire

import (
	"fmt"

	"golang.org/x/text/encoding/unicode"
)

// ucs2 is the little-endian UTF-16 codec every on-wire string field uses.
// IgnoreBOM means a leading 0xFEFF, if the client ever sends one, decodes
// as a literal character rather than being stripped as a byte-order mark.
var ucs2 = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// ErrNonBMPRune is returned when a string holds a code point outside the
// Basic Multilingual Plane. The wire format is flat UCS-2LE, one code unit
// per character; it has no surrogate-pair representation, so a
// supplementary-plane rune (anything the real UTF-16 codec would split
// into a pair) cannot round-trip and must be rejected at encode time.
type ErrNonBMPRune struct{ Rune rune }

func (e *ErrNonBMPRune) Error() string {
	return fmt.Sprintf("wire: rune %U outside the Basic Multilingual Plane, cannot encode as UCS-2", e.Rune)
}

func decodeUCS2(raw []byte) (string, error) {
	out, err := ucs2.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// encodeUCS2 rejects every non-BMP rune before handing the string to the
// UTF-16 encoder, which would otherwise legally encode it as a surrogate
// pair — the wrong answer for a codec that promises one code unit per
// character.
func encodeUCS2(s string) ([]byte, error) {
	for _, r := range s {
		if r > 0xFFFF {
			return nil, &ErrNonBMPRune{Rune: r}
		}
	}
	out, err := ucs2.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, err
	}
	return out, nil
}
