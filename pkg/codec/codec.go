// pkg/codec/codec.go
package codec

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"escpos-service/pkg/escpos"
)

// replacementByte substitutes characters under the REPLACE policy
const replacementByte = '?'

// charmaps maps code page identifiers to their single-byte character
// tables. KATAKANA is selectable on printers but has no table here, so
// re-encoding into it fails as an EncodingError.
var charmaps = map[escpos.CodePage]*charmap.Charmap{
	escpos.PagePC437:   charmap.CodePage437,
	escpos.PagePC850:   charmap.CodePage850,
	escpos.PagePC860:   charmap.CodePage860,
	escpos.PagePC863:   charmap.CodePage863,
	escpos.PagePC865:   charmap.CodePage865,
	escpos.PageWPC1252: charmap.Windows1252,
	escpos.PagePC866:   charmap.CodePage866,
	escpos.PagePC852:   charmap.CodePage852,
	escpos.PagePC858:   charmap.CodePage858,
}

// CharmapCodec re-encodes UTF-8 text into single-byte printer code pages
type CharmapCodec struct{}

// NewCharmapCodec returns a codec over the built-in code page tables
func NewCharmapCodec() *CharmapCodec {
	return &CharmapCodec{}
}

// Charsets returns the code pages this codec can encode into, sorted
func (c *CharmapCodec) Charsets() []escpos.CodePage {
	charsets := make([]escpos.CodePage, 0, len(charmaps))
	for charset := range charmaps {
		charsets = append(charsets, charset)
	}
	sort.Slice(charsets, func(i, j int) bool { return charsets[i] < charsets[j] })
	return charsets
}

// Supports reports whether the codec can encode into the code page
func (c *CharmapCodec) Supports(charset escpos.CodePage) bool {
	_, ok := charmaps[charset]
	return ok
}

// Reencode converts text to the target code page one rune at a time.
// Invalid UTF-8 input and runes undefined in the target are handled per
// the respective policy; the default for both is to fail.
func (c *CharmapCodec) Reencode(text string, charset escpos.CodePage, opts escpos.EncodeOptions) ([]byte, error) {
	table, ok := charmaps[charset]
	if !ok {
		return nil, &escpos.EncodingError{Charset: charset, Reason: "unsupported charset"}
	}
	encoded := make([]byte, 0, len(text))
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			switch policyOrFail(opts.InvalidPolicy) {
			case escpos.PolicyReplace:
				encoded = append(encoded, replacementByte)
			case escpos.PolicyIgnore:
			default:
				return nil, &escpos.EncodingError{
					Charset: charset,
					Reason:  fmt.Sprintf("invalid UTF-8 byte 0x%02X at offset %d", text[i], i),
				}
			}
			i += size
			continue
		}
		if b, ok := table.EncodeRune(r); ok {
			encoded = append(encoded, b)
		} else {
			switch policyOrFail(opts.UndefinedPolicy) {
			case escpos.PolicyReplace:
				encoded = append(encoded, replacementByte)
			case escpos.PolicyIgnore:
			default:
				return nil, &escpos.EncodingError{
					Charset: charset,
					Reason:  fmt.Sprintf("character %q has no %s encoding", r, charset),
				}
			}
		}
		i += size
	}
	return encoded, nil
}

// policyOrFail resolves the zero-value policy to FAIL
func policyOrFail(policy escpos.Policy) escpos.Policy {
	if policy == "" {
		return escpos.PolicyFail
	}
	return policy
}
