package random

import "strings"

// Placeholder characters recognised by the template functions.
const (
	DigitPlaceholder  = '#'
	LetterPlaceholder = '?'
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// Numerify returns a copy of template with every '#' replaced by an
// independently drawn decimal digit. Everything else is copied unchanged.
//
//	random.Numerify(nil, "###-####") // "402-8817"
func Numerify(src Source, template string) string {
	return replace(src, template, true, false)
}

// Lexify returns a copy of template with every '?' replaced by a random
// lowercase ASCII letter.
func Lexify(src Source, template string) string {
	return replace(src, template, false, true)
}

// Bothify applies Numerify and Lexify in a single pass.
func Bothify(src Source, template string) string {
	return replace(src, template, true, true)
}

func replace(src Source, template string, digits, alpha bool) string {
	if !needsReplace(template, digits, alpha) {
		return template
	}
	src = orDefault(src)

	var b strings.Builder
	b.Grow(len(template))
	// Placeholders are ASCII and never occur inside a multi-byte UTF-8
	// sequence, so a byte scan keeps every other character intact.
	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case digits && c == DigitPlaceholder:
			b.WriteByte(byte('0' + Int(src, 0, 9)))
		case alpha && c == LetterPlaceholder:
			b.WriteByte(letters[Int(src, 0, len(letters)-1)])
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func needsReplace(template string, digits, alpha bool) bool {
	return (digits && strings.IndexByte(template, DigitPlaceholder) >= 0) ||
		(alpha && strings.IndexByte(template, LetterPlaceholder) >= 0)
}
