package scaffold

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPlaceholder is returned when a template names a key that has
	// no value.
	ErrUnknownPlaceholder = errors.New("unknown placeholder")

	// ErrMalformedTemplate is returned for an unmatched brace.
	ErrMalformedTemplate = errors.New("malformed template")
)

// Format replaces every {key} in text with values[key]. Doubled braces ({{
// and }}) produce a literal brace. Only keys present in text are looked up,
// so values may hold more entries than a template uses.
func Format(text string, values map[string]string) (string, error) {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); i++ {
		switch c := text[i]; c {
		case '{':
			if i+1 < len(text) && text[i+1] == '{' {
				b.WriteByte('{')
				i++
				continue
			}
			end := strings.IndexAny(text[i+1:], "{}")
			if end < 0 || text[i+1+end] != '}' {
				return "", fmt.Errorf("%w: unmatched '{' at offset %d", ErrMalformedTemplate, i)
			}
			key := text[i+1 : i+1+end]
			value, ok := values[key]
			if !ok {
				return "", fmt.Errorf("%w {%s}", ErrUnknownPlaceholder, key)
			}
			b.WriteString(value)
			i += end + 1
		case '}':
			if i+1 < len(text) && text[i+1] == '}' {
				b.WriteByte('}')
				i++
				continue
			}
			return "", fmt.Errorf("%w: single '}' at offset %d", ErrMalformedTemplate, i)
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}
