package markup

import "strings"

type escapeMode uint8

const (
	escapeText escapeMode = iota
	escapeAttr
)

// entity returns the replacement for c, or "" if c is written as-is.
// Attribute values additionally encode whitespace that could otherwise be
// normalized away by the parser.
func entity(c byte, mode escapeMode) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&#39;"
	}
	if mode == escapeAttr {
		switch c {
		case '\n':
			return "&#10;"
		case '\r':
			return "&#13;"
		case '\t':
			return "&#9;"
		}
	}
	return ""
}

// escaped writes v with special characters replaced, copying unescaped runs
// in one write each. All replaced characters are ASCII, so scanning bytes
// never splits a UTF-8 sequence.
func (s *sink) escaped(v string, mode escapeMode) {
	last := 0
	for i := 0; i < len(v); i++ {
		rep := entity(v[i], mode)
		if rep == "" {
			continue
		}
		s.str(v[last:i])
		s.str(rep)
		last = i + 1
	}
	s.str(v[last:])
}

// EscapeString escapes text for safe inclusion in HTML content.
func EscapeString(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	s := sink{w: &b}
	s.escaped(v, escapeText)
	return b.String()
}

// EscapeAttr escapes text for safe inclusion in a quoted attribute value.
func EscapeAttr(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	s := sink{w: &b}
	s.escaped(v, escapeAttr)
	return b.String()
}
