package markup

import (
	"io"
	"sort"
	"strings"
)

// AttrKind is the attribute kind discriminator.
type AttrKind uint8

const (
	AttrEmpty   AttrKind = iota // Contributes nothing
	AttrNormal                  // name="value"
	AttrBoolean                 // Bare presence: disabled
	AttrClass                   // Space-separated tokens, merged across parts
)

// String returns the string representation of the AttrKind.
func (k AttrKind) String() string {
	switch k {
	case AttrEmpty:
		return "Empty"
	case AttrNormal:
		return "Normal"
	case AttrBoolean:
		return "Boolean"
	case AttrClass:
		return "Class"
	default:
		return "Unknown"
	}
}

// Attr is a single HTML attribute. The zero value is the empty attribute.
//
// Value is opaque text; it is encoded only when the attribute is rendered.
type Attr struct {
	Name  string
	Value string
	Kind  AttrKind
}

func (a Attr) part() Part { return a }

// IsEmpty reports whether the attribute produces no output: Empty kind, a
// blank name, or a class attribute without tokens.
func (a Attr) IsEmpty() bool {
	switch {
	case a.Kind == AttrEmpty:
		return true
	case isBlank(a.Name):
		return true
	case a.Kind == AttrClass && isBlank(a.Value):
		return true
	}
	return false
}

// Render writes the attribute with its leading space, or nothing when empty.
func (a Attr) Render(w io.Writer) error {
	s := sink{w: w}
	s.attr(a)
	return s.err
}

// Attribute creates a normal attribute. The name is trimmed; a blank name
// yields the empty attribute.
func Attribute(name, value string) Attr {
	name = strings.TrimSpace(name)
	if name == "" {
		return Attr{}
	}
	return Attr{Name: name, Value: value, Kind: AttrNormal}
}

// BoolAttr creates a boolean attribute that renders as its bare name when on
// and contributes nothing when off.
func BoolAttr(name string, on bool) Attr {
	name = strings.TrimSpace(name)
	if !on || name == "" {
		return Attr{}
	}
	return Attr{Name: name, Value: name, Kind: AttrBoolean}
}

// Class creates a class attribute from tokens. Tokens are trimmed, blank
// tokens are dropped and the rest are joined with single spaces. Class
// attributes on the same element are concatenated rather than overwritten.
func Class(tokens ...string) Attr {
	var b strings.Builder
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok)
	}
	return Attr{Name: "class", Value: b.String(), Kind: AttrClass}
}

// Classes creates a class attribute from a token set; only tokens mapped to
// true are kept. Map iteration order is not stable, so tokens are sorted.
func Classes(set map[string]bool) Attr {
	tokens := make([]string, 0, len(set))
	for tok, on := range set {
		if on {
			tokens = append(tokens, tok)
		}
	}
	sort.Strings(tokens)
	return Class(tokens...)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
