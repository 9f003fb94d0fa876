package markup

import (
	"fmt"
	"io"
)

// Node is a Part that renders as content. Nodes are immutable once
// constructed and may be shared and rendered from several goroutines.
type Node interface {
	Part
	Render(w io.Writer) error
	isNode()
}

// Text is a text node. It is always HTML-encoded on output; the zero value
// is the empty text node.
type Text string

func (t Text) part() Part { return t }
func (Text) isNode() {}

// Render writes the encoded text.
func (t Text) Render(w io.Writer) error { return Render(w, t) }

// Textf creates a formatted text node.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Raw is markup emitted byte-for-byte. It is never encoded or sanitized:
// only wrap content the application already trusts.
type Raw string

func (r Raw) part() Part { return r }
func (Raw) isNode() {}

// Render writes the raw markup unchanged.
func (r Raw) Render(w io.Writer) error { return Render(w, r) }

// Rawf creates a formatted raw node. Arguments are not escaped.
func Rawf(format string, args ...any) Raw {
	return Raw(fmt.Sprintf(format, args...))
}

// Loose wraps an arbitrary value as a child. It is rendered with fmt.Sprint
// and encoded as text.
type Loose struct {
	V any
}

func (l Loose) part() Part { return l }
func (Loose) isNode() {}

// Val wraps v as a text-like child, e.g. Td(Val(total)).
func Val(v any) Loose { return Loose{V: v} }

// String returns the unencoded text form of the value.
func (l Loose) String() string {
	if l.V == nil {
		return ""
	}
	return fmt.Sprint(l.V)
}

// Render writes the encoded text form of the value.
func (l Loose) Render(w io.Writer) error { return Render(w, l) }

// Fragment groups parts without a wrapper element. Unlike Group it is a node:
// when passed to a constructor it stays a single child.
type Fragment struct {
	parts []Part
}

func (f Fragment) part() Part { return f }
func (Fragment) isNode() {}

// Frag creates a fragment from the flattened parts.
func Frag(parts ...Part) Fragment {
	return Fragment{parts: Flatten(parts...)}
}

// Parts returns a copy of the fragment's flattened parts.
func (f Fragment) Parts() []Part {
	if len(f.parts) == 0 {
		return nil
	}
	out := make([]Part, len(f.parts))
	copy(out, f.parts)
	return out
}

// Len returns the number of parts in the fragment.
func (f Fragment) Len() int { return len(f.parts) }

// Render writes each part in order.
func (f Fragment) Render(w io.Writer) error { return Render(w, f) }
