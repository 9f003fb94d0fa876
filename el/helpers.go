// This file re-exports markup helpers for the el package.
package el

import (
	"io"

	"github.com/vango-dev/starter/pkg/markup"
)

func El(tag string, void bool, parts ...Part) *Element {
	return markup.El(tag, void, parts...)
}
func IsVoidElement(tag string) bool {
	return markup.IsVoidElement(tag)
}
func Tag(name string, parts ...Part) *Element {
	return markup.Tag(name, parts...)
}
func Heading(level int, parts ...Part) *Element {
	return markup.Heading(level, parts...)
}
func EscapeString(v string) string {
	return markup.EscapeString(v)
}
func EscapeAttr(v string) string {
	return markup.EscapeAttr(v)
}
func Doctype(parts ...Part) Fragment {
	return markup.Doctype(parts...)
}
func If(condition bool, p Part) Part {
	return markup.If(condition, p)
}
func IfElse(condition bool, ifTrue, ifFalse Part) Part {
	return markup.IfElse(condition, ifTrue, ifFalse)
}
func When(condition bool, fn func() Part) Part {
	return markup.When(condition, fn)
}
func Unless(condition bool, p Part) Part {
	return markup.Unless(condition, p)
}
func Range[T any](items []T, fn func(item T, index int) Part) Group {
	return markup.Range(items, fn)
}
func Repeat(n int, fn func(i int) Part) Group {
	return markup.Repeat(n, fn)
}
func Join(sep Part, parts ...Part) Group {
	return markup.Join(sep, parts...)
}
func Textf(format string, args ...any) Text {
	return markup.Textf(format, args...)
}
func Rawf(format string, args ...any) Raw {
	return markup.Rawf(format, args...)
}
func Val(v any) Loose {
	return markup.Val(v)
}
func Frag(parts ...Part) Fragment {
	return markup.Frag(parts...)
}
func Flatten(parts ...Part) []Part {
	return markup.Flatten(parts...)
}
func Render(w io.Writer, p Part) error {
	return markup.Render(w, p)
}
func String(p Part) string {
	return markup.String(p)
}
