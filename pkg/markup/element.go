package markup

import (
	"io"
	"strings"

	"github.com/vango-dev/starter/internal/scratch"
)

// Element is an HTML element. Attributes are ordered by the first appearance
// of each name and deduplicated; children are stored flattened.
type Element struct {
	tag      string
	void     bool
	attrs    []Attr
	children []Part
}

func (e *Element) part() Part { return e }
func (*Element) isNode() {}

// El creates an element from parts. Parts are flattened, then partitioned:
//
//   - empty attributes and class attributes without tokens are dropped;
//   - a class attribute is appended to an earlier attribute of the same name,
//     separated by a space;
//   - any other attribute overwrites the value of an earlier attribute with
//     the same case-insensitive name, keeping the earlier position;
//   - everything else is a child, in encounter order.
//
// Children of a void element are kept but never rendered.
func El(tag string, void bool, parts ...Part) *Element {
	b := elementBuilder{
		attrs:    attrPool.Acquire(len(parts)),
		children: partPool.Acquire(len(parts)),
	}
	defer b.attrs.Release()
	defer b.children.Release()

	b.add(parts)

	return &Element{
		tag:      tag,
		void:     void,
		attrs:    b.attrs.ToSlice(),
		children: b.children.ToSlice(),
	}
}

type elementBuilder struct {
	attrs    *scratch.Buffer[Attr]
	children *scratch.Buffer[Part]
}

func (b *elementBuilder) add(parts []Part) {
	for _, p := range parts {
		if p == nil {
			continue
		}
		switch v := p.part().(type) {
		case Group:
			b.add(v)
		case Attr:
			b.addAttr(v)
		case *Element:
			if v != nil {
				b.children.Append(v)
			}
		case Text, Raw, Loose, Fragment:
			b.children.Append(v)
		}
	}
}

func (b *elementBuilder) addAttr(a Attr) {
	if a.IsEmpty() {
		return
	}

	i := b.indexOf(a.Name)
	if i < 0 {
		b.attrs.Append(a)
		return
	}

	cur := b.attrs.At(i)
	if a.Kind == AttrClass {
		if isBlank(cur.Value) {
			cur.Value = a.Value
		} else {
			cur.Value += " " + a.Value
		}
		cur.Kind = AttrClass
	} else {
		cur.Value = a.Value
		cur.Kind = a.Kind
	}
	b.attrs.Set(i, cur)
}

func (b *elementBuilder) indexOf(name string) int {
	for i, a := range b.attrs.Items() {
		if strings.EqualFold(a.Name, name) {
			return i
		}
	}
	return -1
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Void reports whether the element is a void element.
func (e *Element) Void() bool { return e.void }

// Attrs returns a copy of the merged attributes in output order.
func (e *Element) Attrs() []Attr {
	if len(e.attrs) == 0 {
		return nil
	}
	out := make([]Attr, len(e.attrs))
	copy(out, e.attrs)
	return out
}

// Attr returns the value of the named attribute (case-insensitive).
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if strings.EqualFold(a.Name, name) {
			return a.Value, true
		}
	}
	return "", false
}

// Children returns a copy of the flattened children.
func (e *Element) Children() []Part {
	if len(e.children) == 0 {
		return nil
	}
	out := make([]Part, len(e.children))
	copy(out, e.children)
	return out
}

// Render writes the element and its subtree.
func (e *Element) Render(w io.Writer) error { return Render(w, e) }

// String returns the rendered markup.
func (e *Element) String() string { return String(e) }
