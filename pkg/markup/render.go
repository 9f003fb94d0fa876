package markup

import (
	"io"
	"strings"
)

// Render writes the HTML for p to w. It stops at the first write error and
// returns it; output written before the error is left in w.
//
// Element attributes are written in stored order. Void elements never get
// children or a closing tag. Text and Loose values are encoded, Raw is not,
// and Groups are expanded wherever they appear.
func Render(w io.Writer, p Part) error {
	s := sink{w: w}
	s.part(p)
	return s.err
}

// String renders p into a string.
func String(p Part) string {
	var b strings.Builder
	_ = Render(&b, p)
	return b.String()
}

// sink is a sticky-error writer: after the first failure every write is a
// no-op and the error is reported once by Render.
type sink struct {
	w   io.Writer
	err error
}

func (s *sink) str(v string) {
	if s.err != nil || v == "" {
		return
	}
	_, s.err = io.WriteString(s.w, v)
}

func (s *sink) part(p Part) {
	if s.err != nil {
		return
	}
	if p == nil {
		return
	}
	switch v := p.part().(type) {
	case *Element:
		if v != nil {
			s.element(v)
		}
	case Fragment:
		s.parts(v.parts)
	case Group:
		s.parts(v)
	case Text:
		s.escaped(string(v), escapeText)
	case Raw:
		s.str(string(v))
	case Loose:
		s.escaped(v.String(), escapeText)
	case Attr:
		s.attr(v)
	}
}

func (s *sink) parts(parts []Part) {
	for _, p := range parts {
		s.part(p)
	}
}

func (s *sink) element(e *Element) {
	s.str("<")
	s.str(e.tag)
	for _, a := range e.attrs {
		s.attr(a)
	}
	s.str(">")
	if e.void {
		return
	}
	s.parts(e.children)
	s.str("</")
	s.str(e.tag)
	s.str(">")
}

func (s *sink) attr(a Attr) {
	if a.IsEmpty() {
		return
	}
	s.str(" ")
	s.str(a.Name)
	if a.Kind == AttrBoolean {
		return
	}
	s.str(`="`)
	s.escaped(a.Value, escapeAttr)
	s.str(`"`)
}
