package el

import "github.com/vango-dev/starter/pkg/markup"

// Type aliases for the markup primitives used by the DSL.
type Part = markup.Part
type Node = markup.Node
type Element = markup.Element
type Fragment = markup.Fragment
type Group = markup.Group
type Text = markup.Text
type Raw = markup.Raw
type Loose = markup.Loose
type Attr = markup.Attr
type AttrKind = markup.AttrKind

// Attribute kinds.
const (
	AttrEmpty   = markup.AttrEmpty
	AttrNormal  = markup.AttrNormal
	AttrBoolean = markup.AttrBoolean
	AttrClass   = markup.AttrClass
)
