// Package markup builds immutable HTML trees and serializes them.
//
// Trees are built bottom-up from parts. A part is an attribute (Attr), a node
// (*Element, Fragment, Text, Raw, Loose) or a Group of further parts:
//
//	page := Div(ID("main"), Class("card"),
//	    H1(Text("Title")),
//	    If(admin, Class("card-admin")),
//	    P(Text("Content")),
//	)
//	err := markup.Render(w, page)
//
// # Merge rules
//
// Element constructors flatten their parts and split them into attributes
// and children. Attributes keep the position at which their name (compared
// case-insensitively) first appeared. A repeated attribute overwrites the
// earlier value, except class attributes, which are concatenated:
//
//	Div(ID("x"), Class("a"), Class("b"), ID("y"), Text("hi"))
//	// <div id="y" class="a b">hi</div>
//
// Empty attributes (blank name, BoolAttr(name, false), Class() with no
// tokens) contribute nothing. Nil parts are skipped.
//
// # Encoding
//
// Text and attribute values are encoded when rendered, never when built.
// Raw is written unchanged and must only carry trusted markup.
//
// # Concurrency
//
// Nodes are never mutated after construction, so one tree may be rendered
// from several goroutines. Constructors borrow working buffers from
// process-wide pools (see PoolStats) and return them before they return.
package markup
