package markup

import "testing"

func TestConstructorsBorrowAndReturnBuffers(t *testing.T) {
	attrsBefore, partsBefore := PoolStats()

	_ = Div(ID("a"), Span(Text("b")))
	_ = Flatten(Group{Text("x")})

	attrsAfter, partsAfter := PoolStats()
	// Div and Span each borrow one attribute and one part buffer; Flatten
	// borrows one part buffer.
	if got := attrsAfter.Acquired - attrsBefore.Acquired; got < 2 {
		t.Errorf("attribute buffers acquired = %d, want >= 2", got)
	}
	if got := partsAfter.Acquired - partsBefore.Acquired; got < 3 {
		t.Errorf("part buffers acquired = %d, want >= 3", got)
	}

	attrReturned := (attrsAfter.Released + attrsAfter.Discarded) - (attrsBefore.Released + attrsBefore.Discarded)
	if attrReturned < 2 {
		t.Errorf("attribute buffers returned = %d, want >= 2", attrReturned)
	}
}

func TestWideElementGrowsScratch(t *testing.T) {
	parts := make(Group, 0, 100)
	for i := 0; i < 100; i++ {
		parts = append(parts, Li(Val(i)))
	}
	// A single Group part sizes the buffer for one item, so it has to grow.
	ul := Ul(parts)
	if len(ul.Children()) != 100 {
		t.Fatalf("len(Children()) = %d, want 100", len(ul.Children()))
	}
	if cap(ul.children) != 100 {
		t.Errorf("children cap = %d, want exact 100", cap(ul.children))
	}
}
