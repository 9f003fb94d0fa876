// Package scratch provides pooled, growable append buffers.
//
// Element construction in pkg/markup accumulates attributes and children into
// a Buffer before copying them into the exactly sized slices stored on the
// final node. Buffers come from a Pool so that rendering on every request does
// not allocate a fresh working array per element.
//
//	buf := pool.Acquire(len(parts))
//	defer buf.Release()
//	for _, p := range parts {
//	    buf.Append(p)
//	}
//	return buf.ToSlice()
//
// The working array never escapes: ToSlice always copies.
package scratch
