package markup

// Part is anything a node constructor accepts: an Attr, a node (*Element,
// Fragment, Text, Raw, Loose) or a Group of further parts. A nil Part, or a
// nil *Element, is absence and contributes nothing.
//
// The set of implementations is closed; Part cannot be implemented outside
// this package except by embedding one of its types. An embedding type is
// treated as the value it embeds, so a struct wrapping an Attr is still an
// attribute and one wrapping an *Element still renders as markup.
type Part interface {
	part() Part
}

// Group is a nested sequence of parts. Constructors splice a Group into
// their own part list, so helpers can return zero or many parts at once:
//
//	func primary(on bool) Part {
//	    if !on {
//	        return nil
//	    }
//	    return Group{Class("btn-primary"), Data("variant", "primary")}
//	}
type Group []Part

func (g Group) part() Part { return g }

// Flatten expands nested Groups depth-first into one ordered slice, dropping
// nil parts. Nodes are leaves: a Text is never split and a Fragment or
// *Element is never expanded.
func Flatten(parts ...Part) []Part {
	buf := partPool.Acquire(len(parts))
	defer buf.Release()
	flattenInto(buf, parts)
	return buf.ToSlice()
}

func flattenInto(buf partBuffer, parts []Part) {
	for _, p := range parts {
		if p == nil {
			continue
		}
		switch v := p.part().(type) {
		case Group:
			flattenInto(buf, v)
		case *Element:
			if v != nil {
				buf.Append(v)
			}
		default:
			buf.Append(v)
		}
	}
}
