package markup

import "github.com/vango-dev/starter/internal/scratch"

// Scratch pools shared by every constructor in the process. Buffers are
// acquired and released within a single constructor call.
var (
	attrPool = scratch.NewPool[Attr](8)
	partPool = scratch.NewPool[Part](8)
)

type partBuffer = *scratch.Buffer[Part]

// PoolStats reports the scratch pool counters for attributes and parts.
func PoolStats() (attrs, parts scratch.Stats) {
	return attrPool.Stats(), partPool.Stats()
}
