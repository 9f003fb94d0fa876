package components

import (
	"strconv"

	. "github.com/vango-dev/starter/el"
)

// CounterID is the id of the element replaced by counter fragment swaps.
const CounterID = "counter"

// CounterPath is the endpoint the counter form posts to.
const CounterPath = "/fragments/counter"

// CounterLimit bounds the counter in both directions.
const CounterLimit = 1_000_000

// Counter operations posted as the op form field.
const (
	OpIncrement = "inc"
	OpDecrement = "dec"
	OpReset     = "reset"
)

// Counter renders the counter widget showing n. Each button posts the
// current value and an operation; the response is a new Counter that
// replaces this one.
func Counter(n int) *Element {
	value := strconv.Itoa(n)
	return Form(
		ID(CounterID),
		Class("counter"),
		Method("post"),
		Action(CounterPath),
		Data("swap", "#"+CounterID),
		Input(Type("hidden"), Name("n"), Value(value)),
		Button(Type("submit"), Name("op"), Value(OpDecrement), AriaLabel("Decrement"), Text("-")),
		Output(Class("counter-value"), AriaLabel("Count"), Text(value)),
		Button(Type("submit"), Name("op"), Value(OpIncrement), AriaLabel("Increment"), Text("+")),
		Button(Type("submit"), Name("op"), Value(OpReset), Class("counter-reset"), Text("Reset")),
	)
}

// ValidCounter reports whether n is within ±CounterLimit.
func ValidCounter(n int) bool {
	return n >= -CounterLimit && n <= CounterLimit
}

// ApplyCounterOp returns the counter value after op, clamped to
// ±CounterLimit. Unknown operations leave n unchanged and report false.
func ApplyCounterOp(n int, op string) (int, bool) {
	switch op {
	case OpIncrement:
		n = min(n, CounterLimit-1) + 1
	case OpDecrement:
		n = max(n, -CounterLimit+1) - 1
	case OpReset:
		n = 0
	default:
		return n, false
	}
	return n, true
}
