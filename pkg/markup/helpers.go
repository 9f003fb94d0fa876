package markup

// Doctype prefixes parts with the HTML5 doctype declaration.
func Doctype(parts ...Part) Fragment {
	return Frag(Raw("<!DOCTYPE html>"), Group(parts))
}

// If returns p if condition is true, nil otherwise.
func If(condition bool, p Part) Part {
	if condition {
		return p
	}
	return nil
}

// IfElse returns ifTrue if condition is true, ifFalse otherwise.
func IfElse(condition bool, ifTrue, ifFalse Part) Part {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() Part) Part {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
func Unless(condition bool, p Part) Part {
	if !condition {
		return p
	}
	return nil
}

// Range maps a slice to a Group, skipping nil results.
func Range[T any](items []T, fn func(item T, index int) Part) Group {
	result := make(Group, 0, len(items))
	for i, item := range items {
		if p := fn(item, i); p != nil {
			result = append(result, p)
		}
	}
	return result
}

// Repeat creates n parts using the given function.
func Repeat(n int, fn func(i int) Part) Group {
	if n <= 0 {
		return nil
	}
	result := make(Group, 0, n)
	for i := 0; i < n; i++ {
		if p := fn(i); p != nil {
			result = append(result, p)
		}
	}
	return result
}

// Join places sep between each non-nil part.
func Join(sep Part, parts ...Part) Group {
	result := make(Group, 0, 2*len(parts))
	for _, p := range parts {
		if p == nil {
			continue
		}
		if len(result) > 0 {
			result = append(result, sep)
		}
		result = append(result, p)
	}
	return result
}
