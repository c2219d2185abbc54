package validator

// Unbounded marks a Bound with no upper limit.
const Unbounded = -1

// Bound constrains a count to the inclusive range [Min, Max]. A Max of
// Unbounded lifts the upper limit; {0, 0} forbids any occurrence.
// Invariant: Min <= Max when Max is finite.
type Bound struct {
	Min int
	Max int
}

// AtLeast returns a Bound requiring a minimum of n with no upper limit.
func AtLeast(n int) Bound {
	return Bound{Min: n, Max: Unbounded}
}

// Between returns a Bound requiring between min and max occurrences inclusive.
func Between(min, max int) Bound {
	return Bound{Min: min, Max: max}
}

func (b Bound) unbounded() bool {
	return b.Max == Unbounded
}
