package counter

// Fmap lifts f into the Counter functor. It is Fish applied to Id, so the
// incoming counter is itself treated as the first arrow.
//
//	(a -> b) -> (m a -> m b)
func Fmap[A, B any](f func(A) B) func(Counter[A]) Counter[B] {
	return Fish(Id[Counter[A]], func(a A) Counter[B] {
		return Return(f(a))
	})
}

// FmapDirect maps the value and leaves the cost untouched.
func FmapDirect[A, B any](f func(A) B) func(Counter[A]) Counter[B] {
	return func(c Counter[A]) Counter[B] {
		return Counter[B]{Value: f(c.Value), Cost: c.Cost}
	}
}

// FmapViaBind is Fmap expressed with Bind and Return.
func FmapViaBind[A, B any](f func(A) B) func(Counter[A]) Counter[B] {
	return func(c Counter[A]) Counter[B] {
		return Bind(c, func(a A) Counter[B] {
			return Return(f(a))
		})
	}
}
