package counter

import "fmt"

// Counter pairs a value with the cost spent producing it.
type Counter[T any] struct {
	Value T
	Cost  uint32
}

func Of[T any](value T, cost uint32) Counter[T] {
	return Counter[T]{Value: value, Cost: cost}
}

func (c Counter[T]) String() string {
	return fmt.Sprintf("(%v, %d)", c.Value, c.Cost)
}

// Id is the identity function.
func Id[A any](a A) A {
	return a
}

// Return wraps a with cost 0.
//
//	a -> m a
func Return[A any](a A) Counter[A] {
	return Counter[A]{Value: a}
}

// Fish composes two Kleisli arrows, adding their costs.
//
//	(a -> m b) -> (b -> m c) -> (a -> m c)
func Fish[A, B, C any](m1 func(A) Counter[B], m2 func(B) Counter[C]) func(A) Counter[C] {
	return func(a A) Counter[C] {
		b := m1(a)
		c := m2(b.Value)
		return Counter[C]{Value: c.Value, Cost: b.Cost + c.Cost}
	}
}

// Bind feeds the value of c into f, adding the costs.
//
//	m a -> (a -> m b) -> m b
func Bind[A, B any](c Counter[A], f func(A) Counter[B]) Counter[B] {
	b := f(c.Value)
	return Counter[B]{Value: b.Value, Cost: c.Cost + b.Cost}
}

// Join flattens a nested counter; the total cost is preserved.
//
//	m (m a) -> m a
func Join[A any](c Counter[Counter[A]]) Counter[A] {
	return Counter[A]{Value: c.Value.Value, Cost: c.Value.Cost + c.Cost}
}

// BindViaJoin is Bind expressed with Join and Fmap.
func BindViaJoin[A, B any](c Counter[A], f func(A) Counter[B]) Counter[B] {
	return Join(Fmap(f)(c))
}
