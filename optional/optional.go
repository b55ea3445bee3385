// Package optional implements a fallible result type and Kleisli composition
// over it, i.e. the Maybe monad.
//
// A step is any func(T) Optional[U]. Compose chains two steps so that the
// first NotValid short-circuits the rest of the chain; absence is a normal
// return value, never a panic.
package optional

import (
	"errors"
	"fmt"
)

var ErrNotValid = errors.New("optional is not valid")

// Optional is Valid(value) or NotValid. The zero value is NotValid.
type Optional[T any] struct {
	value T
	valid bool
}

func Valid[T any](v T) Optional[T] {
	return Optional[T]{value: v, valid: true}
}

func NotValid[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsValid() bool {
	return o.valid
}

// Get returns the held value, or ErrNotValid.
func (o Optional[T]) Get() (T, error) {
	if !o.valid {
		var zero T
		return zero, fmt.Errorf("%w: %T", ErrNotValid, zero)
	}
	return o.value, nil
}

func (o Optional[T]) String() string {
	if o.valid {
		return fmt.Sprintf("Valid(%v)", o.value)
	}
	return "NotValid"
}

// Identity wraps x as Valid(x). It is the unit of Compose.
func Identity[T any](x T) Optional[T] {
	return Valid(x)
}

// Compose returns the Kleisli composition step1 >=> step2.
// step2 is not invoked when step1 yields NotValid.
func Compose[T, U, V any](
	step1 func(T) Optional[U],
	step2 func(U) Optional[V],
) func(T) Optional[V] {
	return func(x T) Optional[V] {
		return Bind(step1(x), step2)
	}
}

// Bind feeds the value held by o into step.
func Bind[T, U any](o Optional[T], step func(T) Optional[U]) Optional[U] {
	if !o.valid {
		return NotValid[U]()
	}
	return step(o.value)
}

// Map applies f to the held value, leaving NotValid untouched.
func Map[T, U any](o Optional[T], f func(T) U) Optional[U] {
	return Bind(o, func(t T) Optional[U] {
		return Valid(f(t))
	})
}
