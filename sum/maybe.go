package sum

import (
	"errors"
	"fmt"
)

var ErrNothing = errors.New("maybe holds nothing")

// Maybe is either Just a value or Nothing.
// The zero value is Nothing.
type Maybe[A any] struct {
	value A
	just  bool
}

func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, just: true}
}

func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

func (m Maybe[A]) IsJust() bool {
	return m.just
}

func (m Maybe[A]) IsNothing() bool {
	return !m.just
}

// Get returns the held value, or ErrNothing when m is empty.
func (m Maybe[A]) Get() (A, error) {
	if !m.just {
		var zero A
		return zero, fmt.Errorf("%w: %T", ErrNothing, zero)
	}
	return m.value, nil
}

// OrElse returns the held value, or def when m is empty.
func (m Maybe[A]) OrElse(def A) A {
	if m.just {
		return m.value
	}
	return def
}

func (m Maybe[A]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}
