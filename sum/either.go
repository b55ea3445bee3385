package sum

import "fmt"

// Unit is the type with exactly one value.
type Unit = struct{}

// Either holds exactly one of a Left value or a Right value.
// The zero value is Left of the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left injects l into the left case.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right injects r into the right case.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left payload and whether e is a Left.
func (e Either[L, R]) Left() (l L, ok bool) {
	if e.isRight {
		return
	}
	return e.left, true
}

// Right returns the right payload and whether e is a Right.
func (e Either[L, R]) Right() (r R, ok bool) {
	if !e.isRight {
		return
	}
	return e.right, true
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// Match eliminates e by applying onLeft or onRight to the populated case.
func Match[L, R, C any](e Either[L, R], onLeft func(L) C, onRight func(R) C) C {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
