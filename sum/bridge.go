package sum

// EitherToMaybe maps Left(Unit{}) to Nothing and Right(a) to Just(a).
func EitherToMaybe[A any](e Either[Unit, A]) Maybe[A] {
	if a, ok := e.Right(); ok {
		return Just(a)
	}
	return Nothing[A]()
}

// MaybeToEither is the inverse of EitherToMaybe.
//
//	MaybeToEither(EitherToMaybe(e)) == e
func MaybeToEither[A any](m Maybe[A]) Either[Unit, A] {
	if m.just {
		return Right[Unit](m.value)
	}
	return Left[Unit, A](Unit{})
}
