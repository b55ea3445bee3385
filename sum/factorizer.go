package sum

// Factorizer returns the unique function m out of Either[A, B] such that
// m(Left(a)) == f(a) and m(Right(b)) == g(b).
//
//	factorizer :: (a -> c) -> (b -> c) -> Either a b -> c
func Factorizer[A, B, C any](f func(A) C, g func(B) C) func(Either[A, B]) C {
	return func(e Either[A, B]) C {
		return Match(e, f, g)
	}
}
