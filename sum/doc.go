// Package sum provides two tagged unions, Either and Maybe, along with the
// arrows that relate them.
//
// Go has no native sum types. Either and Maybe are encoded as small structs
// carrying a discriminator, so the empty case can never be confused with a
// zero payload and both cases stay pattern-matchable through Match.
//
// The package exports:
//   - Either[L, R] with Left / Right injections
//   - Maybe[A] with Just / Nothing
//   - EitherToMaybe and MaybeToEither, an isomorphism between Either[Unit, A] and Maybe[A]
//   - Factorizer, the universal morphism out of the coproduct Either[A, B]
//
// Example:
//
//	m := sum.Factorizer(strconv.Itoa, strconv.FormatBool)
//	m(sum.Left[int, bool](7))      // "7"
//	m(sum.Right[int](true))        // "true"
package sum
