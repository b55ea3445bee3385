// Package counter implements the Counter monad: a value paired with the
// accumulated cost of the steps that produced it.
//
// A Kleisli arrow here is any func(A) Counter[B]. Sequencing two arrows adds
// their costs, and Return has cost 0, so the costs form a monoid under
// addition and the usual laws hold:
//
//	Fish(Fish(f, g), h) == Fish(f, Fish(g, h))   // associativity
//	Fish(Return, f)     == f                     // left unit
//	Fish(f, Return)     == f                     // right unit
//
// Fmap is provided three ways (through Fish, directly, and through Bind) and
// BindViaJoin rebuilds Bind from Join and Fmap; all variants agree.
package counter
