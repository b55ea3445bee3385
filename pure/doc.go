// Package pure memoizes pure functions by their input values.
//
// Memoize is not just a performance trick. Wrapping a function forces the
// question of whether it really is pure: a memoized function is treated as a
// lazily filled table, so anything that depends on time, I/O or hidden state
// will silently return stale answers.
//
// Features:
//   - Memoize and Memoize2: unbounded, single-goroutine memoizers.
//   - MemoizeBounded: a two-generation table that drops the older generation
//     once the newer one is full.
//   - Synchronized: a concurrency-safe memoizer with striped locks that runs
//     the wrapped function at most once per key.
//
// Arguments are keyed by value when their type is comparable and by String()
// when it is not but implements fmt.Stringer. Anything else panics with
// ErrUnhashableKey.
//
// Every wrapper owns its own table; two wrappers around the same function
// never share results.
package pure
