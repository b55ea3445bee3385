package pure_test

import (
	"fmt"
	"testing"

	"github.com/on-the-ground/kleisli_go/pure"
)

func naiveFib(n int) int {
	if n <= 1 {
		return n
	}
	return naiveFib(n-1) + naiveFib(n-2)
}

func BenchmarkNaiveFib20(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveFib(20)
	}
}

func BenchmarkMemoizedFib20(b *testing.B) {
	var fib func(int) int
	fib = pure.Memoize(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	})

	for i := 0; i < b.N; i++ {
		_ = fib(20)
	}
}

func BenchmarkSynchronizedFib20(b *testing.B) {
	var fib func(int) int
	fib = pure.Synchronized(func(n int) int {
		if n <= 1 {
			return n
		}
		return fib(n-1) + fib(n-2)
	}, pure.WithStripes(8))

	for i := 0; i < b.N; i++ {
		_ = fib(20)
	}
}

func naiveLevenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if a[0] == b[0] {
		return naiveLevenshtein(a[1:], b[1:])
	}
	return 1 + min(
		naiveLevenshtein(a[1:], b),
		naiveLevenshtein(a, b[1:]),
		naiveLevenshtein(a[1:], b[1:]),
	)
}

func BenchmarkNaiveLevenshtein(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = naiveLevenshtein("kitten", "sitting")
	}
}

func BenchmarkMemoizedLevenshtein(b *testing.B) {
	var lev func(string, string) int
	lev = pure.Memoize2(func(a, b string) int {
		if len(a) == 0 {
			return len(b)
		}
		if len(b) == 0 {
			return len(a)
		}
		if a[0] == b[0] {
			return lev(a[1:], b[1:])
		}
		return 1 + min(
			lev(a[1:], b),
			lev(a, b[1:]),
			lev(a[1:], b[1:]),
		)
	})

	for i := 0; i < b.N; i++ {
		_ = lev("kitten", "sitting")
	}
}

func BenchmarkBoundedFib(b *testing.B) {
	for _, size := range []uint32{2, 8, 32} {
		b.Run(fmt.Sprintf("TableSize_%d", size), func(b *testing.B) {
			var fib func(int) int
			fib = pure.MemoizeBounded(func(n int) int {
				if n <= 1 {
					return n
				}
				return fib(n-1) + fib(n-2)
			}, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = fib(20)
			}
		})
	}
}
