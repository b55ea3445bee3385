package pure

// Memoize wraps f with an unbounded cache keyed by its argument.
// The returned function is not safe for concurrent use; see Synchronized.
func Memoize[A ComparableOrStringer, B any](f func(A) B, opts ...Option) func(A) B {
	cfg := NewConfig(opts...)
	cfg.MaxTableSize = 0
	return memoizeWith(NewTable[B](cfg), f)
}

// MemoizeBounded is Memoize over a two-generation table holding at most
// 2*maxTableSize entries.
func MemoizeBounded[A ComparableOrStringer, B any](
	f func(A) B,
	maxTableSize uint32,
	opts ...Option,
) func(A) B {
	if maxTableSize == 0 {
		panic("maxTableSize should be greater than 0")
	}
	cfg := NewConfig(opts...)
	cfg.MaxTableSize = maxTableSize
	return memoizeWith(NewTable[B](cfg), f)
}

// Memoize2 wraps a two-argument f with an unbounded cache keyed by the pair
// of arguments.
func Memoize2[A1, A2 ComparableOrStringer, B any](f func(A1, A2) B, opts ...Option) func(A1, A2) B {
	cfg := NewConfig(opts...)
	cfg.MaxTableSize = 0
	table := NewTable[B](cfg)
	return func(a1 A1, a2 A2) B {
		key := pairKey{first: tableKey(a1), second: tableKey(a2)}
		v, ok := table.Load(key)
		if !ok {
			v = f(a1, a2)
			table.Store(key, v)
			table.logMiss(key)
		}
		return v
	}
}

func memoizeWith[A ComparableOrStringer, B any](table *Table[B], f func(A) B) func(A) B {
	return func(a A) B {
		key := tableKey(a)
		v, ok := table.Load(key)
		if !ok {
			v = f(a)
			table.Store(key, v)
			table.logMiss(key)
		}
		return v
	}
}
