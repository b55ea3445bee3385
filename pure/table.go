package pure

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Table caches results by key.
//
// An unbounded table (MaxTableSize 0) only ever grows. A bounded table keeps
// two generations: lookups consult both, stores go to the head, and once the
// head holds MaxTableSize entries the older generation is dropped and a fresh
// head takes its place.
//
// Table is not safe for concurrent use.
type Table[O any] struct {
	ID string

	gens    [2]map[any]O
	headIdx int
	maxSize uint32
	hits    uint64
	misses  uint64
	logger  *zap.Logger
}

func NewTable[O any](cfg Config) *Table[O] {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	t := &Table[O]{
		ID:      uuid.New().String(),
		gens:    [2]map[any]O{{}, {}},
		maxSize: cfg.MaxTableSize,
	}
	t.logger = cfg.Logger.With(zap.String("tableId", t.ID))
	t.logger.Debug("created memo table", zap.Uint32("maxTableSize", t.maxSize))
	return t
}

func (t *Table[O]) Load(key any) (O, bool) {
	if v, ok := t.gens[t.headIdx][key]; ok {
		t.hits++
		return v, true
	}
	if v, ok := t.gens[1-t.headIdx][key]; ok {
		t.hits++
		return v, true
	}
	t.misses++
	var zero O
	return zero, false
}

// peek is Load without touching the hit and miss counters.
func (t *Table[O]) peek(key any) (O, bool) {
	if v, ok := t.gens[t.headIdx][key]; ok {
		return v, true
	}
	v, ok := t.gens[1-t.headIdx][key]
	return v, ok
}

func (t *Table[O]) Store(key any, value O) {
	head := t.gens[t.headIdx]
	if _, exists := head[key]; !exists && t.maxSize > 0 && uint32(len(head)) >= t.maxSize {
		t.rotate()
	}
	t.gens[t.headIdx][key] = value
}

// rotate discards the older generation and makes it the new, empty head.
func (t *Table[O]) rotate() {
	t.headIdx = 1 - t.headIdx
	dropped := len(t.gens[t.headIdx])
	t.gens[t.headIdx] = map[any]O{}
	t.logger.Debug("rotated memo table generation", zap.Int("dropped", dropped))
}

func (t *Table[O]) logMiss(key any) {
	if ce := t.logger.Check(zap.DebugLevel, "memo miss"); ce != nil {
		ce.Write(zap.Any("key", key))
	}
}

// Len returns the number of distinct keys currently held.
func (t *Table[O]) Len() int {
	n := len(t.gens[t.headIdx])
	for k := range t.gens[1-t.headIdx] {
		if _, dup := t.gens[t.headIdx][k]; !dup {
			n++
		}
	}
	return n
}

func (t *Table[O]) Hits() uint64 {
	return t.hits
}

func (t *Table[O]) Misses() uint64 {
	return t.misses
}
