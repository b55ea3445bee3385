package pure

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/on-the-ground/kleisli_go/shared/helper"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Synchronized wraps f with an unbounded cache that is safe for concurrent use.
//
// Keys are spread over cfg.NumStripes independently locked tables by hash, and
// concurrent misses on the same key share a single call to f. The lock of a
// stripe is never held while f runs, so f may call the memoized function
// recursively on other keys.
func Synchronized[A ComparableOrStringer, B any](f func(A) B, opts ...Option) func(A) B {
	cfg := NewConfig(opts...)
	cfg.MaxTableSize = 0
	stripes := make([]*stripe[B], cfg.NumStripes)
	for i := range stripes {
		stripes[i] = &stripe[B]{
			table:   NewTable[B](cfg),
			flights: map[any]string{},
		}
	}
	var group singleflight.Group

	return func(a A) B {
		key := tableKey(a)
		s := stripes[stripeIndex(stripeKey(key), len(stripes))]

		v, flightId, ok := s.loadOrJoin(key)
		if ok {
			return v
		}

		return helper.MustGetTypedValue[B](func() (any, error) {
			v, err, shared := group.Do(flightId, func() (any, error) {
				// an earlier flight for the same key may have landed already
				if v, ok := s.peek(key); ok {
					return v, nil
				}
				v := f(a)
				s.land(key, v)
				return v, nil
			})
			if shared {
				s.table.logger.Debug("shared in-flight call", zap.String("flightId", flightId))
			}
			return v, err
		})
	}
}

// stripe is one locked partition of a Synchronized table. flights maps each
// key currently being computed to its singleflight id, so that two keys
// never share a flight.
type stripe[O any] struct {
	mu      sync.Mutex
	table   *Table[O]
	flights map[any]string
}

// loadOrJoin returns the cached value for key, or the id of the flight
// computing it, starting a new id if none is in progress.
func (s *stripe[O]) loadOrJoin(key any) (v O, flightId string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok = s.table.Load(key); ok {
		return
	}
	flightId, inFlight := s.flights[key]
	if !inFlight {
		flightId = uuid.New().String()
		s.flights[key] = flightId
	}
	return
}

func (s *stripe[O]) peek(key any) (O, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.table.peek(key)
}

// land stores the result of a flight and retires its id.
func (s *stripe[O]) land(key any, value O) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table.Store(key, value)
	delete(s.flights, key)
	s.table.logMiss(key)
}

func stripeIndex(key string, numStripes int) int {
	switch numStripes {
	case 0:
		panic("number of stripes cannot be 0")
	case 1:
		return 0
	default:
		return int(xxhash.Sum64String(key) % uint64(numStripes))
	}
}
