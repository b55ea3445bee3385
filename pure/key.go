package pure

import (
	"errors"
	"fmt"
	"reflect"
)

// ComparableOrStringer documents the requirement on memoized arguments: a
// comparable type, or a type implementing fmt.Stringer.
type ComparableOrStringer any

var ErrUnhashableKey = errors.New("argument is neither comparable nor a fmt.Stringer")

// tableKey returns a value usable as a map key for arg.
func tableKey(arg ComparableOrStringer) any {
	if arg == nil {
		return nil
	}
	// the dynamic value decides: an interface field may hold a slice
	if reflect.ValueOf(arg).Comparable() {
		return arg
	}
	if stringer, ok := arg.(fmt.Stringer); ok {
		return stringer.String()
	}
	panic(fmt.Errorf("%w: %T", ErrUnhashableKey, arg))
}

// stripeKey renders key for hashing onto a stripe. A top-level pointer is
// rendered by address so that its stripe does not follow the pointee.
func stripeKey(key any) string {
	switch reflect.ValueOf(key).Kind() {
	case reflect.Pointer, reflect.UnsafePointer:
		return fmt.Sprintf("%T:%p", key, key)
	default:
		return fmt.Sprintf("%T:%#v", key, key)
	}
}

// pairKey is the key of a two-argument call.
type pairKey struct {
	first, second any
}
