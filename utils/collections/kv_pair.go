package collections

import "reflect"

// kvPair is one slot of the backing sequence. The zero value is an empty slot.
type kvPair[K any, V any] struct {
	key      K
	value    V
	occupied bool
}

func isNilKey(key any) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
