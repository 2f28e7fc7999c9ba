package collections

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"

	"github.com/tuannh982/assoc-array/utils/math"
)

const DefaultCapacity = 16

type EqualFunc[K any] func(a, b K) bool

// AssociativeArray stores key/value pairs in a linearly scanned sequence of
// slots. Removed slots are cleared in place and reused by later sets, so the
// slot order is not the insertion order. It is not safe for concurrent use.
//
// The zero value is an empty array using the standard logger. Its keys are
// compared with == when the key type is comparable and with cmp.Equal
// otherwise.
type AssociativeArray[K any, V any] struct {
	pairs []kvPair[K, V]
	size  int
	equal EqualFunc[K]
	log   *log.Entry
}

var _ Map[string, int] = (*AssociativeArray[string, int])(nil)

// exportAll lets go-cmp descend into unexported struct fields instead of
// panicking on them.
var exportAll = cmp.Exporter(func(reflect.Type) bool {
	return true
})

// New creates an associative array comparing keys with ==.
func New[K comparable, V any](opts ...Option) *AssociativeArray[K, V] {
	return NewWithEqualFunc[K, V](func(a, b K) bool {
		return a == b
	}, opts...)
}

// NewDeepEqual creates an associative array comparing keys with cmp.Equal,
// which allows slices and maps as keys. Unexported struct fields are compared
// too.
func NewDeepEqual[K any, V any](opts ...Option) *AssociativeArray[K, V] {
	return NewWithEqualFunc[K, V](deepEqual[K], opts...)
}

func NewWithEqualFunc[K any, V any](equal EqualFunc[K], opts ...Option) *AssociativeArray[K, V] {
	o := buildOptions(opts)
	return &AssociativeArray[K, V]{
		pairs: make([]kvPair[K, V], DefaultCapacity),
		size:  0,
		equal: equal,
		log:   o.logger,
	}
}

func (a *AssociativeArray[K, V]) Set(key K, value V) {
	a.lazyInit()
	if isNilKey(key) {
		a.log.Debug("set ignored nil key")
		return
	}
	if i, ok := a.find(key); ok {
		a.pairs[i].value = value
		return
	}
	for i := 0; i < len(a.pairs); i++ {
		// grow on reaching the last slot, before it is inspected
		if i == len(a.pairs)-1 {
			a.expand()
		}
		if !a.pairs[i].occupied {
			a.pairs[i] = kvPair[K, V]{
				key:      key,
				value:    value,
				occupied: true,
			}
			a.size++
			return
		}
	}
}

func (a *AssociativeArray[K, V]) Get(key K) (v V, err error) {
	if isNilKey(key) {
		return v, errors.Wrap(ErrKeyNotFound, "get nil key")
	}
	i, ok := a.find(key)
	if !ok {
		return v, errors.Wrapf(ErrKeyNotFound, "get %v", key)
	}
	return a.pairs[i].value, nil
}

func (a *AssociativeArray[K, V]) HasKey(key K) bool {
	if isNilKey(key) {
		return false
	}
	_, ok := a.find(key)
	return ok
}

func (a *AssociativeArray[K, V]) Remove(key K) {
	a.lazyInit()
	if isNilKey(key) {
		a.log.Debug("remove ignored nil key")
		return
	}
	i, ok := a.find(key)
	if !ok {
		if a.debugEnabled() {
			a.log.WithField("key", key).Debug("remove ignored missing key")
		}
		return
	}
	a.pairs[i] = kvPair[K, V]{}
	a.size--
}

func (a *AssociativeArray[K, V]) Size() int {
	return a.size
}

func (a *AssociativeArray[K, V]) Cap() int {
	if a.pairs == nil {
		return DefaultCapacity
	}
	return len(a.pairs)
}

// Clone returns an independent copy with the same capacity and slot layout.
// Keys and values are copied by assignment.
func (a *AssociativeArray[K, V]) Clone() *AssociativeArray[K, V] {
	return &AssociativeArray[K, V]{
		pairs: slices.Clone(a.pairs),
		size:  a.size,
		equal: a.equal,
		log:   a.log,
	}
}

func (a *AssociativeArray[K, V]) Keys() []K {
	arr := make([]K, 0, a.size)
	a.Visit(func(k K, _ V) bool {
		arr = append(arr, k)
		return false
	})
	return arr
}

func (a *AssociativeArray[K, V]) Values() []V {
	arr := make([]V, 0, a.size)
	a.Visit(func(_ K, v V) bool {
		arr = append(arr, v)
		return false
	})
	return arr
}

// Visit calls fn for every stored pair in slot order.
// Returns immediately if fn returns true.
func (a *AssociativeArray[K, V]) Visit(fn func(key K, value V) (stop bool)) {
	for i := range a.pairs {
		if !a.pairs[i].occupied {
			continue
		}
		if fn(a.pairs[i].key, a.pairs[i].value) {
			return
		}
	}
}

// Equal reports whether both arrays hold the same keys mapped to cmp.Equal
// values, regardless of slot layout. Unexported struct fields of values are
// compared too.
func (a *AssociativeArray[K, V]) Equal(other *AssociativeArray[K, V]) bool {
	if a == other {
		return true
	}
	if other == nil || a.size != other.size {
		return false
	}
	equal := true
	a.Visit(func(k K, v V) bool {
		i, ok := other.find(k)
		if !ok || !cmp.Equal(v, other.pairs[i].value, exportAll) {
			equal = false
			return true
		}
		return false
	})
	return equal
}

func (a *AssociativeArray[K, V]) String() string {
	if a.size == 0 {
		return "{}"
	}
	entries := make([]string, 0, a.size)
	a.Visit(func(k K, v V) bool {
		entries = append(entries, fmt.Sprintf("%v: %v", k, v))
		return false
	})
	return "{ " + strings.Join(entries, ", ") + " }"
}

func (a *AssociativeArray[K, V]) find(key K) (int, bool) {
	for i := range a.pairs {
		if a.pairs[i].occupied && a.equal(a.pairs[i].key, key) {
			return i, true
		}
	}
	return -1, false
}

func (a *AssociativeArray[K, V]) expand() {
	capacity := math.NextCapacity(len(a.pairs))
	if !math.IsPowerOfTwo(capacity) {
		a.log.WithField("capacity", capacity).Panic("associative array capacity is not a power of two")
	}
	grown := make([]kvPair[K, V], capacity)
	copy(grown, a.pairs)
	a.pairs = grown
	if a.debugEnabled() {
		a.log.WithFields(log.Fields{
			"size":     a.size,
			"capacity": len(a.pairs),
		}).Debug("associative array expanded")
	}
}

func (a *AssociativeArray[K, V]) lazyInit() {
	if a.pairs == nil {
		a.pairs = make([]kvPair[K, V], DefaultCapacity)
	}
	if a.equal == nil {
		a.equal = zeroValueEqual[K]
	}
	if a.log == nil {
		a.log = buildOptions(nil).logger
	}
}

func (a *AssociativeArray[K, V]) debugEnabled() bool {
	return a.log.Logger.IsLevelEnabled(log.DebugLevel)
}

func deepEqual[K any](a, b K) bool {
	return cmp.Equal(a, b, exportAll)
}

func zeroValueEqual[K any](a, b K) bool {
	x, y := any(a), any(b)
	if t := reflect.TypeOf(x); t != nil && !t.Comparable() {
		return cmp.Equal(x, y, exportAll)
	}
	return x == y
}
