package collections

type Map[K any, V any] interface {
	Set(k K, v V)
	Get(k K) (V, error)
	HasKey(k K) bool
	Remove(k K)
	Size() int
	Keys() []K
	Values() []V
	String() string
}
