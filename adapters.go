package regen

// Adapters wrap existing collections in the Generator interface so that
// machine-produced and collection-backed sequences compose with the same
// consumers.

type SliceAdapter[T any] struct {
	slice []T
	index int
}

// FromSlice returns a generator over the elements of slice, in order.
func FromSlice[T any](slice []T) *SliceAdapter[T] {
	return &SliceAdapter[T]{slice: slice, index: -1}
}

func (s *SliceAdapter[T]) Next() bool {
	if s.index+1 >= len(s.slice) {
		s.index = len(s.slice)
		return false
	}
	s.index++
	return true
}

func (s *SliceAdapter[T]) Value() T {
	return s.slice[s.index]
}

func (s *SliceAdapter[T]) Error() error {
	return nil
}

type Pair[First, Second any] struct {
	First  First
	Second Second
}

type MapAdapter[K comparable, V any] struct {
	items []Pair[K, V]
	index int
}

// FromMap returns a key-value generator over the entries of m. Iteration
// order is unspecified, matching the underlying map.
func FromMap[K comparable, V any](m map[K]V) *MapAdapter[K, V] {
	items := make([]Pair[K, V], 0, len(m))
	for key, value := range m {
		items = append(items, Pair[K, V]{First: key, Second: value})
	}
	return &MapAdapter[K, V]{items: items, index: -1}
}

func (m *MapAdapter[K, V]) Next() bool {
	if m.index+1 >= len(m.items) {
		m.index = len(m.items)
		return false
	}
	m.index++
	return true
}

func (m *MapAdapter[K, V]) Value() (K, V) {
	item := m.items[m.index]
	return item.First, item.Second
}

func (m *MapAdapter[K, V]) Error() error {
	return nil
}

type ChannelAdapter[T any] struct {
	ch    <-chan T
	value T
	done  bool
}

// FromChannel returns a generator that pulls from ch until it is closed.
// Each Next performs one receive, so a goroutine feeding the channel acts
// as the producer side of the sequence.
func FromChannel[T any](ch <-chan T) *ChannelAdapter[T] {
	return &ChannelAdapter[T]{ch: ch}
}

func (c *ChannelAdapter[T]) Next() bool {
	if c.done {
		return false
	}
	value, ok := <-c.ch
	if !ok {
		c.done = true
		c.value = *new(T)
		return false
	}
	c.value = value
	return true
}

func (c *ChannelAdapter[T]) Value() T {
	return c.value
}

func (c *ChannelAdapter[T]) Error() error {
	return nil
}
