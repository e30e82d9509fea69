package regen

import "sync"

// A generator handle is single-owner: advancing one machine from multiple
// goroutines is undefined. SharedGenerator is the opt-in guard for callers
// that must share a handle, for example workers draining one sequence of
// work items. Pull is the only access point, so each caller gets a
// coherent (value, ok) pair instead of the racy Next/Value split.
type SharedGenerator[T any] struct {
	mu  sync.Mutex
	gen Generator[T]
}

// Share wraps gen for concurrent pulling. The wrapped generator must not
// be used directly afterwards.
func Share[T any](gen Generator[T]) *SharedGenerator[T] {
	return &SharedGenerator[T]{gen: gen}
}

// Pull advances the underlying generator by one value. ok is false once
// the sequence has ended or failed; all pullers observe the same terminal
// state.
func (s *SharedGenerator[T]) Pull() (value T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.gen.Next() {
		return *new(T), false
	}
	return s.gen.Value(), true
}

// Error reports the underlying generator's failure, if any.
func (s *SharedGenerator[T]) Error() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Error()
}
