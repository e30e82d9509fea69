package regen

import "iter"

// Bridges between Generator and the standard iter package, so generators
// can be consumed with range-over-func and stdlib sequences can feed the
// consumers here.

// Values exposes gen as an iter.Seq. A failure ends the sequence early;
// check gen.Error after the range to distinguish it from completion, or
// use All to receive the error in-band.
func Values[T any](gen Generator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for gen.Next() {
			if !yield(gen.Value()) {
				return
			}
		}
	}
}

// All exposes gen as an iter.Seq2 of (value, error) pairs. Values arrive
// with a nil error; if the generator fails, the final pair carries the
// failure and a zero value.
func All[T any](gen Generator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for gen.Next() {
			if !yield(gen.Value(), nil) {
				return
			}
		}
		if err := gen.Error(); err != nil {
			yield(*new(T), err)
		}
	}
}

// FromSeq wraps an iter.Seq as a Generator. The sequence is pulled
// lazily. Exhausting the adapter releases the underlying pull iterator;
// a caller that walks away early must call Close to release it.
func FromSeq[T any](seq iter.Seq[T]) *SeqAdapter[T] {
	next, stop := iter.Pull(seq)
	return &SeqAdapter[T]{next: next, stop: stop}
}

type SeqAdapter[T any] struct {
	next  func() (T, bool)
	stop  func()
	value T
	done  bool
}

func (s *SeqAdapter[T]) Next() bool {
	if s.done {
		return false
	}
	value, ok := s.next()
	if !ok {
		s.done = true
		s.stop()
		s.value = *new(T)
		return false
	}
	s.value = value
	return true
}

func (s *SeqAdapter[T]) Value() T {
	return s.value
}

func (s *SeqAdapter[T]) Error() error {
	return nil
}

// Close stops the underlying pull iterator and makes the adapter
// terminal. It is safe to call more than once, and after exhaustion.
func (s *SeqAdapter[T]) Close() error {
	if !s.done {
		s.done = true
		s.value = *new(T)
	}
	s.stop()
	return nil
}
