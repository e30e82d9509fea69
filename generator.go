// Package regen provides pull-based, resumable sequence generators.
//
// A generator is defined as a program of ordered steps: ordinary
// side-effecting steps and suspend points that emit a value. Instantiating
// the program runs none of it; every value is produced on demand, one
// Advance at a time, so infinite sequences cost only as much as the caller
// pulls.
package regen

// Generator is the pull interface shared by machines and adapters.
// The usage pattern is:
//
//	for gen.Next() {
//		use(gen.Value())
//	}
//	if err := gen.Error(); err != nil {
//		...
//	}
//
// Next reports whether a value was produced. Once it returns false it keeps
// returning false, and Error reports the failure that stopped the sequence,
// if any.
type Generator[T any] interface {
	Next() bool
	Value() T
	Error() error
}

// Generator2 is the pull interface for key-value sequences.
type Generator2[K, V any] interface {
	Next() bool
	Value() (K, V)
	Error() error
}

// GeneratorFunction adapts a raw advance closure into a Generator.
// It is the escape hatch for sequences that don't fit the step builder:
// the closure owns all state and reports one of three outcomes per call.
type GeneratorFunction[T any] struct {
	Advance func() (hasValue bool, value T, err error)

	value T
	err   error
	done  bool
}

func (g *GeneratorFunction[T]) Next() bool {
	if g.done {
		return false
	}
	hasValue, value, err := g.Advance()
	g.value = value
	g.err = err
	if !hasValue || err != nil {
		g.done = true
		return false
	}
	return true
}

func (g *GeneratorFunction[T]) Value() T {
	return g.value
}

func (g *GeneratorFunction[T]) Error() error {
	return g.err
}

// Failed returns a generator that is terminal from birth: Next is
// immediately false and Error reports err.
func Failed[T any](err error) Generator[T] {
	return &failedGenerator[T]{err: err}
}

type failedGenerator[T any] struct {
	err error
}

func (g *failedGenerator[T]) Next() bool {
	return false
}

func (g *failedGenerator[T]) Value() T {
	return *new(T)
}

func (g *failedGenerator[T]) Error() error {
	return g.err
}
