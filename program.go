package regen

import (
	"github.com/pkg/errors"
)

// A program is a linear list of instructions with explicit jump targets.
// The builder flattens structured definitions (loops, branches) into this
// form, and the machine executes it one suspend point at a time. Local
// state lives in the closures the definition captures, so declaring the
// locals inside the definition function gives every machine its own copy.

type opKind int

const (
	// opDo runs a side effect and falls through to the next instruction.
	opDo opKind = iota
	// opYield computes a value, suspends, and resumes at the next
	// instruction on the following advance.
	opYield
	// opJump moves the program counter to target unconditionally.
	opJump
	// opBranch falls through when cond holds and jumps to target when it
	// doesn't.
	opBranch
)

type instruction[T any] struct {
	kind   opKind
	effect func() error
	emit   func() T
	cond   func() bool
	target int
}

// Builder assembles a generator program. Methods append instructions in
// definition order; structured constructs take the body as a callback on
// the same builder.
type Builder[T any] struct {
	code []instruction[T]
	err  error
}

// Do appends a side-effecting step. The step runs exactly once, during the
// advance call that crosses it.
func (b *Builder[T]) Do(step func()) *Builder[T] {
	if step == nil {
		b.fail("Do: nil step")
		return b
	}
	b.code = append(b.code, instruction[T]{kind: opDo, effect: func() error {
		step()
		return nil
	}})
	return b
}

// Try appends a fallible step. A non-nil error makes the machine terminal
// and surfaces from the advance call that ran the step.
func (b *Builder[T]) Try(step func() error) *Builder[T] {
	if step == nil {
		b.fail("Try: nil step")
		return b
	}
	b.code = append(b.code, instruction[T]{kind: opDo, effect: step})
	return b
}

// Yield appends a suspend point emitting a fixed value.
func (b *Builder[T]) Yield(value T) *Builder[T] {
	b.code = append(b.code, instruction[T]{kind: opYield, emit: func() T { return value }})
	return b
}

// YieldFrom appends a suspend point whose value is computed when the
// advance call reaches it.
func (b *Builder[T]) YieldFrom(value func() T) *Builder[T] {
	if value == nil {
		b.fail("YieldFrom: nil value function")
		return b
	}
	b.code = append(b.code, instruction[T]{kind: opYield, emit: value})
	return b
}

// Loop appends an unbounded loop. The body must contain a suspend point;
// otherwise a single advance could run forever, and New rejects the
// program.
func (b *Builder[T]) Loop(body func(l *Builder[T])) *Builder[T] {
	start := len(b.code)
	body(b)
	if !b.yieldsBetween(start, len(b.code)) {
		b.fail("Loop: body has no suspend point")
		return b
	}
	b.code = append(b.code, instruction[T]{kind: opJump, target: start})
	return b
}

// While appends a conditional loop. cond is evaluated before each
// iteration; the loop exits when it reports false.
func (b *Builder[T]) While(cond func() bool, body func(l *Builder[T])) *Builder[T] {
	if cond == nil {
		b.fail("While: nil condition")
		return b
	}
	start := len(b.code)
	b.code = append(b.code, instruction[T]{kind: opBranch, cond: cond})
	body(b)
	b.code = append(b.code, instruction[T]{kind: opJump, target: start})
	b.code[start].target = len(b.code)
	return b
}

// If appends a two-way branch. els may be nil for a plain if.
func (b *Builder[T]) If(cond func() bool, then func(l *Builder[T]), els func(l *Builder[T])) *Builder[T] {
	if cond == nil {
		b.fail("If: nil condition")
		return b
	}
	branch := len(b.code)
	b.code = append(b.code, instruction[T]{kind: opBranch, cond: cond})
	then(b)
	if els == nil {
		b.code[branch].target = len(b.code)
		return b
	}
	jump := len(b.code)
	b.code = append(b.code, instruction[T]{kind: opJump})
	b.code[branch].target = len(b.code)
	els(b)
	b.code[jump].target = len(b.code)
	return b
}

func (b *Builder[T]) yieldsBetween(start, end int) bool {
	for _, inst := range b.code[start:end] {
		if inst.kind == opYield {
			return true
		}
	}
	return false
}

func (b *Builder[T]) fail(msg string) {
	if b.err == nil {
		b.err = errors.New(msg)
	}
}

// New instantiates a program definition into a fresh machine. The
// definition function runs once to assemble the instruction list; none of
// the step bodies execute until the machine is advanced. Because the
// definition runs per call, locals declared inside it are private to the
// returned machine.
func New[T any](define func(b *Builder[T])) (*Machine[T], error) {
	var b Builder[T]
	define(&b)
	if b.err != nil {
		return nil, errors.Wrap(b.err, "invalid generator program")
	}
	return &Machine[T]{code: b.code}, nil
}

// Must is New for programs that are known to be well-formed, typically
// package-level generator constructors. It panics on a definition error.
func Must[T any](define func(b *Builder[T])) *Machine[T] {
	m, err := New(define)
	if err != nil {
		panic(err)
	}
	return m
}
