package regen

import (
	"github.com/pkg/errors"
)

// Machine is one resumable instance of a generator program. It holds the
// program counter and completion state; the captured locals of the
// definition hold everything else. A machine is single-owner: it must not
// be advanced from multiple goroutines; use Share for that.
type Machine[T any] struct {
	code  []instruction[T]
	pc    int
	value T
	err   error
	done  bool
}

// Advance resumes the program from its last suspend point and runs it up
// to the next one, or to the end if none remains.
//
// It returns the suspended value and done=false when a suspend point was
// reached, and the zero value and done=true once the program has run to
// completion or failed. Advancing a terminal machine is a no-op that
// returns the terminal pair again, with no side effects.
func (m *Machine[T]) Advance() (T, bool) {
	var zero T
	if m.done {
		return zero, true
	}
	for m.pc < len(m.code) {
		inst := m.code[m.pc]
		switch inst.kind {
		case opDo:
			if err := m.runEffect(inst.effect); err != nil {
				m.terminate(err)
				return zero, true
			}
			m.pc++
		case opYield:
			value, err := m.runEmit(inst.emit)
			if err != nil {
				m.terminate(err)
				return zero, true
			}
			m.pc++
			m.value = value
			return value, false
		case opJump:
			m.pc = inst.target
		case opBranch:
			taken, err := m.runCond(inst.cond)
			if err != nil {
				m.terminate(err)
				return zero, true
			}
			if taken {
				m.pc++
			} else {
				m.pc = inst.target
			}
		}
	}
	m.done = true
	m.value = zero
	return zero, true
}

// Next implements Generator. It reports whether Advance produced a value.
func (m *Machine[T]) Next() bool {
	_, done := m.Advance()
	return !done
}

// Value implements Generator. It is the value of the most recent suspend
// point, valid after Next returned true.
func (m *Machine[T]) Value() T {
	return m.value
}

// Error implements Generator. After the machine turns terminal it keeps
// reporting the failure that stopped it, or nil on normal completion.
func (m *Machine[T]) Error() error {
	return m.err
}

// Done reports whether the machine is terminal, either by completion or by
// failure.
func (m *Machine[T]) Done() bool {
	return m.done
}

func (m *Machine[T]) terminate(err error) {
	m.err = errors.Wrapf(err, "generator step %d", m.pc)
	m.done = true
	m.value = *new(T)
}

// The run helpers fence user code: a panic in a step is converted into an
// error so that it surfaces from Advance like any step failure and the
// machine never resumes into corrupted state.

func (m *Machine[T]) runEffect(effect func() error) (err error) {
	defer recoverToError(&err)
	return effect()
}

func (m *Machine[T]) runEmit(emit func() T) (value T, err error) {
	defer recoverToError(&err)
	return emit(), nil
}

func (m *Machine[T]) runCond(cond func() bool) (taken bool, err error) {
	defer recoverToError(&err)
	return cond(), nil
}

func recoverToError(err *error) {
	if r := recover(); r != nil {
		*err = errors.Errorf("step panicked: %v", r)
	}
}
