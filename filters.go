package regen

// Combinators that derive one generator from another. They are lazy: each
// pull on the result performs only as many pulls on the source as needed,
// so they compose with infinite sequences. A source failure surfaces from
// the derived generator unchanged.

// TakeN yields at most n values from source.
func TakeN[T any](n int, source Generator[T]) Generator[T] {
	taken := 0
	return &GeneratorFunction[T]{Advance: func() (bool, T, error) {
		if taken >= n || !source.Next() {
			return false, *new(T), source.Error()
		}
		taken++
		return true, source.Value(), nil
	}}
}

// DropN skips the first n values of source and yields the rest.
func DropN[T any](n int, source Generator[T]) Generator[T] {
	dropped := false
	return &GeneratorFunction[T]{Advance: func() (bool, T, error) {
		if !dropped {
			dropped = true
			for i := 0; i < n; i++ {
				if !source.Next() {
					return false, *new(T), source.Error()
				}
			}
		}
		if !source.Next() {
			return false, *new(T), source.Error()
		}
		return true, source.Value(), nil
	}}
}

// TakeWhile yields values while predicate holds and ends at the first
// value it rejects. The rejected value is consumed from the source.
func TakeWhile[T any](predicate func(T) bool, source Generator[T]) Generator[T] {
	return &GeneratorFunction[T]{Advance: func() (bool, T, error) {
		if !source.Next() {
			return false, *new(T), source.Error()
		}
		value := source.Value()
		if !predicate(value) {
			return false, *new(T), source.Error()
		}
		return true, value, nil
	}}
}

// DropWhile skips values while predicate holds, then yields the first
// rejected value and everything after it.
func DropWhile[T any](predicate func(T) bool, source Generator[T]) Generator[T] {
	dropping := true
	return &GeneratorFunction[T]{Advance: func() (bool, T, error) {
		for source.Next() {
			value := source.Value()
			if dropping && predicate(value) {
				continue
			}
			dropping = false
			return true, value, nil
		}
		return false, *new(T), source.Error()
	}}
}

// FilterIn yields only the values predicate accepts.
func FilterIn[T any](predicate func(T) bool, source Generator[T]) Generator[T] {
	return &GeneratorFunction[T]{Advance: func() (bool, T, error) {
		for source.Next() {
			if value := source.Value(); predicate(value) {
				return true, value, nil
			}
		}
		return false, *new(T), source.Error()
	}}
}

// FilterOut yields only the values predicate rejects.
func FilterOut[T any](predicate func(T) bool, source Generator[T]) Generator[T] {
	return FilterIn(func(value T) bool { return !predicate(value) }, source)
}
