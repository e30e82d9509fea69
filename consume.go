package regen

// ToSlice drains gen into a slice. It returns the values produced before
// the sequence ended, and the generator's error if it failed. Draining an
// infinite generator does not terminate; use Take for those.
func ToSlice[T any](gen Generator[T]) ([]T, error) {
	var slice []T
	for gen.Next() {
		slice = append(slice, gen.Value())
	}
	return slice, gen.Error()
}

// ToMap drains a key-value generator into a map. Later keys overwrite
// earlier ones.
func ToMap[K comparable, V any](gen Generator2[K, V]) (map[K]V, error) {
	result := make(map[K]V)
	for gen.Next() {
		key, value := gen.Value()
		result[key] = value
	}
	return result, gen.Error()
}

// Take pulls at most n values from gen. It is the safe way to consume a
// prefix of an infinite sequence: exactly min(n, remaining) advances are
// performed.
func Take[T any](gen Generator[T], n int) ([]T, error) {
	var slice []T
	for len(slice) < n && gen.Next() {
		slice = append(slice, gen.Value())
	}
	return slice, gen.Error()
}

// Keys drains only the keys of a key-value generator.
func Keys[K comparable, V any](gen Generator2[K, V]) ([]K, error) {
	var keys []K
	for gen.Next() {
		key, _ := gen.Value()
		keys = append(keys, key)
	}
	return keys, gen.Error()
}
