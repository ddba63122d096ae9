// Package mapst carries small generic map helpers used by the store.
package mapst

// Each

func Each[K comparable, V any, M ~map[K]V](m M, fn func(K, V)) {
	for k, v := range m {
		fn(k, v)
	}
}

// Keys

func Keys[K comparable, V any, M ~map[K]V](m M) []K {
	if len(m) == 0 {
		return nil
	}
	result := make([]K, 0, len(m))
	for k := range m {
		result = append(result, k)
	}
	return result
}

// Clone

// Clone returns a shallow copy of m. A nil map clones to nil.
func Clone[K comparable, V any, M ~map[K]V](m M) M {
	if m == nil {
		return nil
	}
	result := make(M, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}
