// Package maputil provides small helpers for working with string-keyed maps.
package maputil

import "sort"

// SortedKeys returns the keys of m in ascending order. It always returns a
// non-nil slice so callers can range over the result without nil checks.
func SortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
