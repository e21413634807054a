// Copyright (c) 2026 The strata authors
// Use of this source code is governed by a MIT license found in the LICENSE file.

// Package maps converts between flat keys and nested maps.
package maps

// Insert inserts the value into dst under the nested keys.
// It returns false and leaves dst unchanged if a non-map value is on the way,
// or if a map is already under the last key.
func Insert(dst map[string]any, keys []string, value any) bool {
	next := dst
	for i, key := range keys[:len(keys)-1] {
		switch sub := next[key].(type) {
		case map[string]any:
			next = sub
		case nil:
			// Create the missing levels only once the whole path is known to be free.
			for _, key := range keys[i : len(keys)-1] {
				sub := make(map[string]any)
				next[key] = sub
				next = sub
			}
			next[keys[len(keys)-1]] = value

			return true
		default:
			return false
		}
	}

	last := keys[len(keys)-1]
	if _, ok := next[last].(map[string]any); ok {
		return false
	}
	next[last] = value

	return true
}
