//go:build unit || e2e

package testutil

import "strings"

// Field sets the value at a dotted path such as "contact.email", creating
// intermediate objects as needed. A nil value removes the key.
func Field(path string, value any) func(m map[string]any) {
	keys := strings.Split(path, ".")
	return func(m map[string]any) {
		parent := m
		for _, k := range keys[:len(keys)-1] {
			child, ok := parent[k].(map[string]any)
			if !ok {
				if value == nil {
					return
				}
				child = map[string]any{}
				parent[k] = child
			}
			parent = child
		}
		last := keys[len(keys)-1]
		if value == nil {
			delete(parent, last)
			return
		}
		parent[last] = value
	}
}
