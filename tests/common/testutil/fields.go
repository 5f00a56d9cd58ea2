//go:build unit || e2e

package testutil

// Field sets key to value. A nil value removes the key, which is how a
// missing JSON field is expressed.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
