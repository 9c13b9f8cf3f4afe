//go:build unit || e2e

package testutil

// Field sets key to value. A nil value removes the key.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}

// Date formats a day offset from base as YYYY-MM-DD.
func Date(base string, days int) string {
	return mustParseDay(base).AddDate(0, 0, days).Format(dayLayout)
}
