package ptr

import "time"

func To[T any](v T) *T {
	return &v
}

// Deref returns the pointed value or the zero value of T.
func Deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// NonZeroTime returns nil for the zero time.
func NonZeroTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
