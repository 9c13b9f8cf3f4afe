//go:build unit || e2e

package testutil

import "time"

const dayLayout = "2006-01-02"

// FixedNow is the clock reading shared by unit tests.
var FixedNow = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func Day(s string) time.Time {
	return mustParseDay(s)
}

func mustParseDay(s string) time.Time {
	d, err := time.Parse(dayLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}
