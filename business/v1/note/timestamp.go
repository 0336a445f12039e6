package note

import (
	"time"

	"github.com/araddon/dateparse"
)

// EpochMillis converts a store-native GMT datetime such as "2023-01-01 00:00:00"
// into milliseconds since the Unix epoch. Dates that cannot be parsed, and dates
// before the epoch (the store writes 0000-00-00 00:00:00 for never modified
// drafts), yield 0.
func EpochMillis(modifiedGmt string) int64 {
	t, err := dateparse.ParseIn(modifiedGmt, time.UTC)
	if err != nil {
		return 0
	}
	if ms := t.Unix() * 1000; ms > 0 {
		return ms
	}
	return 0
}
