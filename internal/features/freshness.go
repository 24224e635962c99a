package features

import (
	"fmt"
	"time"
)

// DateLayout is the accepted publication date format.
const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// Freshness returns the number of whole days between 1970-01-01 and the
// publication date, negative for earlier dates. Malformed input is an error;
// there is no fallback date.
func Freshness(date string) (int, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("parse publication date: %w", err)
	}
	// t is midnight UTC, so the division is exact.
	return int(t.Unix() / secondsPerDay), nil
}
