package naming

import (
	"fmt"
	"strings"
	"time"
)

const (
	compactLayout = "20060102"
	displayLayout = "2006.01.02"
)

var separatorStripper = strings.NewReplacer(".", "", "-", "", "/", "")

// CompactDate strips the separators users type between date parts.
// "2024.01.15" becomes "20240115".
func CompactDate(s string) string {
	return separatorStripper.Replace(strings.TrimSpace(s))
}

// ParseDate accepts a calendar date in year-month-day order, with or without
// separators, and rejects anything that is not exactly eight digits once the
// separators are gone.
func ParseDate(s string) (time.Time, error) {
	compact := CompactDate(s)
	if len(compact) != len(compactLayout) {
		return time.Time{}, fmt.Errorf("date %q: want 8 digits, got %d characters", s, len(compact))
	}
	for _, r := range compact {
		if r < '0' || r > '9' {
			return time.Time{}, fmt.Errorf("date %q: unexpected character %q", s, r)
		}
	}
	t, err := time.Parse(compactLayout, compact)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w", s, err)
	}
	return t, nil
}

// DisplayDate renders t the way the form shows dates, YYYY.MM.DD.
func DisplayDate(t time.Time) string {
	return t.Format(displayLayout)
}
