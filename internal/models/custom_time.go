package models

import (
	"fmt"
	"strings"
	"time"
)

// flexibleDateLayouts are tried in order. The presidents source writes
// day-first dates such as "20/01/1961"; overrides use ISO dates.
var flexibleDateLayouts = []string{
	"2006-01-02",
	"2/01/2006",
	"2/1/2006",
	time.RFC3339,
}

// ParseFlexibleDate parses s using the first layout that accepts it
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range flexibleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
