package record

import (
	"fmt"
	"strings"
	"time"
)

// NoDatePlaceholder is shown whenever a date is absent or unparseable.
const NoDatePlaceholder = "Sin registro"

// dateLayouts are tried in order when parsing upstream date strings. The
// backend mixes ISO timestamps with and without zone information.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// spanishMonths holds the abbreviated month names used for display.
var spanishMonths = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// NormalizeDate parses a heterogeneous date representation into an
// instant. The zero time.Time is the sentinel for absent/unparseable.
//
//   - numbers are epoch milliseconds
//   - date-only strings get a midnight time appended before parsing
//   - a space separating date and time is treated as "T"
func NormalizeDate(v interface{}) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return *t
	case float64:
		return time.UnixMilli(int64(t))
	case int:
		return time.UnixMilli(int64(t))
	case int64:
		return time.UnixMilli(t)
	case string:
		return parseDateString(t)
	}
	return time.Time{}
}

func parseDateString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}

	// Date-only values normalize to midnight so "2025-10-10" and
	// "2025-10-10T00:00:00" land on the same instant.
	if !strings.Contains(s, "T") && !strings.Contains(s, " ") {
		s += "T00:00:00"
	}
	s = strings.Replace(s, " ", "T", 1)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// FormatDateTime renders a loose date value for display: day, abbreviated
// Spanish month, year and hour:minute, or the placeholder when absent.
func FormatDateTime(v interface{}) string {
	t := NormalizeDate(v)
	if t.IsZero() {
		return NoDatePlaceholder
	}
	return fmt.Sprintf("%02d %s %d, %02d:%02d",
		t.Day(), spanishMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}
