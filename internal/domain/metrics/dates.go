package metrics

import (
	"strconv"
	"strings"
	"time"
)

// dateFormats are tried in order. Day-first formats come first because the
// sheets-era rows were captured as dd/mm/yyyy; ISO covers the newer schema.
var dateFormats = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02",
	time.RFC3339,
	"02/01/2006 15:04",
}

// ParseDate parses a stored date string. Invalid calendar dates (e.g.
// "31/02/2024") and unrecognized formats report ok=false; callers drop such
// rows from date-bounded aggregates only.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// inWindow reports start <= t <= end on calendar-date granularity.
func inWindow(t, start, end time.Time) bool {
	day := t.Truncate(24 * time.Hour)
	return !day.Before(start.Truncate(24*time.Hour)) && !day.After(end.Truncate(24*time.Hour))
}

// monthYear identifies one calendar month.
type monthYear struct {
	month int
	year  int
}

// monthsInRange enumerates every (month, year) whose first-of-month falls in
// [start, end], stepping one month at a time from start's month.
func monthsInRange(start, end time.Time) []monthYear {
	var out []monthYear
	cur := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		out = append(out, monthYear{month: int(cur.Month()), year: cur.Year()})
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

// FormatMoney renders a raw amount as "1,234,567.89" for delta labels. The
// engine otherwise returns raw numerics; only human-facing label strings use
// this.
func FormatMoney(v float64) string {
	if v < 0 {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	dot := strings.Index(s, ".")
	intPart, decPart := s[:dot], s[dot:]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + decPart
}
