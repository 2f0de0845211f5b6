package repository

import (
	"os"
	"strconv"
	"strings"
	"time"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseOptionalFloat turns a stored numeric string into an optional value.
// Absent or non-numeric input ("", "N/A") yields nil so the bad value stays
// out of every sum instead of polluting it as zero.
func parseOptionalFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func floatToString(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// parseIntOr0 tolerates sheet-era string numbers; malformed input becomes 0,
// which never matches a real month or year window.
func parseIntOr0(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return v
}

func timestampToString(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func timestampFromString(raw string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, raw)
	return t
}
