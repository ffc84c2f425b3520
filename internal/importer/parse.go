package importer

import (
	"strconv"
	"strings"
	"time"
)

// Layout order matters: the exports are predominantly day-first, so day-first
// layouts are tried before the month-first and ISO fallbacks.
var dateTimeLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"02/01/2006",
	"01/02/2006 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseFlexibleDateTime converts a raw cell into a timestamp, trying the known
// layouts in order. As a last resort it takes the first whitespace token and
// splits it on slashes as day/month/year. Returns nil when nothing matches;
// callers treat a missing timestamp as valid data, not an error.
func ParseFlexibleDateTime(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}

	// last resort: day/month/year without time
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil
	}
	parts := strings.Split(fields[0], "/")
	if len(parts) != 3 {
		return nil
	}
	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return nil
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return nil
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return nil
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}

// ParseLenientInteger strips everything that is not a digit or a minus sign
// and parses what is left. Currency symbols, thousands separators and stray
// text are silently discarded; anything unparseable becomes 0. A malformed
// cell must never abort an import run.
func ParseLenientInteger(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	n, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
