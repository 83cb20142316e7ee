package storage

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// FormatTimestamp renders t in the display format used for solve dates,
// e.g. "3rd March 2024, 5:07 PM".
func FormatTimestamp(t time.Time) string {
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	ampm := "AM"
	if t.Hour() >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d%s %s %d, %d:%02d %s",
		t.Day(), ordinalSuffix(t.Day()), t.Month(), t.Year(), hour, t.Minute(), ampm)
}

func ordinalSuffix(day int) string {
	if day > 3 && day < 21 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

var timestampRe = regexp.MustCompile(`(\d+)(?:st|nd|rd|th)? (\w+) (\d+), (\d+):(\d+) (AM|PM)`)

// fallbackLayouts are tried in order when a stored date does not match
// the display format. Solve dates are free text, so this is best effort.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006 3:04 PM",
	"2/1/2006",
}

// ParseTimestamp parses a stored solve date. The display format is tried
// first, then the generic fallback layouts.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if m := timestampRe.FindStringSubmatch(s); m != nil {
		day, _ := strconv.Atoi(m[1])
		year, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])

		if m[6] == "PM" && hour < 12 {
			hour += 12
		}
		if m[6] == "AM" && hour == 12 {
			hour = 0
		}

		if month, ok := monthByName(m[2]); ok {
			return time.Date(year, month, day, hour, minute, 0, 0, time.Local), nil
		}
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("cannot parse timestamp: %q", s)
}

func monthByName(name string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		if strings.EqualFold(name, m.String()) {
			return m, true
		}
	}
	return 0, false
}
