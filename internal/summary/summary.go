// Package summary turns persisted solve dates into chart-ready bucketed
// counts and human-readable review rows.
package summary

import (
	"fmt"
	"log"
	"time"

	"github.com/nmehta/leetrack/internal/storage"
)

// Supported timeframes for the per-day/per-month chart.
const (
	TimeframeWeek      = "week"
	TimeframeMonth     = "month"
	TimeframeMonthWise = "month-wise"
)

// Bucket pairs one chart label with its solve count.
type Bucket struct {
	Label string
	Time  time.Time
	Count int
}

// Activity is the chart-ready view of solve history. Buckets is dense:
// every day (or month) in the requested range appears, zero-filled. The
// hour histogram always covers all entries regardless of timeframe.
type Activity struct {
	Timeframe string
	Buckets   []Bucket
	PerHour   [24]int
}

// Summarize buckets every stored solve date for the given timeframe,
// relative to now. Dates that neither the display format nor the fallback
// parser can read are skipped with a log line.
func Summarize(store *storage.Store, timeframe string, now time.Time) (*Activity, error) {
	switch timeframe {
	case TimeframeWeek, TimeframeMonth, TimeframeMonthWise:
	default:
		return nil, fmt.Errorf("unknown timeframe %q", timeframe)
	}

	dates, err := store.SolveDates()
	if err != nil {
		return nil, err
	}

	act := &Activity{Timeframe: timeframe}
	perDay := make(map[string]int)
	perMonth := make(map[string]int)

	for id, raw := range dates {
		t, err := storage.ParseTimestamp(raw)
		if err != nil {
			log.Printf("skipping solve date for question %s: %v", id, err)
			continue
		}
		perDay[dayKey(t)]++
		perMonth[monthKey(t)]++
		act.PerHour[t.Hour()]++
	}

	if timeframe == TimeframeMonthWise {
		for m := time.January; m <= time.December; m++ {
			bt := time.Date(now.Year(), m, 1, 0, 0, 0, 0, now.Location())
			act.Buckets = append(act.Buckets, Bucket{
				Label: bt.Format("Jan 2006"),
				Time:  bt,
				Count: perMonth[monthKey(bt)],
			})
		}
		return act, nil
	}

	start := now.AddDate(0, 0, -7)
	if timeframe == TimeframeMonth {
		start = now.AddDate(0, -1, 0)
	}
	for d := start; !d.After(now); d = d.AddDate(0, 0, 1) {
		act.Buckets = append(act.Buckets, Bucket{
			Label: d.Format("2 Jan 2006"),
			Time:  d,
			Count: perDay[dayKey(d)],
		})
	}
	return act, nil
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// HourLabel renders a 0-23 bucket index as a clock label ("5 PM").
func HourLabel(hour int) string {
	h := hour % 12
	if h == 0 {
		h = 12
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	return fmt.Sprintf("%d %s", h, ampm)
}
