package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/nmehta/leetrack/internal/storage"
	"github.com/nmehta/leetrack/internal/summary"
)

// Execute implements the go-flags Commander interface for ActivityCommand.
func (c *ActivityCommand) Execute(args []string) error {
	cfg, err := loadConfig(c.globals)
	if err != nil {
		return err
	}

	store, db, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	defer store.Close()

	return c.executeWith(store, time.Now())
}

func (c *ActivityCommand) executeWith(store *storage.Store, now time.Time) error {
	activity, err := summary.Summarize(store, c.Timeframe, now)
	if err != nil {
		return err
	}

	if c.globals != nil && c.globals.JSON {
		return c.printJSON(activity)
	}
	return c.printHuman(activity)
}

func (c *ActivityCommand) printHuman(activity *summary.Activity) error {
	maxCount := 0
	total := 0
	for _, b := range activity.Buckets {
		total += b.Count
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	fmt.Printf("Solve activity (%s): %d solved\n\n", activity.Timeframe, total)
	for _, b := range activity.Buckets {
		fmt.Printf("  %-12s %s %d\n", b.Label, bar(b.Count, maxCount, 30), b.Count)
	}

	maxHour := 0
	for _, n := range activity.PerHour {
		if n > maxHour {
			maxHour = n
		}
	}

	fmt.Println("\nSolves by hour of day:")
	for hour, n := range activity.PerHour {
		if n == 0 {
			continue
		}
		fmt.Printf("  %-6s %s %d\n", summary.HourLabel(hour), bar(n, maxHour, 30), n)
	}
	return nil
}

type activityBucketJSON struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

func (c *ActivityCommand) printJSON(activity *summary.Activity) error {
	out := struct {
		Timeframe string               `json:"timeframe"`
		Buckets   []activityBucketJSON `json:"buckets"`
		PerHour   [24]int              `json:"per_hour"`
	}{
		Timeframe: activity.Timeframe,
		Buckets:   make([]activityBucketJSON, len(activity.Buckets)),
		PerHour:   activity.PerHour,
	}
	for i, b := range activity.Buckets {
		out.Buckets[i] = activityBucketJSON{Label: b.Label, Count: b.Count}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
