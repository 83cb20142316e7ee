package cli

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmehta/leetrack/internal/storage"
)

func TestActivityCommand_WeekChart(t *testing.T) {
	store := memStore(t)
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local)

	solved := time.Date(2024, time.March, 3, 17, 7, 0, 0, time.Local)
	require.NoError(t, store.SetDateSolved("1", storage.FormatTimestamp(solved)))
	require.NoError(t, store.SetDateSolved("23", storage.FormatTimestamp(solved.Add(time.Hour))))

	cmd := &ActivityCommand{Timeframe: "week", globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store, now))
	})

	assert.Contains(t, output, "Solve activity (week): 2 solved")
	assert.Contains(t, output, "3 Mar 2024")
	assert.Contains(t, output, "█")
	assert.Contains(t, output, "Solves by hour of day:")
	assert.Contains(t, output, "5 PM")
	assert.Contains(t, output, "6 PM")
}

func TestActivityCommand_InvalidTimeframe(t *testing.T) {
	store := memStore(t)

	cmd := &ActivityCommand{Timeframe: "decade", globals: &GlobalFlags{}}
	err := cmd.executeWith(store, time.Now())
	require.Error(t, err)
}

func TestActivityCommand_JSON(t *testing.T) {
	store := memStore(t)
	now := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.Local)

	solved := time.Date(2024, time.March, 4, 9, 30, 0, 0, time.Local)
	require.NoError(t, store.SetDateSolved("1", storage.FormatTimestamp(solved)))

	cmd := &ActivityCommand{Timeframe: "week", globals: &GlobalFlags{JSON: true}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store, now))
	})

	var out struct {
		Timeframe string `json:"timeframe"`
		Buckets   []struct {
			Label string `json:"label"`
			Count int    `json:"count"`
		} `json:"buckets"`
		PerHour [24]int `json:"per_hour"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	assert.Equal(t, "week", out.Timeframe)
	assert.Len(t, out.Buckets, 8)
	assert.Equal(t, 1, out.PerHour[9])
}

func TestActivityCommand_EmptyStore(t *testing.T) {
	store := memStore(t)

	cmd := &ActivityCommand{Timeframe: "month-wise", globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store, time.Now()))
	})

	assert.Contains(t, output, "0 solved")
}
