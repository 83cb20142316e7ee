package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmehta/leetrack/internal/catalog"
)

func TestFindCommand_AggregatesAcrossCompanies(t *testing.T) {
	srv := newDataServer(t, testFiles())

	cmd := &FindCommand{globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(catalog.NewClient(srv.URL), "1"))
	})

	assert.Contains(t, output, "1. Two Sum")
	assert.Contains(t, output, "https://leetcode.com/problems/two-sum")
	assert.Contains(t, output, "Number of companies: 2")
	assert.Contains(t, output, "Google")
	assert.Contains(t, output, "Amazon")
	// google appears in all three windows at 12.5 each
	assert.Contains(t, output, "total 37.50%")
	assert.Contains(t, output, "total 3.20%")
}

func TestFindCommand_NotFound(t *testing.T) {
	srv := newDataServer(t, testFiles())

	cmd := &FindCommand{globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(catalog.NewClient(srv.URL), "9999"))
	})

	assert.Contains(t, output, "Question 9999 was not asked in any company.")
}

func TestFindCommand_JSON(t *testing.T) {
	srv := newDataServer(t, testFiles())

	cmd := &FindCommand{globals: &GlobalFlags{JSON: true}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(catalog.NewClient(srv.URL), "200"))
	})

	var out struct {
		ID        string `json:"id"`
		Found     bool   `json:"found"`
		Title     string `json:"title"`
		Companies []struct {
			Company   string             `json:"company"`
			Durations map[string]float64 `json:"durations"`
			Total     float64            `json:"total"`
		} `json:"companies"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	assert.True(t, out.Found)
	assert.Equal(t, "Number of Islands", out.Title)
	require.Len(t, out.Companies, 1)
	assert.Equal(t, "amazon", out.Companies[0].Company)
	assert.InDelta(t, 9.9, out.Companies[0].Total, 0.001)
}

func TestFindCommand_RequiresID(t *testing.T) {
	cmd := &FindCommand{globals: &GlobalFlags{}}
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}
