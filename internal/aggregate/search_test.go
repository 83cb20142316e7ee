package aggregate

import (
	"context"
	"fmt"
	"testing"

	"github.com/nmehta/leetrack/internal/catalog"
	"github.com/nmehta/leetrack/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetHeader = "ID,Title,Acceptance,Difficulty,Frequency,Leetcode Question Link\n"

// fakeFetcher serves datasets from memory, keyed "company/duration".
type fakeFetcher struct {
	files map[string]string
}

func (f *fakeFetcher) Dataset(_ context.Context, company, duration string) (*dataset.Table, error) {
	raw, ok := f.files[company+"/"+duration]
	if !ok {
		return nil, fmt.Errorf("no dataset for %s/%s", company, duration)
	}
	return dataset.Parse(raw)
}

func searchCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Companies: []string{"x", "y", "z"},
		Durations: map[string][]string{
			"x": {"6months", "1year"},
			"y": {"6months"},
			"z": {"alltime"},
		},
	}
}

func TestSearch_SumsAcrossDurations(t *testing.T) {
	f := &fakeFetcher{files: map[string]string{
		"x/6months": datasetHeader + "42,Trapping Rain Water,49.1%,Hard,12.5,link42\n",
		"x/1year":   datasetHeader + "42,Trapping Rain Water,49.1%,Hard,3.2,link42\n",
		"y/6months": datasetHeader + "1,Two Sum,46.7%,Easy,93.2,link1\n",
		"z/alltime": datasetHeader + "42,Trapping Rain Water,49.1%,Hard,7.0,link42\n",
	}}

	res, err := Search(context.Background(), f, searchCatalog(), "42")
	require.NoError(t, err)

	assert.True(t, res.Found())
	assert.Equal(t, "Trapping Rain Water", res.Title)
	assert.Equal(t, "link42", res.Link)

	// Catalog order, company y absent (no match).
	require.Len(t, res.Companies, 2)
	assert.Equal(t, "x", res.Companies[0].Company)
	assert.Equal(t, "z", res.Companies[1].Company)

	assert.InDelta(t, 15.7, res.Companies[0].Total, 0.0001)
	assert.InDelta(t, 12.5, res.Companies[0].Durations["6months"], 0.0001)
	assert.InDelta(t, 3.2, res.Companies[0].Durations["1year"], 0.0001)
}

func TestSearch_RepeatedIDWithinOneFile(t *testing.T) {
	f := &fakeFetcher{files: map[string]string{
		"x/6months": datasetHeader +
			"42,Trapping Rain Water,49.1%,Hard,10.0,link42\n" +
			"42,Trapping Rain Water,49.1%,Hard,2.5,link42\n",
		"x/1year":   datasetHeader,
		"y/6months": datasetHeader,
		"z/alltime": datasetHeader,
	}}

	res, err := Search(context.Background(), f, searchCatalog(), "42")
	require.NoError(t, err)

	require.Len(t, res.Companies, 1)
	assert.InDelta(t, 12.5, res.Companies[0].Total, 0.0001)
}

func TestSearch_ZeroTotalExcludesCompany(t *testing.T) {
	f := &fakeFetcher{files: map[string]string{
		"x/6months": datasetHeader + "42,Trapping Rain Water,49.1%,Hard,0.0,link42\n",
		"x/1year":   datasetHeader,
		"y/6months": datasetHeader + "42,Trapping Rain Water,49.1%,Hard,5.0,link42\n",
		"z/alltime": datasetHeader,
	}}

	res, err := Search(context.Background(), f, searchCatalog(), "42")
	require.NoError(t, err)

	require.Len(t, res.Companies, 1)
	assert.Equal(t, "y", res.Companies[0].Company)
}

func TestSearch_FailedFetchesAreSkipped(t *testing.T) {
	// x/1year is missing entirely; the rest still merge.
	f := &fakeFetcher{files: map[string]string{
		"x/6months": datasetHeader + "42,Trapping Rain Water,49.1%,Hard,12.5,link42\n",
		"y/6months": datasetHeader,
		"z/alltime": datasetHeader,
	}}

	res, err := Search(context.Background(), f, searchCatalog(), "42")
	require.NoError(t, err)

	require.Len(t, res.Companies, 1)
	assert.InDelta(t, 12.5, res.Companies[0].Total, 0.0001)
}

func TestSearch_NoMatchAnywhere(t *testing.T) {
	f := &fakeFetcher{files: map[string]string{
		"x/6months": datasetHeader,
		"x/1year":   datasetHeader,
		"y/6months": datasetHeader,
		"z/alltime": datasetHeader,
	}}

	res, err := Search(context.Background(), f, searchCatalog(), "404")
	require.NoError(t, err)

	assert.False(t, res.Found())
	assert.Empty(t, res.Companies)
}
