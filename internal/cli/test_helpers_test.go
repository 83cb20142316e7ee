package cli

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nmehta/leetrack/internal/storage"
)

// captureOutput captures stdout during fn execution and returns it as a string.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

// memStore returns an annotation store backed by memory.
func memStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.NewStore(storage.NewMemoryBackend())
}

// newDataServer serves the given files by name, mimicking the static
// dataset host. Unknown names get a 404.
func newDataServer(t *testing.T, files map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := files[r.URL.Path[1:]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

const testCatalogJSON = `{
	"google": ["6months", "1year", "alltime"],
	"amazon": ["alltime"]
}`

const testProblemJSON = `{
	"1": {"Problem Name": "Two Sum", "Difficulty": "Easy"},
	"23": {"Problem Name": "Merge k Sorted Lists", "Difficulty": "Hard"}
}`

const testGoogleCSV = `ID,Title,Acceptance,Difficulty,Frequency,Leetcode Question Link
1,Two Sum,46.7%,Easy,12.5,https://leetcode.com/problems/two-sum
23,Merge k Sorted Lists,42.1%,Hard,3.2,https://leetcode.com/problems/merge-k-sorted-lists
42,Trapping Rain Water,50.9%,Hard,7.8,https://leetcode.com/problems/trapping-rain-water
`

const testAmazonCSV = `ID,Title,Acceptance,Difficulty,Frequency,Leetcode Question Link
1,Two Sum,46.7%,Easy,3.2,https://leetcode.com/problems/two-sum
200,Number of Islands,51.2%,Medium,9.9,https://leetcode.com/problems/number-of-islands
`

// testFiles covers the standard two-company fixture used across tests.
func testFiles() map[string]string {
	return map[string]string{
		"company_data.json":  testCatalogJSON,
		"problem_data.json":  testProblemJSON,
		"google_6months.csv": testGoogleCSV,
		"google_1year.csv":   testGoogleCSV,
		"google_alltime.csv": testGoogleCSV,
		"amazon_alltime.csv": testAmazonCSV,
	}
}
