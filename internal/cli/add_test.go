package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nmehta/leetrack/internal/storage"
)

func TestAddCommand_RecordsEntry(t *testing.T) {
	store := memStore(t)

	cmd := &AddCommand{
		ID:        "200",
		Companies: []string{"amazon", "google"},
		globals:   &GlobalFlags{},
	}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store))
	})

	assert.Contains(t, output, "Recorded question 200")
	assert.Contains(t, output, "amazon, google")

	attempted, err := store.Attempted("200")
	require.NoError(t, err)
	assert.True(t, attempted)

	companies, err := store.Companies("200")
	require.NoError(t, err)
	assert.Equal(t, "amazon, google", companies)
}

func TestAddCommand_DuplicateID(t *testing.T) {
	store := memStore(t)
	require.NoError(t, store.SetAttempted("200", true))

	cmd := &AddCommand{
		ID:        "200",
		Companies: []string{"amazon"},
		globals:   &GlobalFlags{},
	}

	err := cmd.executeWith(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDuplicateID)
}

func TestAddCommand_InvalidID(t *testing.T) {
	store := memStore(t)

	cmd := &AddCommand{
		ID:        "two-sum",
		Companies: []string{"amazon"},
		globals:   &GlobalFlags{},
	}

	err := cmd.executeWith(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrInvalidID)
}

func TestAddCommand_NoCompanies(t *testing.T) {
	store := memStore(t)

	cmd := &AddCommand{ID: "200", globals: &GlobalFlags{}}
	err := cmd.executeWith(store)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrNoCompanies)
}

func TestAddCommand_JSON(t *testing.T) {
	store := memStore(t)

	cmd := &AddCommand{
		ID:        "42",
		Companies: []string{"google"},
		globals:   &GlobalFlags{JSON: true},
	}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store))
	})

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &out))
	assert.Equal(t, "42", out["id"])
	assert.NotEmpty(t, out["date_solved"])
}
