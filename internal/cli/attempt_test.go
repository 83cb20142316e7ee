package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptCommand_Mark(t *testing.T) {
	store := memStore(t)

	cmd := &AttemptCommand{ID: "1", globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store))
	})

	assert.Contains(t, output, "Question 1 marked attempted")

	attempted, err := store.Attempted("1")
	require.NoError(t, err)
	assert.True(t, attempted)

	date, err := store.DateSolved("1")
	require.NoError(t, err)
	assert.NotEmpty(t, date)
}

func TestAttemptCommand_Undone(t *testing.T) {
	store := memStore(t)
	require.NoError(t, store.SetAttempted("1", true))

	cmd := &AttemptCommand{ID: "1", Undone: true, globals: &GlobalFlags{}}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store))
	})

	assert.Contains(t, output, "unmarked")

	attempted, err := store.Attempted("1")
	require.NoError(t, err)
	assert.False(t, attempted)

	date, err := store.DateSolved("1")
	require.NoError(t, err)
	assert.Empty(t, date)
}

func TestAttemptCommand_DateOverwrite(t *testing.T) {
	store := memStore(t)
	require.NoError(t, store.SetAttempted("1", true))

	cmd := &AttemptCommand{ID: "1", Date: "3rd March 2024, 5:07 PM", globals: &GlobalFlags{}}
	captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store))
	})

	date, err := store.DateSolved("1")
	require.NoError(t, err)
	assert.Equal(t, "3rd March 2024, 5:07 PM", date)
}

func TestAttemptCommand_DateAcceptsAnyText(t *testing.T) {
	store := memStore(t)

	cmd := &AttemptCommand{ID: "1", Date: "last tuesday-ish", globals: &GlobalFlags{}}
	captureOutput(t, func() {
		require.NoError(t, cmd.executeWith(store))
	})

	date, err := store.DateSolved("1")
	require.NoError(t, err)
	assert.Equal(t, "last tuesday-ish", date)
}

func TestAttemptCommand_RequiresID(t *testing.T) {
	cmd := &AttemptCommand{globals: &GlobalFlags{}}
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--id is required")
}

func TestAttemptCommand_UndoneAndDateConflict(t *testing.T) {
	cmd := &AttemptCommand{ID: "1", Undone: true, Date: "whenever", globals: &GlobalFlags{}}
	err := cmd.Execute(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
