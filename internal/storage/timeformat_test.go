package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, time.March, 3, 17, 7, 0, 0, time.Local), "3rd March 2024, 5:07 PM"},
		{time.Date(2024, time.March, 3, 11, 15, 0, 0, time.Local), "3rd March 2024, 11:15 AM"},
		{time.Date(2024, time.January, 1, 0, 5, 0, 0, time.Local), "1st January 2024, 12:05 AM"},
		{time.Date(2024, time.July, 22, 12, 0, 0, 0, time.Local), "22nd July 2024, 12:00 PM"},
		{time.Date(2024, time.May, 11, 9, 30, 0, 0, time.Local), "11th May 2024, 9:30 AM"},
		{time.Date(2024, time.May, 13, 9, 30, 0, 0, time.Local), "13th May 2024, 9:30 AM"},
		{time.Date(2024, time.May, 21, 9, 30, 0, 0, time.Local), "21st May 2024, 9:30 AM"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTimestamp(tc.in))
	}
}

func TestParseTimestamp_DisplayFormat(t *testing.T) {
	got, err := ParseTimestamp("3rd March 2024, 5:07 PM")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 3, 17, 7, 0, 0, time.Local), got)
}

func TestParseTimestamp_AMPMEdges(t *testing.T) {
	got, err := ParseTimestamp("1st January 2024, 12:05 AM")
	require.NoError(t, err)
	assert.Equal(t, 0, got.Hour())

	got, err = ParseTimestamp("1st January 2024, 12:05 PM")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())
}

func TestParseTimestamp_RoundTrip(t *testing.T) {
	in := time.Date(2023, time.November, 21, 23, 59, 0, 0, time.Local)
	got, err := ParseTimestamp(FormatTimestamp(in))
	require.NoError(t, err)
	assert.True(t, got.Equal(in))
}

func TestParseTimestamp_MissingOrdinalSuffix(t *testing.T) {
	got, err := ParseTimestamp("3 March 2024, 5:07 PM")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Day())
	assert.Equal(t, 17, got.Hour())
}

func TestParseTimestamp_Fallbacks(t *testing.T) {
	for _, in := range []string{
		"2024-03-03 17:07:00",
		"2024-03-03",
		"March 3, 2024",
	} {
		got, err := ParseTimestamp(in)
		require.NoError(t, err, in)
		assert.Equal(t, 2024, got.Year(), in)
		assert.Equal(t, time.March, got.Month(), in)
	}
}

func TestParseTimestamp_Garbage(t *testing.T) {
	_, err := ParseTimestamp("whenever i felt like it")
	assert.Error(t, err)
}
