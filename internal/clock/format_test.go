package clock

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func moment(hour, min, sec int) time.Time {
	return time.Date(2024, time.January, 15, hour, min, sec, 0, time.UTC)
}

func TestFormatTime_24Hour(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		f := FormatTime(moment(hour, 30, 45), Mode24)
		assert.Equal(t, fmt.Sprintf("%02d", hour), f.Hours, "hour %d", hour)
		assert.Empty(t, f.Period, "hour %d", hour)
	}
}

func TestFormatTime_12Hour(t *testing.T) {
	cases := []struct {
		hour   int
		hours  string
		period string
	}{
		{0, "12", "AM"},
		{1, "01", "AM"},
		{11, "11", "AM"},
		{12, "12", "PM"},
		{13, "01", "PM"},
		{23, "11", "PM"},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("hour_%d", tc.hour), func(t *testing.T) {
			f := FormatTime(moment(tc.hour, 0, 0), Mode12)
			assert.Equal(t, tc.hours, f.Hours)
			assert.Equal(t, tc.period, f.Period)
		})
	}

	// Display hour stays in [1,12] across the whole day.
	for hour := 0; hour < 24; hour++ {
		f := FormatTime(moment(hour, 0, 0), Mode12)
		require.Len(t, f.Hours, 2, "hour %d", hour)
		require.NotEmpty(t, f.Period, "hour %d", hour)
	}
}

func TestFormatTime_MinuteSecondPadding(t *testing.T) {
	for _, mode := range []Mode{Mode12, Mode24} {
		for v := 0; v < 60; v++ {
			f := FormatTime(moment(9, v, v), mode)
			require.Len(t, f.Minutes, 2, "mode %s minute %d", mode, v)
			require.Len(t, f.Seconds, 2, "mode %s second %d", mode, v)
			assert.Equal(t, fmt.Sprintf("%02d", v), f.Minutes)
			assert.Equal(t, fmt.Sprintf("%02d", v), f.Seconds)
		}
	}
}

func TestMode_ToggleRoundTrip(t *testing.T) {
	at := moment(17, 4, 9)
	for _, mode := range []Mode{Mode12, Mode24} {
		assert.Equal(t, FormatTime(at, mode), FormatTime(at, mode.Toggle().Toggle()))
	}
}

func TestMode_ToggleLabelNamesOppositeMode(t *testing.T) {
	assert.Equal(t, "24-hour", Mode12.ToggleLabel())
	assert.Equal(t, "12-hour", Mode24.ToggleLabel())
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("12h")
	require.NoError(t, err)
	assert.Equal(t, Mode12, m)

	m, err = ParseMode("24h")
	require.NoError(t, err)
	assert.Equal(t, Mode24, m)

	_, err = ParseMode("military")
	assert.Error(t, err)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Monday, January 15, 2024", FormatDate(moment(10, 0, 0)))
	assert.Equal(t, "Thursday, February 29, 2024",
		FormatDate(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)))
}
