package timeparse_test

import (
	"errors"
	"testing"
	"time"

	"pitchside/internal/timeparse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-03-04 is a Wednesday; 10:00 UTC is 05:00 in New York (EST). US DST
// starts the following Sunday, March 8, which the DST tests lean on.
var now = time.Date(2026, time.March, 4, 10, 0, 0, 0, time.UTC)

func nyc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	return loc
}

func TestResolve_RelativePhrases(t *testing.T) {
	ny := nyc(t)

	tests := []struct {
		name      string
		expr      string
		allowPast bool
		want      time.Time
	}{
		{"tomorrow with evening time", "tomorrow 7pm", false, time.Date(2026, 3, 5, 19, 0, 0, 0, ny)},
		{"tomorrow with dotted meridiem", "tomorrow at 7:30 p.m.", false, time.Date(2026, 3, 5, 19, 30, 0, 0, ny)},
		{"in N days with time", "in 2 days 8pm", false, time.Date(2026, 3, 6, 20, 0, 0, 0, ny)},
		{"today explicit", "today 9pm", false, time.Date(2026, 3, 4, 21, 0, 0, 0, ny)},
		{"next week", "next week 6pm", false, time.Date(2026, 3, 11, 18, 0, 0, 0, ny)},
		{"next month calendar arithmetic", "next month 6pm", false, time.Date(2026, 4, 4, 18, 0, 0, 0, ny)},
		{"yesterday in past mode", "yesterday 7pm", true, time.Date(2026, 3, 3, 19, 0, 0, 0, ny)},
		{"last month calendar arithmetic", "last month 7pm", true, time.Date(2026, 2, 4, 19, 0, 0, 0, ny)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := timeparse.Resolve(tc.expr, "EST", now, tc.allowPast)
			require.NoError(t, err)
			assert.Equal(t, tc.want.UTC(), got)
		})
	}
}

func TestResolve_OffsetsWithoutTime(t *testing.T) {
	t.Run("in 2 hours keeps time of now", func(t *testing.T) {
		got, err := timeparse.Resolve("in 2 hours", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, now.Add(2*time.Hour), got)
	})

	t.Run("in 2 days keeps time of now", func(t *testing.T) {
		got, err := timeparse.Resolve("in 2 days", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, 2), got)
	})

	t.Run("3 days ago keeps time of now", func(t *testing.T) {
		got, err := timeparse.Resolve("3 days ago", "EST", now, true)
		require.NoError(t, err)
		assert.Equal(t, now.AddDate(0, 0, -3), got)
	})

	t.Run("2 weeks ago with time", func(t *testing.T) {
		ny := nyc(t)
		got, err := timeparse.Resolve("2 weeks ago 3pm", "EST", now, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 18, 15, 0, 0, 0, ny).UTC(), got)
	})
}

func TestResolve_Weekdays(t *testing.T) {
	ny := nyc(t)

	t.Run("same weekday means next week, not today", func(t *testing.T) {
		got, err := timeparse.Resolve("wednesday 6pm", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 11, 18, 0, 0, 0, ny).UTC(), got)
	})

	t.Run("upcoming weekday", func(t *testing.T) {
		got, err := timeparse.Resolve("friday 19:30", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 6, 19, 30, 0, 0, ny).UTC(), got)
	})

	t.Run("last weekday is strictly before today", func(t *testing.T) {
		got, err := timeparse.Resolve("last friday 3:30pm", "EST", now, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 27, 15, 30, 0, 0, ny).UTC(), got)
	})

	t.Run("last same weekday steps back a full week", func(t *testing.T) {
		got, err := timeparse.Resolve("last wednesday 6pm", "EST", now, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 25, 18, 0, 0, 0, ny).UTC(), got)
	})
}

func TestResolve_StagePrecedence(t *testing.T) {
	ny := nyc(t)

	// Offset phrases outrank named days outrank weekday names: with both
	// "tomorrow" and a weekday present, tomorrow decides the date and the
	// weekday is trailing noise.
	got, err := timeparse.Resolve("tomorrow friday 7pm", "EST", now, false)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 5, 19, 0, 0, 0, ny).UTC(), got)
}

func TestResolve_HourHeuristic(t *testing.T) {
	ny := nyc(t)

	tests := []struct {
		expr string
		want time.Time
	}{
		{"5", time.Date(2026, 3, 4, 17, 0, 0, 0, ny)},      // below 8 assumed PM
		{"10", time.Date(2026, 3, 4, 10, 0, 0, 0, ny)},     // 8-12 kept as given
		{"12:30", time.Date(2026, 3, 4, 12, 30, 0, 0, ny)}, // noon
		{"19:30", time.Date(2026, 3, 4, 19, 30, 0, 0, ny)}, // already 24-hour
		{"5.30", time.Date(2026, 3, 4, 17, 30, 0, 0, ny)},  // decimal shorthand
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := timeparse.Resolve(tc.expr, "EST", now, false)
			require.NoError(t, err)
			assert.Equal(t, tc.want.UTC(), got)
		})
	}

	t.Run("12am maps to hour zero", func(t *testing.T) {
		got, err := timeparse.Resolve("tomorrow 12am", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, ny).UTC(), got)
	})

	t.Run("12pm stays noon", func(t *testing.T) {
		got, err := timeparse.Resolve("tomorrow 12pm", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 5, 12, 0, 0, 0, ny).UTC(), got)
	})
}

func TestResolve_AbsoluteFormats(t *testing.T) {
	ny := nyc(t)

	t.Run("explicit 24-hour timestamp", func(t *testing.T) {
		got, err := timeparse.Resolve("2026-07-15 19:30", "EST", now, false)
		require.NoError(t, err)
		// July is EDT; the location handles the offset change.
		assert.Equal(t, time.Date(2026, 7, 15, 19, 30, 0, 0, ny).UTC(), got)
	})

	t.Run("month day with evening time", func(t *testing.T) {
		got, err := timeparse.Resolve("dec 25 7pm", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 12, 25, 19, 0, 0, 0, ny).UTC(), got)
	})

	t.Run("date only keeps time of now", func(t *testing.T) {
		localNow := now.In(ny)
		got, err := timeparse.Resolve("2026-08-01", "EST", now, false)
		require.NoError(t, err)
		want := time.Date(2026, 8, 1, localNow.Hour(), localNow.Minute(), localNow.Second(), 0, ny)
		assert.Equal(t, want.UTC(), got)
	})

	t.Run("round trip through RFC3339 is stable", func(t *testing.T) {
		first, err := timeparse.Resolve("tomorrow 7pm", "EST", now, false)
		require.NoError(t, err)
		second, err := timeparse.Resolve(first.Format(time.RFC3339), "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestResolve_Errors(t *testing.T) {
	t.Run("hour out of range", func(t *testing.T) {
		_, err := timeparse.Resolve("Dec 25 25:00", "EST", now, false)
		var badComponent *timeparse.InvalidTimeComponentError
		require.ErrorAs(t, err, &badComponent)
		assert.Equal(t, "hour", badComponent.Component)
		assert.Equal(t, 25, badComponent.Value)
	})

	t.Run("minute out of range", func(t *testing.T) {
		_, err := timeparse.Resolve("7:75pm", "EST", now, false)
		var badComponent *timeparse.InvalidTimeComponentError
		require.ErrorAs(t, err, &badComponent)
		assert.Equal(t, "minute", badComponent.Component)
	})

	t.Run("unparseable expression names the input", func(t *testing.T) {
		_, err := timeparse.Resolve("banana o'clock", "EST", now, false)
		var unparseable *timeparse.UnparseableExpressionError
		require.ErrorAs(t, err, &unparseable)
		assert.Equal(t, "banana o'clock", unparseable.Input)
		assert.Contains(t, err.Error(), "tomorrow 7pm")
	})

	t.Run("past phrases are not recognized in future-only mode", func(t *testing.T) {
		_, err := timeparse.Resolve("yesterday 7pm", "EST", now, false)
		var unparseable *timeparse.UnparseableExpressionError
		require.ErrorAs(t, err, &unparseable)
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := timeparse.Resolve("   ", "EST", now, false)
		var unparseable *timeparse.UnparseableExpressionError
		require.ErrorAs(t, err, &unparseable)
	})

	t.Run("DST gap is an error, not a guess", func(t *testing.T) {
		_, err := timeparse.Resolve("march 8 2:30am", "EST", now, false)
		var tzErr *timeparse.TimezoneResolutionError
		require.ErrorAs(t, err, &tzErr)
	})
}

func TestResolve_FutureFloor(t *testing.T) {
	t.Run("result before the grace window is rejected", func(t *testing.T) {
		// 07:00 UTC is three hours before now, outside the one-hour grace.
		_, err := timeparse.Resolve("7:00am", "UTC", now, false)
		var pastErr *timeparse.PastResultError
		require.ErrorAs(t, err, &pastErr)
		assert.Equal(t, "7:00am", pastErr.Input)
	})

	t.Run("result inside the grace window passes", func(t *testing.T) {
		got, err := timeparse.Resolve("9:30am", "UTC", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 4, 9, 30, 0, 0, time.UTC), got)
	})

	t.Run("allow-past mode has no floor", func(t *testing.T) {
		got, err := timeparse.Resolve("7:00am", "UTC", now, true)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 4, 7, 0, 0, 0, time.UTC), got)
	})
}

func TestResolve_TimezoneHints(t *testing.T) {
	t.Run("unrecognized hint falls back to Eastern", func(t *testing.T) {
		fromGarbage, err := timeparse.Resolve("tomorrow 7pm", "XYZ", now, false)
		require.NoError(t, err)
		fromEastern, err := timeparse.Resolve("tomorrow 7pm", "EST", now, false)
		require.NoError(t, err)
		assert.Equal(t, fromEastern, fromGarbage)
	})

	t.Run("hints map to civil timezones", func(t *testing.T) {
		assert.Equal(t, "America/Los_Angeles", timeparse.Location("PST").String())
		assert.Equal(t, "America/Chicago", timeparse.Location("cdt").String())
		assert.Equal(t, "UTC", timeparse.Location("gmt").String())
		assert.Equal(t, "America/New_York", timeparse.Location("nonsense").String())
	})

	t.Run("pacific evening converts to UTC", func(t *testing.T) {
		la, err := time.LoadLocation("America/Los_Angeles")
		require.NoError(t, err)
		got, err := timeparse.Resolve("tomorrow 7pm", "PST", now, false)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 3, 5, 19, 0, 0, 0, la).UTC(), got)
	})
}

func TestResolve_IsPure(t *testing.T) {
	first, err1 := timeparse.Resolve("friday 7pm", "EST", now, false)
	second, err2 := timeparse.Resolve("friday 7pm", "EST", now, false)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	_, errA := timeparse.Resolve("banana o'clock", "EST", now, false)
	_, errB := timeparse.Resolve("banana o'clock", "EST", now, false)
	assert.Equal(t, errors.Unwrap(errA), errors.Unwrap(errB))
	assert.Equal(t, errA.Error(), errB.Error())
}
