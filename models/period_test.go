package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAnchorDateDaily(t *testing.T) {
	refs := []time.Time{
		date(2024, time.January, 1),
		date(2024, time.February, 29),
		date(2025, time.December, 31),
		time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC),
	}

	for _, ref := range refs {
		anchor, err := AnchorDate(RecurrenceDaily, ref)
		require.NoError(t, err)
		assert.Equal(t, DateOnly(ref), anchor)
	}
}

func TestAnchorDateWeekly(t *testing.T) {
	// 2024-01-01 is a Monday; walk two full weeks
	for i := 0; i < 14; i++ {
		ref := date(2024, time.January, 1).AddDate(0, 0, i)

		anchor, err := AnchorDate(RecurrenceWeekly, ref)
		require.NoError(t, err)

		assert.Equal(t, time.Monday, anchor.Weekday(), "anchor for %s", ref.Format("2006-01-02"))
		diff := ref.Sub(anchor).Hours() / 24
		assert.GreaterOrEqual(t, diff, 0.0)
		assert.Less(t, diff, 7.0)
	}
}

func TestAnchorDateMonthly(t *testing.T) {
	refs := []time.Time{
		date(2024, time.January, 31),
		date(2024, time.February, 29),
		date(2024, time.July, 1),
	}

	for _, ref := range refs {
		anchor, err := AnchorDate(RecurrenceMonthly, ref)
		require.NoError(t, err)
		assert.Equal(t, 1, anchor.Day())
		assert.Equal(t, ref.Month(), anchor.Month())
		assert.Equal(t, ref.Year(), anchor.Year())
	}
}

func TestAnchorDateUnknownRecurrence(t *testing.T) {
	_, err := AnchorDate(RecurrenceType(""), date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrUnknownRecurrence)

	_, err = AnchorDate(RecurrenceType("yearly"), date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrUnknownRecurrence)

	_, err = PeriodEnd(RecurrenceType("yearly"), date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrUnknownRecurrence)

	_, err = WithinPeriod(RecurrenceType("yearly"), date(2024, time.January, 1), date(2024, time.January, 1))
	assert.ErrorIs(t, err, ErrUnknownRecurrence)
}

func TestWithinPeriodHalfOpen(t *testing.T) {
	cases := []struct {
		name       string
		recurrence RecurrenceType
		anchor     time.Time
		lastInside time.Time
		firstOut   time.Time
	}{
		{"daily", RecurrenceDaily, date(2024, time.March, 14), date(2024, time.March, 14), date(2024, time.March, 15)},
		{"weekly", RecurrenceWeekly, date(2024, time.January, 1), date(2024, time.January, 7), date(2024, time.January, 8)},
		{"monthly", RecurrenceMonthly, date(2024, time.February, 1), date(2024, time.February, 29), date(2024, time.March, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			within, err := WithinPeriod(tc.recurrence, tc.anchor, tc.anchor)
			require.NoError(t, err)
			assert.True(t, within, "anchor itself is always inside")

			within, err = WithinPeriod(tc.recurrence, tc.anchor, tc.lastInside)
			require.NoError(t, err)
			assert.True(t, within)

			within, err = WithinPeriod(tc.recurrence, tc.anchor, tc.firstOut)
			require.NoError(t, err)
			assert.False(t, within, "upper bound is exclusive")

			within, err = WithinPeriod(tc.recurrence, tc.anchor, tc.anchor.AddDate(0, 0, -1))
			require.NoError(t, err)
			assert.False(t, within)
		})
	}
}

func TestPeriodEnd(t *testing.T) {
	end, err := PeriodEnd(RecurrenceDaily, date(2024, time.March, 14))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 15), end)

	end, err = PeriodEnd(RecurrenceWeekly, date(2024, time.January, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.January, 8), end)

	end, err = PeriodEnd(RecurrenceMonthly, date(2024, time.February, 1))
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.March, 1), end)
}
