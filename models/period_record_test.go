package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodRecordComplete(t *testing.T) {
	record := &PeriodRecord{ParticipationID: 1, TargetDate: date(2024, time.March, 14)}

	require.NoError(t, record.Complete(RecurrenceDaily, date(2024, time.March, 14)))

	assert.True(t, record.IsCompleted())
	require.NotNil(t, record.CompletedAt)
	assert.Equal(t, date(2024, time.March, 14), *record.CompletedAt)
}

func TestPeriodRecordCompleteTwice(t *testing.T) {
	record := &PeriodRecord{ParticipationID: 1, TargetDate: date(2024, time.March, 14)}
	require.NoError(t, record.Complete(RecurrenceDaily, date(2024, time.March, 14)))

	err := record.Complete(RecurrenceDaily, date(2024, time.March, 14))

	assert.ErrorIs(t, err, ErrAlreadyCompleted)
	assert.True(t, record.IsCompleted(), "state unchanged after failure")
}

func TestPeriodRecordCompleteOutOfPeriod(t *testing.T) {
	// Weekly period anchored on Monday 2024-01-01
	record := &PeriodRecord{ParticipationID: 1, TargetDate: date(2024, time.January, 1)}

	err := record.Complete(RecurrenceWeekly, date(2024, time.January, 8))

	assert.ErrorIs(t, err, ErrOutOfPeriod)
	assert.False(t, record.IsCompleted())
	assert.Nil(t, record.CompletedAt)
}

func TestPeriodRecordCompleteLastDayOfWeek(t *testing.T) {
	record := &PeriodRecord{ParticipationID: 1, TargetDate: date(2024, time.January, 1)}

	require.NoError(t, record.Complete(RecurrenceWeekly, date(2024, time.January, 7)))
	assert.True(t, record.IsCompleted())
}

func TestPeriodRecordCompleteUnknownRecurrence(t *testing.T) {
	record := &PeriodRecord{ParticipationID: 1, TargetDate: date(2024, time.March, 14)}

	err := record.Complete(RecurrenceType("yearly"), date(2024, time.March, 14))

	assert.ErrorIs(t, err, ErrUnknownRecurrence)
	assert.False(t, record.IsCompleted())
}

func TestPeriodRecordCancel(t *testing.T) {
	record := &PeriodRecord{ParticipationID: 1, TargetDate: date(2024, time.March, 14)}
	require.NoError(t, record.Complete(RecurrenceDaily, date(2024, time.March, 14)))

	record.Cancel()

	assert.False(t, record.IsCompleted())
	assert.Nil(t, record.CompletedAt)

	// Cancelling an uncompleted record is a no-op
	record.Cancel()
	assert.False(t, record.IsCompleted())
}
