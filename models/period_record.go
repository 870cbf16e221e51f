// models/period_record.go
package models

import (
	"errors"
	"time"
)

var (
	// ErrOutOfPeriod means the supplied date is outside the record's window.
	ErrOutOfPeriod = errors.New("date is outside the challenge period")
	// ErrAlreadyCompleted means the record was completed earlier in the period.
	ErrAlreadyCompleted = errors.New("challenge already completed for this period")
)

// PeriodRecord is one participation's obligation for one period. TargetDate
// is the period's anchor date; the window the obligation can be fulfilled in
// is always re-derived from TargetDate, never from the current clock. The
// unique index on (participation_id, target_date) serializes concurrent
// creates for the same period.
type PeriodRecord struct {
	ID              uint                    `json:"id" gorm:"primaryKey"`
	ParticipationID uint                    `json:"participation_id" gorm:"not null;index:idx_period_records_participation_target,unique"`
	Participation   *ChallengeParticipation `json:"participation,omitempty" gorm:"foreignKey:ParticipationID"`
	TargetDate      time.Time               `json:"target_date" gorm:"not null;index:idx_period_records_participation_target,unique"`
	Done            bool                    `json:"done" gorm:"not null;default:false"`
	CreatedAt       time.Time               `json:"created_at"`
	UpdatedAt       time.Time               `json:"updated_at"`
	CompletedAt     *time.Time              `json:"completed_at"`
}

func (PeriodRecord) TableName() string {
	return "period_records"
}

// Complete marks the obligation fulfilled. It fails when currentDate falls
// outside the record's window or when the record is already done; the record
// is left untouched on failure.
func (r *PeriodRecord) Complete(recurrence RecurrenceType, currentDate time.Time) error {
	within, err := WithinPeriod(recurrence, r.TargetDate, currentDate)
	if err != nil {
		return err
	}
	if !within {
		return ErrOutOfPeriod
	}
	if r.Done {
		return ErrAlreadyCompleted
	}
	completedAt := DateOnly(currentDate)
	r.Done = true
	r.CompletedAt = &completedAt
	return nil
}

// Cancel reverts the record to uncompleted. Safe to call in any state.
func (r *PeriodRecord) Cancel() {
	r.Done = false
	r.CompletedAt = nil
}

// IsCompleted reports the completion flag.
func (r *PeriodRecord) IsCompleted() bool {
	return r.Done
}
