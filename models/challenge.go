// models/challenge.go - Challenge Data Models
package models

import (
	"time"
)

// RecurrenceType is the cadence a challenge obligation resets on.
type RecurrenceType string

const (
	RecurrenceDaily   RecurrenceType = "daily"
	RecurrenceWeekly  RecurrenceType = "weekly"
	RecurrenceMonthly RecurrenceType = "monthly"
)

// Valid reports whether the recurrence type is one of the known cadences.
func (rt RecurrenceType) Valid() bool {
	switch rt {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// Challenge represents a recurring challenge members can participate in
type Challenge struct {
	ID             uint                     `json:"id" gorm:"primaryKey"`
	Title          string                   `json:"title" gorm:"not null;size:100"`
	Description    string                   `json:"description" gorm:"type:text"`
	Recurrence     RecurrenceType           `json:"recurrence" gorm:"not null;index"`
	CreatedAt      time.Time                `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time                `json:"updated_at"`
	Participations []ChallengeParticipation `json:"participations,omitempty" gorm:"foreignKey:ChallengeID"`
}

func (Challenge) TableName() string {
	return "challenges"
}
