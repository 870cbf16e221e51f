// models/participation.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeParticipation represents a member's enrollment in a challenge.
// Leaving is a soft withdrawal: LeftAt is stamped and a later re-join creates
// a fresh row. At most one active row exists per (member, challenge) pair.
type ChallengeParticipation struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	ChallengeID uint       `json:"challenge_id" gorm:"not null;index"`
	Challenge   *Challenge `json:"challenge,omitempty" gorm:"foreignKey:ChallengeID"`
	MemberID    uuid.UUID  `json:"member_id" gorm:"type:uuid;not null;index"`
	Member      *Member    `json:"member,omitempty" gorm:"foreignKey:MemberID"`
	JoinedAt    time.Time  `json:"joined_at" gorm:"not null"`
	LeftAt      *time.Time `json:"left_at"`
}

func (ChallengeParticipation) TableName() string {
	return "challenge_participations"
}

// IsActive reports whether the member has not withdrawn.
func (p *ChallengeParticipation) IsActive() bool {
	return p.LeftAt == nil
}
