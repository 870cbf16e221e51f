// models/member.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Member is a registered user referenced by participations. Authentication
// lives outside this service; member identities arrive already resolved.
type Member struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Nickname  string    `json:"nickname" gorm:"size:50;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}
