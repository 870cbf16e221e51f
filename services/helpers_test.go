package services

import (
	"testing"
	"time"

	"chaltrack/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Member{},
		&models.Challenge{},
		&models.ChallengeParticipation{},
		&models.PeriodRecord{},
	))

	return db
}

func createMember(t *testing.T, db *gorm.DB) *models.Member {
	t.Helper()

	member := &models.Member{
		ID:       uuid.New(),
		Email:    uuid.NewString() + "@example.com",
		Nickname: "tester",
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func createChallenge(t *testing.T, db *gorm.DB, title string, recurrence models.RecurrenceType) *models.Challenge {
	t.Helper()

	challenge := &models.Challenge{
		Title:       title,
		Description: title + " description",
		Recurrence:  recurrence,
	}
	require.NoError(t, db.Create(challenge).Error)
	return challenge
}

func joinChallenge(t *testing.T, db *gorm.DB, challengeID uint, memberID uuid.UUID) *models.ChallengeParticipation {
	t.Helper()

	participation, err := NewParticipationService(db).JoinChallenge(challengeID, memberID)
	require.NoError(t, err)
	return participation
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}
