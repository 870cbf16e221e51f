// database/migrate.go - Database Migration Runner
package database

import (
	"log"

	"chaltrack/models"
)

// RunMigrations runs all database migrations
func RunMigrations() {
	db := GetDB()
	log.Println("🔄 Running database migrations...")

	if err := db.AutoMigrate(
		&models.Member{},
		&models.Challenge{},
		&models.ChallengeParticipation{},
		&models.PeriodRecord{},
	); err != nil {
		log.Fatalf("❌ Failed to run migrations: %v", err)
	}

	createIndexes()

	log.Println("✅ All migrations completed successfully")
}

// createIndexes creates database indexes for query performance
func createIndexes() {
	db := GetDB()
	log.Println("Creating indexes...")

	// Participation indexes
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participations_member ON challenge_participations(member_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participations_challenge ON challenge_participations(challenge_id)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_participations_active ON challenge_participations(member_id, left_at)")

	// One record per participation per anchor date; concurrent creates for the
	// same period fail here and surface as a retryable duplicate condition.
	db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_period_records_participation_target ON period_records(participation_id, target_date)")
	db.Exec("CREATE INDEX IF NOT EXISTS idx_period_records_done ON period_records(done)")
}
