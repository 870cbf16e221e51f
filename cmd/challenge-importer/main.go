package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"chaltrack/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type JSONChallenge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Recurrence  string `json:"recurrence"`
}

func main() {
	jsonPath := "./data/challenges.json"
	if len(os.Args) > 1 {
		jsonPath = os.Args[1]
	}
	dbPath := "./data/chaltrack.db"
	if len(os.Args) > 2 {
		dbPath = os.Args[2]
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.Challenge{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		log.Fatal("Failed to read JSON file:", err)
	}

	var challenges []JSONChallenge
	if err := json.Unmarshal(data, &challenges); err != nil {
		log.Fatal("Failed to parse JSON:", err)
	}

	imported, skipped := 0, 0
	for _, c := range challenges {
		recurrence := models.RecurrenceType(c.Recurrence)
		if c.Title == "" || !recurrence.Valid() {
			log.Printf("Skipping invalid challenge %q (recurrence %q)", c.Title, c.Recurrence)
			skipped++
			continue
		}

		// Skip titles that already exist
		var count int64
		db.Model(&models.Challenge{}).Where("title = ?", c.Title).Count(&count)
		if count > 0 {
			skipped++
			continue
		}

		challenge := &models.Challenge{
			Title:       c.Title,
			Description: c.Description,
			Recurrence:  recurrence,
		}
		if err := db.Create(challenge).Error; err != nil {
			log.Printf("Failed to import %q: %v", c.Title, err)
			skipped++
			continue
		}
		imported++
	}

	fmt.Printf("Imported %d challenges (%d skipped)\n", imported, skipped)
}
