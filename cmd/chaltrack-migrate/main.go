package main

import (
	"log"

	"chaltrack/database"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	// InitDB connects and runs all migrations
	database.InitDB()
	defer database.CloseDB()

	log.Println("✅ Database schema is up to date")
}
