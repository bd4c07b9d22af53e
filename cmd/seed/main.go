package main

import (
	"log"

	"logistics-dashboard/internal/config"
	"logistics-dashboard/internal/database"
)

// The seeder is the only writer in the system: it creates the schema and
// loads the demo dataset. The reporting server never mutates the store.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Seed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Printf("Database seeded successfully at %s", cfg.DBPath)
}
