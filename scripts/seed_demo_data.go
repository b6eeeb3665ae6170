package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"teamflow-backend/internal/config"
	"teamflow-backend/internal/database"
	"teamflow-backend/internal/database/models"
	"teamflow-backend/internal/snapshot"
	"teamflow-backend/internal/synckey"

	"github.com/joho/godotenv"
	"gorm.io/gorm/clause"
)

// Seeds the scope store with a demo roster so a freshly started dashboard
// has something to render. Run with -key to target a specific team key;
// otherwise a new one is generated and printed.
func main() {
	var key string
	flag.StringVar(&key, "key", "", "sync key to seed (generated when empty)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	if key == "" {
		key = synckey.Generate()
	} else {
		key = synckey.Normalize(key)
		if !synckey.Valid(key) && !synckey.ValidAccountScope(key) {
			log.Fatalf("Invalid sync key %q", key)
		}
	}

	snap := snapshot.Seed(time.Now())
	data, err := json.Marshal(snap)
	if err != nil {
		log.Fatal("Failed to marshal snapshot: ", err)
	}

	record := &models.ScopeRecord{
		Key:         key,
		Name:        "TeamFlow:" + key,
		Data:        data,
		LastUpdated: snap.LastUpdated,
	}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "data", "last_updated", "updated_at"}),
	}).Create(record).Error
	if err != nil {
		log.Fatal("Failed to seed record: ", err)
	}

	fmt.Printf("Seeded %d people and %d schedule entries under %s\n",
		len(snap.Persons), len(snap.Schedule), key)
}
