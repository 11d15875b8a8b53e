package utils

import (
	"log"
	"time"

	"gorm.io/gorm"

	"zoo-service/db-utils/models"
)

func DataBaseHealthPollingLoop(db *gorm.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			sqlDB, err := db.DB()
			if err != nil {
				// try to recreate DB connection here
				log.Fatalf("Error getting DB instance: %v", err)
			}
			err = sqlDB.Ping()
			if err != nil {
				// try to recreate DB connection here
				log.Fatalf("Database connection lost: %v", err)
			}
			// check that none of the record tables went missing
			for _, model := range []any{&models.Animal{}, &models.Enclosure{}, &models.Zookeeper{}} {
				if !db.Migrator().HasTable(model) {
					// try to migrate gorm model here
					log.Fatalf("Table missing for %T", model)
				}
			}
			log.Println("Database connection is healthy.")
		}
	}
}
