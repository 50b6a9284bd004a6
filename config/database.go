package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDatabase opens the Postgres connection and returns a cleanup
// function closing the underlying pool.
func ConnectDatabase(cfg *Config) (*gorm.DB, func(), error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("Failed to access underlying connection: %v", err)
			return
		}
		_ = sqlDB.Close()
	}

	return db, cleanup, nil
}
