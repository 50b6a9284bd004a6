package config

import (
	"log"

	"github.com/vansh9528/dealstash/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Product{},
		&models.Order{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")

	// Ensure a staff account exists even on normal migration
	SeedStaffUser(db)

	return err
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables, orders first to respect foreign keys
	tables := []interface{}{
		&models.Order{},
		&models.Product{},
		&models.Company{},
		&models.User{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		log.Printf("Failed to drop tables: %v", err)
		return err
	}

	log.Println("All tables dropped successfully.")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Product{},
		&models.Order{},
	); err != nil {
		log.Printf("Failed to auto migrate: %v", err)
		return err
	}

	SeedStaffUser(db)
	SeedDemoCatalog(db)

	log.Println("Database reset and migration completed successfully.")
	return nil
}
