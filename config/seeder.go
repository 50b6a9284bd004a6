package config

import (
	"log"

	"github.com/vansh9528/dealstash/models"
	"github.com/vansh9528/dealstash/utils"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SeedStaffUser ensures one back-office account exists.
func SeedStaffUser(db *gorm.DB) {
	log.Println("🌱 Seeding staff user...")

	password, _ := utils.HashPassword("staffpass123")

	staff := models.User{
		Username: "staff",
		Email:    "staff@dealstash.local",
		Password: password,
		Role:     models.RoleStaff,
	}

	var existing models.User
	if err := db.Where("username = ?", staff.Username).First(&existing).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&staff).Error; err != nil {
				log.Printf("Failed to seed staff user: %v", err)
			} else {
				log.Printf("Staff user seeded: %s (ID: %d)", staff.Username, staff.ID)
			}
		}
	} else {
		log.Printf("Staff user already exists: %s", existing.Username)
	}
}

// SeedDemoCatalog creates a demo seller with a company and a few products.
func SeedDemoCatalog(db *gorm.DB) {
	log.Println("🌱 Seeding demo catalog...")

	password, _ := utils.HashPassword("password123")

	seller := models.User{
		Username: "demoseller",
		Email:    "seller@example.com",
		Password: password,
		Role:     models.RoleUser,
	}

	var existing models.User
	if err := db.Where("username = ?", seller.Username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Printf("Failed to look up demo seller: %v", err)
			return
		}
		if err := db.Create(&seller).Error; err != nil {
			log.Printf("Failed to seed demo seller: %v", err)
			return
		}
	} else {
		log.Printf("Demo seller already exists: %s", existing.Username)
		return
	}

	company := models.Company{
		UserID:  &seller.ID,
		Name:    "Demo Trading Co",
		Email:   "seller@example.com",
		Website: "https://demo.example.com",
	}
	if err := db.Create(&company).Error; err != nil {
		log.Printf("Failed to seed demo company: %v", err)
		return
	}

	products := []models.Product{
		{
			CompanyID:   company.ID,
			Name:        "Blue T-Shirt",
			Description: "Classic cotton tee.",
			Price:       decimal.NewFromFloat(19.99),
		},
		{
			CompanyID:   company.ID,
			Name:        "Red Hoodie",
			Description: "Warm fleece hoodie.",
			Price:       decimal.NewFromFloat(45.99),
		},
		{
			CompanyID:   company.ID,
			Name:        "Sneakers",
			Description: "Everyday running shoes.",
			Price:       decimal.NewFromFloat(69.99),
		},
	}

	for _, p := range products {
		if err := db.Create(&p).Error; err != nil {
			log.Printf("Failed to seed product %s: %v", p.Name, err)
		} else {
			log.Printf("Product seeded: %s (ID: %d)", p.Name, p.ID)
		}
	}

	log.Println("✅ Seeding complete.")
}
