package models

import (
	"time"
)

type Company struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One user -> one company. Nullable: a company can outlive its user link.
	UserID *uint `gorm:"uniqueIndex" json:"user_id,omitempty"`

	Name    string `gorm:"size:200;not null" json:"name"`
	Email   string `gorm:"unique;not null;size:100" json:"email"`
	Website string `gorm:"size:255" json:"website,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations: deleting a company removes its products (and their orders)
	Products []Product `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"products,omitempty"`
}
