package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlaceholderImageURL is served when a product has no uploaded image.
const PlaceholderImageURL = "/static/img/placeholder.png"

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CompanyID   uint            `gorm:"index;not null" json:"company_id"`
	Name        string          `gorm:"size:200;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL    string          `json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Company Company `gorm:"foreignKey:CompanyID;constraint:OnDelete:CASCADE" json:"company,omitempty"`
	Orders  []Order `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"orders,omitempty"`
}

// DisplayImageURL degrades to the placeholder when no image was uploaded.
func (p *Product) DisplayImageURL() string {
	if p.ImageURL == "" {
		return PlaceholderImageURL
	}
	return p.ImageURL
}
