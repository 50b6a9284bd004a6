package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// orderTransitions is the admissible status machine:
// pending -> paid -> shipped -> completed, with pending -> cancelled
// as the alternate terminal transition.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped},
	OrderStatusShipped: {OrderStatusCompleted},
}

// CanTransition reports whether an order may move from its current status
// to the given one.
func (s OrderStatus) CanTransition(to OrderStatus) bool {
	for _, next := range orderTransitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Valid reports whether the value is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	ProductID uint `gorm:"index;not null" json:"product_id"`

	BuyerName  string `gorm:"size:200;not null" json:"buyer_name"`
	BuyerEmail string `gorm:"size:100;not null" json:"buyer_email"`
	Quantity   int    `gorm:"not null;default:1" json:"quantity"`

	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Commission decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"commission"`

	Status OrderStatus `gorm:"size:20;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

// SellerEarnings is the order total minus the platform commission.
// Derived, never stored.
func (o *Order) SellerEarnings() decimal.Decimal {
	return o.TotalPrice.Sub(o.Commission)
}
