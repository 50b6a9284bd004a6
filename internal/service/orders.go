package service

import (
	"errors"
	"log"

	"github.com/vansh9528/dealstash/internal/mailer"
	"github.com/vansh9528/dealstash/internal/pricing"
	"github.com/vansh9528/dealstash/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderService orchestrates order placement and status changes.
type OrderService struct {
	db       *gorm.DB
	notifier mailer.Notifier
	rate     func() decimal.Decimal
}

// NewOrderService wires the order lifecycle. rate is read on every call so
// the commission always reflects current configuration.
func NewOrderService(db *gorm.DB, notifier mailer.Notifier, rate func() decimal.Decimal) *OrderService {
	return &OrderService{db: db, notifier: notifier, rate: rate}
}

type PlaceOrderInput struct {
	BuyerName  string
	BuyerEmail string
	Quantity   int
}

// PlaceOrderResult distinguishes "created, notification sent" from
// "created, notification failed". The order is durable either way.
type PlaceOrderResult struct {
	Order           *models.Order
	NotificationErr error
}

// PlaceOrder validates the request, computes totals, persists the order
// with status pending, and then attempts notification. Notification runs
// strictly after the commit and its failure never undoes the order.
func (s *OrderService) PlaceOrder(productID uint, in PlaceOrderInput) (*PlaceOrderResult, error) {
	var product models.Product
	err := s.db.Preload("Company").First(&product, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	if in.BuyerName == "" {
		verr.Add("buyer_name", "required", "Buyer name is required")
	}
	if !validEmail(in.BuyerEmail) {
		verr.Add("buyer_email", "invalid", "A valid email address is required")
	}
	if in.Quantity < 1 {
		verr.Add("quantity", "min", "Quantity must be a positive integer")
	}
	if verr.HasErrors() {
		return nil, verr
	}

	total, commission, err := pricing.Compute(product.Price, in.Quantity, s.rate())
	if err != nil {
		return nil, err
	}

	order := models.Order{
		ProductID:  product.ID,
		BuyerName:  in.BuyerName,
		BuyerEmail: in.BuyerEmail,
		Quantity:   in.Quantity,
		TotalPrice: total,
		Commission: commission,
		Status:     models.OrderStatusPending,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}

	// The order is committed; notification is best-effort from here on.
	order.Product = product
	result := &PlaceOrderResult{Order: &order}
	if notifyErr := s.notifier.OrderPlaced(&order); notifyErr != nil {
		log.Printf("Failed to send order notifications for order %d: %v", order.ID, notifyErr)
		result.NotificationErr = notifyErr
	}

	return result, nil
}

// ListCompanyOrders returns the orders placed against a company's products,
// newest first, with the product joined in.
func (s *OrderService) ListCompanyOrders(companyID uint) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.
		Select("orders.*").
		Joins("JOIN products ON products.id = orders.product_id").
		Where("products.company_id = ?", companyID).
		Preload("Product").
		Order("orders.created_at desc").
		Find(&orders).Error
	return orders, err
}

// UpdateStatus applies a staff status transition. Totals are recomputed
// from the current product price on every save, so they always reflect
// pricing at time of write.
func (s *OrderService) UpdateStatus(orderID uint, next models.OrderStatus) (*models.Order, error) {
	var order models.Order
	err := s.db.Preload("Product").First(&order, orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	if !next.Valid() {
		verr.Add("status", "invalid", "Unknown order status")
	} else if !order.Status.CanTransition(next) {
		verr.Add("status", "transition", "Cannot move order from "+string(order.Status)+" to "+string(next))
	}
	if verr.HasErrors() {
		return nil, verr
	}

	total, commission, err := pricing.Compute(order.Product.Price, order.Quantity, s.rate())
	if err != nil {
		return nil, err
	}

	order.Status = next
	order.TotalPrice = total
	order.Commission = commission

	if err := s.db.Omit("Product").Save(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}
