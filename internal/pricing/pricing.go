// Package pricing computes order totals and the platform commission.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultCommissionRate is the platform cut applied when no rate is configured.
var DefaultCommissionRate = decimal.NewFromFloat(0.10)

var one = decimal.NewFromInt(1)

// Compute returns the order total and platform commission for a unit price
// and quantity, both rounded to 2 decimal places (half away from zero).
// Totals are recomputed from current inputs on every order save, so the
// function must stay pure.
func Compute(unitPrice decimal.Decimal, quantity int, rate decimal.Decimal) (total, commission decimal.Decimal, err error) {
	if quantity < 1 {
		return decimal.Zero, decimal.Zero, fmt.Errorf("quantity must be >= 1, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("unit price must be >= 0, got %s", unitPrice)
	}
	if rate.IsNegative() || rate.GreaterThan(one) {
		return decimal.Zero, decimal.Zero, fmt.Errorf("commission rate must be in [0,1], got %s", rate)
	}

	total = unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	commission = total.Mul(rate).Round(2)
	return total, commission, nil
}

// SellerEarnings is what remains for the seller after the platform cut.
func SellerEarnings(total, commission decimal.Decimal) decimal.Decimal {
	return total.Sub(commission)
}
