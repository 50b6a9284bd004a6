package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name           string
		unitPrice      string
		quantity       int
		rate           string
		wantTotal      string
		wantCommission string
	}{
		{"single unit", "19.99", 1, "0.10", "19.99", "2.00"},
		{"rounds half away from zero", "19.99", 3, "0.10", "59.97", "6.00"},
		{"zero price", "0", 5, "0.10", "0", "0"},
		{"zero rate", "100.00", 2, "0", "200.00", "0"},
		{"full rate", "10.00", 1, "1", "10.00", "10.00"},
		{"no float drift", "0.10", 3, "0.10", "0.30", "0.03"},
		{"large quantity", "1.25", 1000, "0.15", "1250.00", "187.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, commission, err := Compute(d(tt.unitPrice), tt.quantity, d(tt.rate))
			if err != nil {
				t.Fatalf("Expected no error, got: %v", err)
			}
			if !total.Equal(d(tt.wantTotal)) {
				t.Errorf("Expected total %s, got %s", tt.wantTotal, total)
			}
			if !commission.Equal(d(tt.wantCommission)) {
				t.Errorf("Expected commission %s, got %s", tt.wantCommission, commission)
			}
		})
	}
}

func TestComputeRejectsBadInput(t *testing.T) {
	rate := d("0.10")

	if _, _, err := Compute(d("10.00"), 0, rate); err == nil {
		t.Error("Expected error for quantity 0")
	}
	if _, _, err := Compute(d("10.00"), -3, rate); err == nil {
		t.Error("Expected error for negative quantity")
	}
	if _, _, err := Compute(d("-0.01"), 1, rate); err == nil {
		t.Error("Expected error for negative unit price")
	}
	if _, _, err := Compute(d("10.00"), 1, d("-0.10")); err == nil {
		t.Error("Expected error for negative rate")
	}
	if _, _, err := Compute(d("10.00"), 1, d("1.01")); err == nil {
		t.Error("Expected error for rate above 1")
	}
}

func TestComputeIdempotent(t *testing.T) {
	// Same inputs on repeated saves must yield identical totals.
	t1, c1, err := Compute(d("19.99"), 3, d("0.10"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	for i := 0; i < 5; i++ {
		total, commission, err := Compute(d("19.99"), 3, d("0.10"))
		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if !total.Equal(t1) || !commission.Equal(c1) {
			t.Errorf("Recompute drifted: total %s vs %s, commission %s vs %s", total, t1, commission, c1)
		}
	}
}

func TestSellerEarnings(t *testing.T) {
	total, commission, err := Compute(d("19.99"), 3, d("0.10"))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	earnings := SellerEarnings(total, commission)
	if !earnings.Equal(d("53.97")) {
		t.Errorf("Expected earnings 53.97, got %s", earnings)
	}
	if !earnings.Add(commission).Equal(total) {
		t.Errorf("earnings + commission must equal total")
	}
}
