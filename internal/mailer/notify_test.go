package mailer

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/vansh9528/dealstash/models"
)

type sentMessage struct {
	To      []string
	Subject string
	Text    string
	HTML    string
}

type fakeMailer struct {
	sent    []sentMessage
	failFor map[string]error // keyed by first recipient
}

func (f *fakeMailer) Send(to []string, subject, textBody, htmlBody string) error {
	f.sent = append(f.sent, sentMessage{To: to, Subject: subject, Text: textBody, HTML: htmlBody})
	if f.failFor != nil && len(to) > 0 {
		if err, ok := f.failFor[to[0]]; ok {
			return err
		}
	}
	return nil
}

func testOrder() *models.Order {
	return &models.Order{
		ID:         42,
		ProductID:  7,
		BuyerName:  "Bob Buyer",
		BuyerEmail: "bob@example.com",
		Quantity:   3,
		TotalPrice: decimal.NewFromFloat(59.97),
		Commission: decimal.NewFromFloat(6.00),
		Status:     models.OrderStatusPending,
		Product: models.Product{
			ID:        7,
			CompanyID: 10,
			Name:      "Blue T-Shirt",
			Price:     decimal.NewFromFloat(19.99),
			Company: models.Company{
				ID:    10,
				Name:  "Alice Co",
				Email: "alice@x.com",
			},
		},
	}
}

func TestOrderPlaced_SendsSellerAndAdmin(t *testing.T) {
	mail := &fakeMailer{}
	n := NewOrderNotifier(mail, []string{"admin@dealstash.local"}, "http://localhost:8080/")

	if err := n.OrderPlaced(testOrder()); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(mail.sent) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(mail.sent))
	}

	seller := mail.sent[0]
	if seller.To[0] != "alice@x.com" {
		t.Errorf("Expected seller message to alice@x.com, got %v", seller.To)
	}
	if !strings.Contains(seller.Text, "Blue T-Shirt") || !strings.Contains(seller.HTML, "Blue T-Shirt") {
		t.Error("Seller message must mention the product in both renderings")
	}
	if !strings.Contains(seller.Text, "53.97") {
		t.Error("Seller message must include seller earnings")
	}

	admin := mail.sent[1]
	if admin.To[0] != "admin@dealstash.local" {
		t.Errorf("Expected admin message to admin@dealstash.local, got %v", admin.To)
	}
	if !strings.Contains(admin.Text, "http://localhost:8080/staff/orders/42") {
		t.Errorf("Admin message must carry the back-office link, got: %s", admin.Text)
	}
}

func TestOrderPlaced_NoCompanyEmail(t *testing.T) {
	mail := &fakeMailer{}
	n := NewOrderNotifier(mail, []string{"admin@dealstash.local"}, "http://localhost:8080")

	order := testOrder()
	order.Product.Company.Email = ""

	if err := n.OrderPlaced(order); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("Expected only the admin message, got %d messages", len(mail.sent))
	}
	if mail.sent[0].To[0] != "admin@dealstash.local" {
		t.Errorf("Expected admin recipient, got %v", mail.sent[0].To)
	}
}

func TestOrderPlaced_NoAdminsConfigured(t *testing.T) {
	mail := &fakeMailer{}
	n := NewOrderNotifier(mail, nil, "http://localhost:8080")

	if err := n.OrderPlaced(testOrder()); err != nil {
		t.Fatalf("Expected no error with empty admin list, got: %v", err)
	}
	if len(mail.sent) != 1 {
		t.Fatalf("Expected only the seller message, got %d messages", len(mail.sent))
	}
}

func TestOrderPlaced_SellerFailureDoesNotSuppressAdmin(t *testing.T) {
	sendErr := errors.New("connection refused")
	mail := &fakeMailer{failFor: map[string]error{"alice@x.com": sendErr}}
	n := NewOrderNotifier(mail, []string{"admin@dealstash.local"}, "http://localhost:8080")

	err := n.OrderPlaced(testOrder())
	if err == nil {
		t.Fatal("Expected aggregated error when seller send fails")
	}
	if !errors.Is(err, sendErr) {
		t.Errorf("Expected wrapped send error, got: %v", err)
	}
	if len(mail.sent) != 2 {
		t.Fatalf("Admin send must still be attempted, got %d messages", len(mail.sent))
	}
}

func TestOrderPlaced_BothFailuresAggregated(t *testing.T) {
	sellerErr := errors.New("seller relay down")
	adminErr := errors.New("admin relay down")
	mail := &fakeMailer{failFor: map[string]error{
		"alice@x.com":           sellerErr,
		"admin@dealstash.local": adminErr,
	}}
	n := NewOrderNotifier(mail, []string{"admin@dealstash.local"}, "http://localhost:8080")

	err := n.OrderPlaced(testOrder())
	if !errors.Is(err, sellerErr) || !errors.Is(err, adminErr) {
		t.Errorf("Expected both failures in aggregated error, got: %v", err)
	}
}
