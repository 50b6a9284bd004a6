package mailer

import (
	"errors"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/vansh9528/dealstash/models"
)

// Notifier announces a newly placed order. Implementations must be
// best-effort: the order is already committed when this runs.
type Notifier interface {
	OrderPlaced(order *models.Order) error
}

// OrderNotifier sends the seller-facing and admin-facing messages for a new
// order. The two sends are independent: one failing never suppresses the
// other, and all failures come back as a single aggregated error.
type OrderNotifier struct {
	mail        Mailer
	adminEmails []string
	baseURL     string
}

func NewOrderNotifier(mail Mailer, adminEmails []string, baseURL string) *OrderNotifier {
	return &OrderNotifier{mail: mail, adminEmails: adminEmails, baseURL: baseURL}
}

type orderContext struct {
	Company  models.Company
	Product  models.Product
	Order    *models.Order
	AdminURL string
}

const sellerText = `Hello {{.Company.Name}},

You have a new order for your product: {{.Product.Name}}

Buyer: {{.Order.BuyerName}} ({{.Order.BuyerEmail}})
Quantity: {{.Order.Quantity}}
Total: {{.Order.TotalPrice}}
Platform commission: {{.Order.Commission}}
Your earnings: {{.Order.SellerEarnings}}

We will keep you posted as the order progresses.
`

const sellerHTML = `<html><body>
<p>Hello {{.Company.Name}},</p>
<p>You have a new order for your product: <strong>{{.Product.Name}}</strong></p>
<ul>
<li>Buyer: {{.Order.BuyerName}} ({{.Order.BuyerEmail}})</li>
<li>Quantity: {{.Order.Quantity}}</li>
<li>Total: {{.Order.TotalPrice}}</li>
<li>Platform commission: {{.Order.Commission}}</li>
<li>Your earnings: {{.Order.SellerEarnings}}</li>
</ul>
<p>We will keep you posted as the order progresses.</p>
</body></html>`

const adminText = `New order placed.

Product: {{.Product.Name}} (company: {{.Company.Name}})
Buyer: {{.Order.BuyerName}} ({{.Order.BuyerEmail}})
Quantity: {{.Order.Quantity}}
Total: {{.Order.TotalPrice}}
Commission: {{.Order.Commission}}

Manage: {{.AdminURL}}
`

const adminHTML = `<html><body>
<p>New order placed.</p>
<ul>
<li>Product: {{.Product.Name}} (company: {{.Company.Name}})</li>
<li>Buyer: {{.Order.BuyerName}} ({{.Order.BuyerEmail}})</li>
<li>Quantity: {{.Order.Quantity}}</li>
<li>Total: {{.Order.TotalPrice}}</li>
<li>Commission: {{.Order.Commission}}</li>
</ul>
<p><a href="{{.AdminURL}}">Open in back office</a></p>
</body></html>`

var (
	sellerTextTmpl = texttemplate.Must(texttemplate.New("seller_text").Parse(sellerText))
	sellerHTMLTmpl = htmltemplate.Must(htmltemplate.New("seller_html").Parse(sellerHTML))
	adminTextTmpl  = texttemplate.Must(texttemplate.New("admin_text").Parse(adminText))
	adminHTMLTmpl  = htmltemplate.Must(htmltemplate.New("admin_html").Parse(adminHTML))
)

// OrderPlaced expects order.Product and order.Product.Company preloaded.
func (n *OrderNotifier) OrderPlaced(order *models.Order) error {
	ctx := orderContext{
		Company:  order.Product.Company,
		Product:  order.Product,
		Order:    order,
		AdminURL: fmt.Sprintf("%s/staff/orders/%d", strings.TrimRight(n.baseURL, "/"), order.ID),
	}

	var sellerErr, adminErr error

	// Seller message, only when the company has an email on file
	if ctx.Company.Email != "" {
		subject := fmt.Sprintf("New order for your product: %s", ctx.Product.Name)
		text, html, err := render(sellerTextTmpl, sellerHTMLTmpl, ctx)
		if err == nil {
			err = n.mail.Send([]string{ctx.Company.Email}, subject, text, html)
		}
		if err != nil {
			sellerErr = fmt.Errorf("seller notification: %w", err)
		}
	}

	// Admin message; an empty admin list is a no-op, not an error
	if len(n.adminEmails) > 0 {
		subject := fmt.Sprintf("New order placed - %s (Order #%d)", ctx.Product.Name, order.ID)
		text, html, err := render(adminTextTmpl, adminHTMLTmpl, ctx)
		if err == nil {
			err = n.mail.Send(n.adminEmails, subject, text, html)
		}
		if err != nil {
			adminErr = fmt.Errorf("admin notification: %w", err)
		}
	}

	return errors.Join(sellerErr, adminErr)
}

func render(text *texttemplate.Template, html *htmltemplate.Template, ctx orderContext) (string, string, error) {
	var tb, hb strings.Builder
	if err := text.Execute(&tb, ctx); err != nil {
		return "", "", err
	}
	if err := html.Execute(&hb, ctx); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}
