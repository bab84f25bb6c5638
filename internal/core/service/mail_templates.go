package service

import (
	"bytes"
	"html/template"

	"github.com/farmlink/marketplace-api/internal/core/domain"
)

var orderConfirmationTmpl = template.Must(template.New("order").Parse(`<h2>Thank you for your order, {{.BuyerName}}!</h2>
<p>Order <strong>{{.ID}}</strong> from {{.FarmerName}} is now <strong>{{.Status}}</strong>.</p>
<table>
{{range .Items}}<tr><td>{{.ProductName}}</td><td>{{.Quantity}} {{.Unit}}</td><td>{{printf "%.2f" .Total}}</td></tr>
{{end}}</table>
<p>Total: <strong>{{printf "%.2f" .TotalAmount}}</strong></p>
<p>Delivery address: {{.DeliveryAddress}}</p>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<h3>New contact message</h3>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{if .Phone}}{{.Phone}}{{else}}N/A{{end}}</p>
<p><strong>Subject:</strong> {{.Subject}}</p>
<p><strong>Message:</strong><br>{{.Message}}</p>`))

func renderOrderConfirmation(o *domain.Order) (string, error) {
	var buf bytes.Buffer
	if err := orderConfirmationTmpl.Execute(&buf, o); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderContact(m domain.ContactMessage) (string, error) {
	var buf bytes.Buffer
	if err := contactTmpl.Execute(&buf, m); err != nil {
		return "", err
	}
	return buf.String(), nil
}
