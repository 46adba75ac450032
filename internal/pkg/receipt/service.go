// internal/pkg/receipt/service.go
package receipt

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/checkout"
)

// Service handles order receipt PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new receipt service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// receiptData is the template payload
type receiptData struct {
	StoreName string
	Order     *checkout.Order
	PlacedAt  string
}

// Generate renders a PDF receipt for a placed order. Requires the
// wkhtmltopdf binary on PATH; its absence is returned as an error.
func (s *Service) Generate(order *checkout.Order) ([]byte, error) {
	data := receiptData{
		StoreName: s.config.App.Name,
		Order:     order,
		PlacedAt:  order.PlacedAt.Format("January 2, 2006"),
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return pdfg.Bytes(), nil
}

// generateHTML generates HTML content from the receipt template
func (s *Service) generateHTML(data receiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Funcs(template.FuncMap{
		"multiply": func(price int64, qty int) int64 { return price * int64(qty) },
	}).Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #333; margin: 40px; }
  h1 { font-size: 22px; margin-bottom: 0; }
  .muted { color: #777; font-size: 12px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  th, td { text-align: left; padding: 8px 4px; border-bottom: 1px solid #ddd; font-size: 13px; }
  th { text-transform: uppercase; font-size: 11px; color: #777; }
  td.num, th.num { text-align: right; }
  .totals td { border-bottom: none; padding: 4px; }
  .totals .grand { font-weight: bold; border-top: 2px solid #333; }
</style>
</head>
<body>
  <h1>{{.StoreName}}</h1>
  <p class="muted">Order {{.Order.OrderNumber}} &middot; {{.PlacedAt}}</p>

  <p>
    {{.Order.Customer.FirstName}} {{.Order.Customer.LastName}}<br>
    {{.Order.Shipping.Line1}}{{if .Order.Shipping.Line2}}, {{.Order.Shipping.Line2}}{{end}}<br>
    {{.Order.Shipping.City}}, {{.Order.Shipping.State}} {{.Order.Shipping.PostalCode}}<br>
    {{.Order.Shipping.Country}}
  </p>

  <table>
    <tr><th>Item</th><th class="num">Price</th><th class="num">Qty</th><th class="num">Amount</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.Name}}{{if .Size}} ({{.Size}}){{end}}</td>
      <td class="num">{{.Price}}</td>
      <td class="num">{{.Quantity}}</td>
      <td class="num">{{multiply .Price .Quantity}}</td>
    </tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td></td><td class="num">Subtotal</td><td class="num">{{.Order.Totals.SubTotal}} {{.Order.Currency}}</td></tr>
    <tr><td></td><td class="num">Shipping</td><td class="num">{{.Order.Totals.ShippingCost}} {{.Order.Currency}}</td></tr>
    <tr><td></td><td class="num">Tax</td><td class="num">{{.Order.Totals.TaxAmount}} {{.Order.Currency}}</td></tr>
    <tr class="grand"><td></td><td class="num">Total</td><td class="num">{{.Order.Totals.TotalAmount}} {{.Order.Currency}}</td></tr>
  </table>

  <p class="muted">Thank you for supporting our artisans.</p>
</body>
</html>`
