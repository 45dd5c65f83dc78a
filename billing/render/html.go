// Package render turns finalized bill records into printable documents.
// It consumes only the stored bill fields; tax and discount amounts are
// derived from the stored subtotal via the invoice helpers, never from
// live product data.
package render

import (
	"fmt"
	"html/template"
	"io"

	"encore.app/billing/invoice"
	"encore.app/billing/model"
)

type invoiceView struct {
	Bill           *model.Bill
	GstAmount      float64
	DiscountAmount float64
}

var invoicePage = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"money": func(v float64) string { return fmt.Sprintf("₹%.2f", v) },
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <title>Invoice #{{.Bill.ID}}</title>
    <style>
      body { font-family: Arial; padding: 20px; line-height: 1.6; }
      h1 { color: #333; }
      table { width: 100%; border-collapse: collapse; margin: 20px 0; }
      th, td { border: 1px solid #ccc; padding: 8px; text-align: left; }
      th { background-color: #f4f4f4; }
      .total { font-size: 1.2em; font-weight: bold; margin-top: 20px; }
      .print-btn { margin-top: 20px; }
    </style>
  </head>
  <body>
    <h1>Invoice #{{.Bill.ID}}</h1>
    <p><strong>Date:</strong> {{.Bill.Date.Format "02 Jan 2006 15:04"}}</p>
    <table>
      <thead><tr><th>Product</th><th>Qty</th><th>Price</th></tr></thead>
      <tbody>
        {{range .Bill.Items}}<tr><td>{{.Name}}</td><td>{{.Quantity}}</td><td>{{money .Price}}</td></tr>
        {{end}}
      </tbody>
    </table>
    <p><strong>Subtotal:</strong> {{money .Bill.Subtotal}}</p>
    <p><strong>GST ({{.Bill.Gst}}%):</strong> {{money .GstAmount}}</p>
    <p><strong>Discount ({{.Bill.Discount}}%):</strong> {{money .DiscountAmount}}</p>
    <div class="total">Total: {{money .Bill.Total}}</div>
    <button class="print-btn" onclick="window.print()">Print this Invoice</button>
  </body>
</html>
`))

// HTML writes a printable invoice page for the bill.
func HTML(w io.Writer, bill *model.Bill) error {
	return invoicePage.Execute(w, invoiceView{
		Bill:           bill,
		GstAmount:      invoice.GstAmount(bill.Subtotal, bill.Gst),
		DiscountAmount: invoice.DiscountAmount(bill.Subtotal, bill.Discount),
	})
}
