package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"

	"encore.app/billing/invoice"
	"encore.app/billing/model"
)

// Core PDF fonts are cp1252 only, so amounts carry an ASCII currency marker.
func pdfMoney(v float64) string {
	return fmt.Sprintf("Rs. %.2f", v)
}

// PDF writes the bill as a sequential PDF document.
func PDF(w io.Writer, bill *model.Bill) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 20)
	doc.CellFormat(0, 12, fmt.Sprintf("Invoice #%s", bill.ID), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 12)
	doc.CellFormat(0, 8, fmt.Sprintf("Date: %s", bill.Date.Format("02 Jan 2006 15:04")), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.CellFormat(0, 8, "Items:", "", 1, "L", false, 0, "")
	for _, item := range bill.Items {
		line := fmt.Sprintf("- %s x%d @ %s", item.Name, item.Quantity, pdfMoney(item.Price))
		doc.CellFormat(0, 7, line, "", 1, "L", false, 0, "")
	}
	doc.Ln(4)

	doc.CellFormat(0, 7, fmt.Sprintf("Subtotal: %s", pdfMoney(bill.Subtotal)), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("GST (%g%%): %s", bill.Gst, pdfMoney(invoice.GstAmount(bill.Subtotal, bill.Gst))), "", 1, "L", false, 0, "")
	doc.CellFormat(0, 7, fmt.Sprintf("Discount (%g%%): %s", bill.Discount, pdfMoney(invoice.DiscountAmount(bill.Subtotal, bill.Discount))), "", 1, "L", false, 0, "")
	doc.Ln(4)

	doc.SetFont("Helvetica", "B", 14)
	doc.CellFormat(0, 9, fmt.Sprintf("Total: %s", pdfMoney(bill.Total)), "", 1, "L", false, 0, "")

	return doc.Output(w)
}
