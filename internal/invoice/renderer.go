// Package invoice renders completed sales as printable PDF documents.
package invoice

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/smartinventory/pos-admin/internal/core/domain"
)

const (
	businessName = "Smart Inventory Billing"
	businessCity = "Bhubaneswar, Odisha"
	footerNote   = "Thank you for your purchase!"
)

// Filename returns the download name for a sale's invoice document.
func Filename(saleID int64) string {
	return fmt.Sprintf("invoice_%d.pdf", saleID)
}

// Renderer produces invoice PDFs. It is stateless and safe for concurrent use.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF bytes for one invoice.
func (r *Renderer) Render(inv domain.Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(0, 12, "INVOICE", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, businessName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, businessCity, "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(95, 6, fmt.Sprintf("Sale ID: %d", inv.SaleID), "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 6, "Date: "+inv.IssuedAt.Format("02 Jan 2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Line item table.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(90, 8, "Product", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 8, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 8, "Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, line := range inv.Lines {
		pdf.CellFormat(90, 7, line.ProductName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", line.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, line.UnitPrice.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, line.TotalPrice.StringFixed(2), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, inv.GrandTotal.StringFixed(2), "1", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, footerNote, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %d: %w", inv.SaleID, err)
	}
	return buf.Bytes(), nil
}
