// Package pdf renders printable bill documents.
package pdf

import (
	"bytes"
	"fmt"

	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// RenderBill produces the printable A4 bill handed to the customer.
func RenderBill(bill *models.Bill) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Tailoring Bill", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("Generated: %s", timeutil.Now().Format(timeutil.DisplayLayout)), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Customer Info Box
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Customer Information", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(95, 7, fmt.Sprintf("Name: %s", bill.CustomerName), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Mobile: %s", bill.MobileNumber), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Bill Date: %s", timeutil.FormatDate(bill.DateIssue)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, fmt.Sprintf("Delivery: %s", timeutil.FormatDate(bill.DeliveryDate)), "RB", 1, "L", false, 0, "")
	pdf.Ln(5)

	// Garment table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Garments", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(130, 7, "Garment", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, "Quantity", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, gq := range bill.GarmentQuantities() {
		if gq.Qty == 0 {
			continue
		}
		pdf.CellFormat(130, 6, gq.Garment, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, fmt.Sprintf("%d", gq.Qty), "1", 1, "C", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 6, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, fmt.Sprintf("%d", bill.TotalQty), "1", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Payment summary
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(190, 8, "Payment", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(63, 8, fmt.Sprintf("Total: Rs. %.2f", bill.TotalAmt), "1", 0, "C", false, 0, "")
	pdf.CellFormat(63, 8, fmt.Sprintf("Advance: Rs. %.2f", bill.PaymentAmount), "1", 0, "C", false, 0, "")
	pdf.CellFormat(64, 8, fmt.Sprintf("Mode: %s", bill.PaymentMode), "1", 1, "C", false, 0, "")

	balance := bill.TotalAmt - bill.PaymentAmount
	if balance > 0 {
		pdf.SetFillColor(255, 200, 200)
	} else {
		pdf.SetFillColor(200, 255, 200)
	}
	pdf.SetFont("Arial", "B", 14)
	balanceText := fmt.Sprintf("Balance Due: Rs. %.2f", balance)
	if balance <= 0 {
		balanceText = "FULLY PAID"
	}
	pdf.CellFormat(190, 10, balanceText, "1", 1, "C", true, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 9)
	pdf.CellFormat(190, 6, fmt.Sprintf("Due for delivery on %s. Please bring this bill when collecting.", timeutil.FormatDate(bill.DueDate)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render bill pdf: %w", err)
	}
	return buf.Bytes(), nil
}
