package pdf

import (
	"bytes"
	"testing"
	"time"

	"tailor-backend/internal/models"
)

func TestRenderBill_ProducesPDF(t *testing.T) {
	bill := &models.Bill{
		ID:            1,
		CustomerName:  "Anil Kumar",
		MobileNumber:  "9876543210",
		DateIssue:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		DeliveryDate:  time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		SuitQty:       1,
		PantQty:       2,
		TotalQty:      3,
		TotalAmt:      4500,
		PaymentMode:   "Cash",
		PaymentStatus: "Unpaid",
		PaymentAmount: 1000,
	}

	data, err := RenderBill(bill)
	if err != nil {
		t.Fatalf("RenderBill error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("RenderBill returned empty output")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", data[:8])
	}
}
