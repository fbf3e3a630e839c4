package services

import (
	"context"
	"fmt"

	"tailor-backend/internal/models"
)

// OrderReconcilerStore is the persistence surface the reconciler mutates.
// The production implementation binds these to a single database transaction.
type OrderReconcilerStore interface {
	// OrdersForGarment returns a bill's order rows for one garment type in
	// persisted order.
	OrdersForGarment(ctx context.Context, billID int, garmentType string) ([]*models.Order, error)
	UpdateOrderShared(ctx context.Context, o *models.Order) error
	InsertOrder(ctx context.Context, o *models.Order) error
	DeleteOrder(ctx context.Context, id int) error
}

// ReconcileGarment converges the order rows for (billID, garmentType) to
// exactly qty rows. The first qty existing rows are retained with the shared
// fields overwritten and status reset to Pending, shortfall rows are created,
// and the surplus tail is deleted along with its worker assignments.
//
// The status reset applies to in-progress rows too; the order screens rely on
// a bill re-submission putting every surviving garment back in the queue.
func ReconcileGarment(ctx context.Context, store OrderReconcilerStore, billID int, garmentType string, qty int, shared models.OrderShared) error {
	existing, err := store.OrdersForGarment(ctx, billID, garmentType)
	if err != nil {
		return fmt.Errorf("fetch %s orders for bill %d: %w", garmentType, billID, err)
	}

	keep := len(existing)
	if qty < keep {
		keep = qty
	}

	for i := 0; i < keep; i++ {
		o := existing[i]
		o.Status = models.StatusPending
		o.OrderDate = shared.OrderDate
		o.DueDate = shared.DueDate
		o.TotalAmt = shared.TotalAmt
		o.PaymentMode = shared.PaymentMode
		o.PaymentStatus = shared.PaymentStatus
		o.PaymentAmount = shared.PaymentAmount
		if err := store.UpdateOrderShared(ctx, o); err != nil {
			return fmt.Errorf("update order %d: %w", o.ID, err)
		}
	}

	for i := len(existing); i < qty; i++ {
		o := &models.Order{
			GarmentType:   garmentType,
			Status:        models.StatusPending,
			OrderDate:     shared.OrderDate,
			DueDate:       shared.DueDate,
			TotalAmt:      shared.TotalAmt,
			PaymentMode:   shared.PaymentMode,
			PaymentStatus: shared.PaymentStatus,
			PaymentAmount: shared.PaymentAmount,
			BillNumber:    shared.BillNumber,
			BillID:        billID,
		}
		if err := store.InsertOrder(ctx, o); err != nil {
			return fmt.Errorf("insert %s order for bill %d: %w", garmentType, billID, err)
		}
	}

	for i := qty; i < len(existing); i++ {
		if err := store.DeleteOrder(ctx, existing[i].ID); err != nil {
			return fmt.Errorf("delete order %d: %w", existing[i].ID, err)
		}
	}

	return nil
}

// ReconcileBill runs ReconcileGarment for every garment type the bill
// requests with a quantity above zero, in the bill's fixed garment order.
func ReconcileBill(ctx context.Context, store OrderReconcilerStore, bill *models.Bill, shared models.OrderShared) error {
	for _, gq := range bill.GarmentQuantities() {
		if gq.Qty <= 0 {
			continue
		}
		if err := ReconcileGarment(ctx, store, bill.ID, gq.Garment, gq.Qty, shared); err != nil {
			return err
		}
	}
	return nil
}
