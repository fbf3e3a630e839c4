package services

import (
	"context"
	"testing"
	"time"

	"tailor-backend/internal/models"
)

// fakeOrderStore is an in-memory OrderReconcilerStore. Rows keep insertion
// order, matching the persisted-order fetch the reconciler relies on.
type fakeOrderStore struct {
	nextID  int
	orders  []*models.Order
	updates int
	inserts int
	deletes int
}

func (f *fakeOrderStore) OrdersForGarment(_ context.Context, billID int, garmentType string) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range f.orders {
		if o.BillID == billID && o.GarmentType == garmentType {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrderStore) UpdateOrderShared(_ context.Context, o *models.Order) error {
	f.updates++
	for i, existing := range f.orders {
		if existing.ID == o.ID {
			f.orders[i] = o
			return nil
		}
	}
	return nil
}

func (f *fakeOrderStore) InsertOrder(_ context.Context, o *models.Order) error {
	f.inserts++
	f.nextID++
	o.ID = f.nextID
	f.orders = append(f.orders, o)
	return nil
}

func (f *fakeOrderStore) DeleteOrder(_ context.Context, id int) error {
	f.deletes++
	for i, o := range f.orders {
		if o.ID == id {
			f.orders = append(f.orders[:i], f.orders[i+1:]...)
			return nil
		}
	}
	return nil
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func sharedFields() models.OrderShared {
	bn := "B-101"
	return models.OrderShared{
		OrderDate:     day("2024-05-01"),
		DueDate:       day("2024-05-10"),
		TotalAmt:      1500,
		PaymentMode:   "Cash",
		PaymentStatus: "Unpaid",
		PaymentAmount: 500,
		BillNumber:    &bn,
	}
}

func TestReconcileGarment_CreatesRequestedRows(t *testing.T) {
	store := &fakeOrderStore{}

	err := ReconcileGarment(context.Background(), store, 1, models.GarmentPant, 3, sharedFields())
	if err != nil {
		t.Fatalf("reconcile error: %v", err)
	}

	if len(store.orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(store.orders))
	}
	for _, o := range store.orders {
		if o.Status != models.StatusPending {
			t.Fatalf("order %d status = %q, want Pending", o.ID, o.Status)
		}
		if o.GarmentType != models.GarmentPant || o.BillID != 1 {
			t.Fatalf("order %d has wrong garment/bill: %+v", o.ID, o)
		}
		if o.BillNumber == nil || *o.BillNumber != "B-101" {
			t.Fatalf("order %d missing bill number", o.ID)
		}
	}
}

func TestReconcileGarment_ShrinksToRequestedQty(t *testing.T) {
	store := &fakeOrderStore{}
	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentPant, 3, sharedFields()); err != nil {
		t.Fatalf("initial reconcile error: %v", err)
	}
	firstID := store.orders[0].ID

	shared := sharedFields()
	shared.DueDate = day("2024-05-20")
	shared.TotalAmt = 900
	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentPant, 1, shared); err != nil {
		t.Fatalf("shrink reconcile error: %v", err)
	}

	if len(store.orders) != 1 {
		t.Fatalf("expected 1 surviving order, got %d", len(store.orders))
	}
	survivor := store.orders[0]
	if survivor.ID != firstID {
		t.Fatalf("expected first row %d to survive, got %d", firstID, survivor.ID)
	}
	if !survivor.DueDate.Equal(day("2024-05-20")) || survivor.TotalAmt != 900 {
		t.Fatalf("survivor did not pick up new shared fields: %+v", survivor)
	}
	if store.deletes != 2 {
		t.Fatalf("expected 2 deletes, got %d", store.deletes)
	}
}

func TestReconcileGarment_ResetsStatusOnRetainedRows(t *testing.T) {
	store := &fakeOrderStore{}
	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentSuit, 2, sharedFields()); err != nil {
		t.Fatalf("initial reconcile error: %v", err)
	}
	store.orders[0].Status = "Completed"
	store.orders[1].Status = "In Progress"

	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentSuit, 2, sharedFields()); err != nil {
		t.Fatalf("re-reconcile error: %v", err)
	}

	for _, o := range store.orders {
		if o.Status != models.StatusPending {
			t.Fatalf("order %d status = %q, want Pending after resubmission", o.ID, o.Status)
		}
	}
	if store.inserts != 2 {
		t.Fatalf("resubmission should not insert, total inserts = %d", store.inserts)
	}
}

func TestReconcileGarment_GrowsShortfall(t *testing.T) {
	store := &fakeOrderStore{}
	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentShirt, 1, sharedFields()); err != nil {
		t.Fatalf("initial reconcile error: %v", err)
	}
	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentShirt, 4, sharedFields()); err != nil {
		t.Fatalf("grow reconcile error: %v", err)
	}

	if len(store.orders) != 4 {
		t.Fatalf("expected 4 orders after growth, got %d", len(store.orders))
	}
	if store.updates != 2 {
		t.Fatalf("expected 2 updates (1 initial reuse + 1 retained), got %d", store.updates)
	}
}

func TestReconcileBill_TouchesOnlyRequestedGarments(t *testing.T) {
	store := &fakeOrderStore{}
	bill := &models.Bill{ID: 7, PantQty: 2, ShirtQty: 1}

	if err := ReconcileBill(context.Background(), store, bill, sharedFields()); err != nil {
		t.Fatalf("reconcile bill error: %v", err)
	}

	counts := map[string]int{}
	for _, o := range store.orders {
		counts[o.GarmentType]++
	}
	if counts[models.GarmentPant] != 2 || counts[models.GarmentShirt] != 1 {
		t.Fatalf("unexpected garment counts: %v", counts)
	}
	if counts[models.GarmentSuit] != 0 || counts[models.GarmentSafari] != 0 || counts[models.GarmentSadri] != 0 {
		t.Fatalf("zero-quantity garments must not create orders: %v", counts)
	}
}

func TestReconcileGarment_IsolatedPerBill(t *testing.T) {
	store := &fakeOrderStore{}
	if err := ReconcileGarment(context.Background(), store, 1, models.GarmentPant, 2, sharedFields()); err != nil {
		t.Fatalf("bill 1 reconcile error: %v", err)
	}
	if err := ReconcileGarment(context.Background(), store, 2, models.GarmentPant, 1, sharedFields()); err != nil {
		t.Fatalf("bill 2 reconcile error: %v", err)
	}

	if len(store.orders) != 3 {
		t.Fatalf("expected 3 orders across bills, got %d", len(store.orders))
	}
	if store.deletes != 0 {
		t.Fatalf("reconciling bill 2 must not delete bill 1 rows, deletes = %d", store.deletes)
	}
}
