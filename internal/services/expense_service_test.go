package services

import (
	"context"
	"testing"
	"time"

	"tailor-backend/internal/models"
)

type fakeExpenseOps struct {
	daily       *models.DailyExpense
	workerTotal float64

	inserted []*models.WorkerExpense
	setTo    *float64
}

func (f *fakeExpenseOps) InsertWorkerExpense(_ context.Context, e *models.WorkerExpense) error {
	f.inserted = append(f.inserted, e)
	return nil
}

func (f *fakeExpenseOps) FirstDailyExpenseByDate(_ context.Context, _ time.Time) (*models.DailyExpense, error) {
	return f.daily, nil
}

func (f *fakeExpenseOps) SumWorkerExpensesByDate(_ context.Context, _ time.Time) (float64, error) {
	return f.workerTotal, nil
}

func (f *fakeExpenseOps) SetDailyExpenseTotalPay(_ context.Context, id int, totalPay float64) error {
	f.setTo = &totalPay
	return nil
}

func TestRecomputeTotalPay_SumsDirectCostsAndWorkerExpenses(t *testing.T) {
	material, misc, chai := 200.0, 50.0, 20.0
	ops := &fakeExpenseOps{
		daily: &models.DailyExpense{
			ID:                1,
			Date:              day("2024-05-01"),
			MaterialCost:      &material,
			MiscellaneousCost: &misc,
			ChaiPaniCost:      &chai,
		},
		workerTotal: 500,
	}

	if err := RecomputeTotalPay(context.Background(), ops, day("2024-05-01")); err != nil {
		t.Fatalf("recompute error: %v", err)
	}

	if ops.setTo == nil {
		t.Fatal("Total_Pay was not written")
	}
	if *ops.setTo != 770 {
		t.Fatalf("Total_Pay = %v, want 770", *ops.setTo)
	}
}

func TestRecomputeTotalPay_TreatsMissingCostsAsZero(t *testing.T) {
	ops := &fakeExpenseOps{
		daily:       &models.DailyExpense{ID: 1, Date: day("2024-05-01")},
		workerTotal: 300,
	}

	if err := RecomputeTotalPay(context.Background(), ops, day("2024-05-01")); err != nil {
		t.Fatalf("recompute error: %v", err)
	}
	if ops.setTo == nil || *ops.setTo != 300 {
		t.Fatalf("Total_Pay = %v, want 300", ops.setTo)
	}
}

func TestRecomputeTotalPay_NoDailyRowIsSilentNoop(t *testing.T) {
	ops := &fakeExpenseOps{daily: nil, workerTotal: 500}

	if err := RecomputeTotalPay(context.Background(), ops, day("2024-05-01")); err != nil {
		t.Fatalf("recompute must not fail without a daily row: %v", err)
	}
	if ops.setTo != nil {
		t.Fatalf("Total_Pay must stay untouched without a daily row, got %v", *ops.setTo)
	}
}

func TestAddWorkerExpense_RejectsBadPayloads(t *testing.T) {
	svc := NewExpenseService(nil, nil, nil, nil)

	cases := []struct {
		name string
		req  models.CreateWorkerExpenseRequest
	}{
		{"missing name", models.CreateWorkerExpenseRequest{Date: "2024-05-01", AmtPaid: 100}},
		{"negative amount", models.CreateWorkerExpenseRequest{Name: "Ramesh", Date: "2024-05-01", AmtPaid: -5}},
		{"bad date", models.CreateWorkerExpenseRequest{Name: "Ramesh", Date: "May 1", AmtPaid: 100}},
	}
	for _, tc := range cases {
		req := tc.req
		_, err := svc.AddWorkerExpense(context.Background(), &req)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if _, ok := err.(*ValidationError); !ok {
			t.Fatalf("%s: expected *ValidationError, got %T", tc.name, err)
		}
	}
}

func TestAddDailyExpense_RequiresTotalPay(t *testing.T) {
	svc := NewExpenseService(nil, nil, nil, nil)

	_, err := svc.AddDailyExpense(context.Background(), &models.CreateDailyExpenseRequest{Date: "2024-05-01"})
	if err == nil {
		t.Fatal("expected validation error for missing total_pay")
	}
}
