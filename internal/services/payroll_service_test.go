package services

import (
	"context"
	"testing"
	"time"

	"tailor-backend/internal/models"
)

type fakePayrollStore struct {
	workers  []*models.Worker
	orders   map[int][]*models.Order
	expenses map[int][]*models.WorkerExpense
}

func (f *fakePayrollStore) Worker(_ context.Context, id int) (*models.Worker, error) {
	for _, w := range f.workers {
		if w.ID == id {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakePayrollStore) Workers(_ context.Context) ([]*models.Worker, error) {
	return f.workers, nil
}

func (f *fakePayrollStore) OrdersForWorker(_ context.Context, workerID int) ([]*models.Order, error) {
	return f.orders[workerID], nil
}

func (f *fakePayrollStore) ExpensesForWorker(_ context.Context, workerID int) ([]*models.WorkerExpense, error) {
	return f.expenses[workerID], nil
}

func payOf(v float64) *float64 { return &v }

func TestWorkerWeeklyPay_WednesdayOrderMondayExpenseSplitWeeks(t *testing.T) {
	// 2024-05-01 is a Wednesday; 2024-05-06 is the following Monday. Under
	// Sunday-starting weeks they land in different buckets.
	store := &fakePayrollStore{
		workers: []*models.Worker{{ID: 1, Name: "Ramesh"}},
		orders: map[int][]*models.Order{
			1: {{ID: 10, GarmentType: models.GarmentSuit, OrderDate: day("2024-05-01"), WorkPay: payOf(400)}},
		},
		expenses: map[int][]*models.WorkerExpense{
			1: {{ID: 1, Date: day("2024-05-06"), Name: "Ramesh", AmtPaid: 150}},
		},
	}

	report, err := NewPayrollService(store).WorkerWeeklyPay(context.Background(), 1)
	if err != nil {
		t.Fatalf("weekly pay error: %v", err)
	}

	if len(report.WeeklyData) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d", len(report.WeeklyData))
	}

	// Newest week first: the expense week, then the order week.
	expenseWeek := report.WeeklyData[0]
	orderWeek := report.WeeklyData[1]

	if expenseWeek.WeekPeriod != "2024-05-05 to 2024-05-11" {
		t.Fatalf("expense bucket period = %q", expenseWeek.WeekPeriod)
	}
	if expenseWeek.Remaining != -150 || expenseWeek.OrderCount != 0 {
		t.Fatalf("expense bucket = %+v, want remaining -150 with no orders", expenseWeek)
	}

	if orderWeek.WeekPeriod != "2024-04-28 to 2024-05-04" {
		t.Fatalf("order bucket period = %q", orderWeek.WeekPeriod)
	}
	if orderWeek.Remaining != 400 || orderWeek.TotalWorkPay != 400 || orderWeek.OrderCount != 1 {
		t.Fatalf("order bucket = %+v, want work pay 400", orderWeek)
	}

	if report.TotalSummary.TotalRemaining != 250 {
		t.Fatalf("grand remaining = %v, want 250", report.TotalSummary.TotalRemaining)
	}
}

func TestWorkerWeeklyPay_BucketsSumToGrandTotals(t *testing.T) {
	store := &fakePayrollStore{
		workers: []*models.Worker{{ID: 1, Name: "Ramesh"}},
		orders: map[int][]*models.Order{
			1: {
				{ID: 1, OrderDate: day("2024-05-01"), WorkPay: payOf(400)},
				{ID: 2, OrderDate: day("2024-05-02"), WorkPay: payOf(250.555)},
				{ID: 3, OrderDate: day("2024-05-08"), WorkPay: nil}, // null work pay counts 0
			},
		},
		expenses: map[int][]*models.WorkerExpense{
			1: {
				{ID: 1, Date: day("2024-05-03"), AmtPaid: 100},
				{ID: 2, Date: day("2024-05-09"), AmtPaid: 200},
			},
		},
	}

	report, err := NewPayrollService(store).WorkerWeeklyPay(context.Background(), 1)
	if err != nil {
		t.Fatalf("weekly pay error: %v", err)
	}

	var orders int
	var workPay, paid float64
	for _, bucket := range report.WeeklyData {
		orders += bucket.OrderCount
		workPay += bucket.TotalWorkPay
		paid += bucket.TotalPaid
	}
	if orders != report.TotalSummary.TotalOrders {
		t.Fatalf("bucket order counts %d != grand total %d", orders, report.TotalSummary.TotalOrders)
	}
	if report.TotalSummary.TotalWorkPay != 650.56 {
		t.Fatalf("grand work pay = %v, want 650.56 (2-decimal rounding)", report.TotalSummary.TotalWorkPay)
	}
	if paid != report.TotalSummary.TotalPaid {
		t.Fatalf("bucket paid %v != grand total %v", paid, report.TotalSummary.TotalPaid)
	}
}

func TestWorkerWeeklyPay_UnknownWorker(t *testing.T) {
	store := &fakePayrollStore{}
	_, err := NewPayrollService(store).WorkerWeeklyPay(context.Background(), 99)
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAllWorkersWeeklyPay_MondayConventionSplitsSundayFromMonday(t *testing.T) {
	// 2024-05-05 is a Sunday, 2024-05-06 the next Monday. The single-worker
	// view puts them in one Sunday-starting week; the all-workers view must
	// split them, because its weeks start on Monday.
	store := &fakePayrollStore{
		workers: []*models.Worker{{ID: 1, Name: "Suresh"}},
		orders: map[int][]*models.Order{
			1: {{ID: 1, OrderDate: day("2024-05-05"), WorkPay: payOf(300)}},
		},
		expenses: map[int][]*models.WorkerExpense{
			1: {{ID: 1, Date: day("2024-05-06"), AmtPaid: 120}},
		},
	}
	svc := NewPayrollService(store)

	single, err := svc.WorkerWeeklyPay(context.Background(), 1)
	if err != nil {
		t.Fatalf("single-worker report error: %v", err)
	}
	if len(single.WeeklyData) != 1 {
		t.Fatalf("Sunday convention: expected 1 bucket, got %d", len(single.WeeklyData))
	}

	all, err := svc.AllWorkersWeeklyPay(context.Background())
	if err != nil {
		t.Fatalf("all-workers report error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 worker entry, got %d", len(all))
	}
	if len(all[0].WeeklyData) != 2 {
		t.Fatalf("Monday convention: expected 2 buckets, got %d", len(all[0].WeeklyData))
	}

	newest := all[0].WeeklyData[0]
	if newest.WeekStart != "2024-05-06" || newest.WeekEnd != "2024-05-12" {
		t.Fatalf("newest bucket %q..%q, want the Monday week", newest.WeekStart, newest.WeekEnd)
	}
	if newest.RemainingPay != -120 {
		t.Fatalf("newest bucket remaining = %v, want -120", newest.RemainingPay)
	}
}

func TestRollingPay_CountsOnlyLastSevenDays(t *testing.T) {
	now := time.Now()
	rate := 200.0
	store := &fakePayrollStore{
		workers: []*models.Worker{{ID: 1, Name: "Mahesh", Rate: &rate}},
		orders: map[int][]*models.Order{
			1: {
				{ID: 1, OrderDate: now.AddDate(0, 0, -2)},
				{ID: 2, OrderDate: now.AddDate(0, 0, -30)},
			},
		},
		expenses: map[int][]*models.WorkerExpense{
			1: {
				{ID: 1, Date: now.AddDate(0, 0, -1), AmtPaid: 50},
				{ID: 2, Date: now.AddDate(0, 0, -20), AmtPaid: 999},
			},
		},
	}

	summary, err := NewPayrollService(store).RollingPay(context.Background(), 1)
	if err != nil {
		t.Fatalf("rolling pay error: %v", err)
	}

	if summary.TotalWorkerPay != 200 {
		t.Fatalf("total worker pay = %v, want 200 (1 order in window x rate)", summary.TotalWorkerPay)
	}
	if summary.TotalAmtPaid != 50 {
		t.Fatalf("amount paid = %v, want 50", summary.TotalAmtPaid)
	}
	if summary.RemainingPay != 150 {
		t.Fatalf("remaining = %v, want 150", summary.RemainingPay)
	}
}
