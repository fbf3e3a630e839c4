package services

import (
	"context"
	"testing"
	"time"
)

type fakeProfitStore struct {
	revenue float64
	daily   float64
	worker  float64

	lastDate *time.Time
}

func (f *fakeProfitStore) RevenueTotal(_ context.Context, date *time.Time) (float64, error) {
	f.lastDate = date
	return f.revenue, nil
}

func (f *fakeProfitStore) DailyExpenseTotal(_ context.Context, date *time.Time) (float64, error) {
	return f.daily, nil
}

func (f *fakeProfitStore) WorkerExpenseTotal(_ context.Context, date *time.Time) (float64, error) {
	return f.worker, nil
}

func TestCalculateProfit_AllTime(t *testing.T) {
	store := &fakeProfitStore{revenue: 10000, daily: 1200.456, worker: 800.001}

	report, err := NewProfitService(store).CalculateProfit(context.Background(), "")
	if err != nil {
		t.Fatalf("profit error: %v", err)
	}

	if report.Date != "All Time" {
		t.Fatalf("date label = %q, want All Time", report.Date)
	}
	if store.lastDate != nil {
		t.Fatalf("missing filter must query all rows, got date %v", store.lastDate)
	}
	if report.DailyExpenses != 1200.46 {
		t.Fatalf("daily expenses = %v, want 1200.46", report.DailyExpenses)
	}
	if report.WorkerExpenses != 800 {
		t.Fatalf("worker expenses = %v, want 800", report.WorkerExpenses)
	}
	if report.NetProfit != 7999.54 {
		t.Fatalf("net profit = %v, want 7999.54", report.NetProfit)
	}
}

func TestCalculateProfit_SingleDateFilter(t *testing.T) {
	store := &fakeProfitStore{revenue: 500, daily: 100, worker: 50}

	report, err := NewProfitService(store).CalculateProfit(context.Background(), "2024-05-01")
	if err != nil {
		t.Fatalf("profit error: %v", err)
	}

	if report.Date != "2024-05-01" {
		t.Fatalf("date label = %q, want the filter date", report.Date)
	}
	if store.lastDate == nil {
		t.Fatal("date filter was not passed to the store")
	}
	if report.NetProfit != 350 {
		t.Fatalf("net profit = %v, want 350", report.NetProfit)
	}
}

func TestCalculateProfit_RejectsBadDate(t *testing.T) {
	_, err := NewProfitService(&fakeProfitStore{}).CalculateProfit(context.Background(), "01-05-2024")
	if err == nil {
		t.Fatal("expected a validation error for a malformed date")
	}
	if _, ok := err.(*ValidationError); !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}
