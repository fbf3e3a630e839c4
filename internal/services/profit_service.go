package services

import (
	"context"
	"fmt"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"
)

// ProfitStore answers the three profit totals, optionally restricted to one
// calendar date. A nil date means all time.
type ProfitStore interface {
	// RevenueTotal sums total_amt over orders whose payment status equals
	// "paid" case-insensitively, filtered by the calendar date of the
	// order's last update.
	RevenueTotal(ctx context.Context, date *time.Time) (float64, error)
	// DailyExpenseTotal sums material, miscellaneous, and chai pani costs,
	// nulls as zero.
	DailyExpenseTotal(ctx context.Context, date *time.Time) (float64, error)
	WorkerExpenseTotal(ctx context.Context, date *time.Time) (float64, error)
}

type ProfitService struct {
	store ProfitStore
}

func NewProfitService(store ProfitStore) *ProfitService {
	return &ProfitService{store: store}
}

// CalculateProfit builds the revenue/expense/profit summary. dateFilter is an
// optional YYYY-MM-DD calendar date; empty means all time.
func (s *ProfitService) CalculateProfit(ctx context.Context, dateFilter string) (*models.ProfitReport, error) {
	var date *time.Time
	label := "All Time"
	if dateFilter != "" {
		parsed, err := timeutil.ParseDate(dateFilter)
		if err != nil {
			return nil, validationf("date must be a YYYY-MM-DD date")
		}
		date = &parsed
		label = dateFilter
	}

	revenue, err := s.store.RevenueTotal(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	daily, err := s.store.DailyExpenseTotal(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("sum daily expenses: %w", err)
	}
	worker, err := s.store.WorkerExpenseTotal(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("sum worker expenses: %w", err)
	}

	return &models.ProfitReport{
		Date:           label,
		TotalRevenue:   round2(revenue),
		DailyExpenses:  round2(daily),
		WorkerExpenses: round2(worker),
		NetProfit:      round2(revenue - (daily + worker)),
	}, nil
}
