package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/timeutil"
)

// ExpenseOps is the persistence surface for one worker-expense insert and its
// daily rollup, bound to a single transaction.
type ExpenseOps interface {
	InsertWorkerExpense(ctx context.Context, e *models.WorkerExpense) error
	// FirstDailyExpenseByDate returns the date's daily expense row, or nil
	// when the date has none.
	FirstDailyExpenseByDate(ctx context.Context, date time.Time) (*models.DailyExpense, error)
	SumWorkerExpensesByDate(ctx context.Context, date time.Time) (float64, error)
	SetDailyExpenseTotalPay(ctx context.Context, id int, totalPay float64) error
}

// ExpenseStore opens a transaction scope around a worker-expense insert.
type ExpenseStore interface {
	WithinTx(ctx context.Context, fn func(ops ExpenseOps) error) error
}

type ExpenseService struct {
	store          ExpenseStore
	workerRepo     *repositories.WorkerRepository
	workerExpenses *repositories.WorkerExpenseRepository
	dailyExpenses  *repositories.DailyExpenseRepository
}

func NewExpenseService(
	store ExpenseStore,
	workerRepo *repositories.WorkerRepository,
	workerExpenses *repositories.WorkerExpenseRepository,
	dailyExpenses *repositories.DailyExpenseRepository,
) *ExpenseService {
	return &ExpenseService{
		store:          store,
		workerRepo:     workerRepo,
		workerExpenses: workerExpenses,
		dailyExpenses:  dailyExpenses,
	}
}

// AddWorkerExpense records a payment to a worker and refreshes that date's
// Total_Pay rollup, as one transaction. When the date has no daily expense
// row the rollup silently does nothing; no row is created on its behalf.
func (s *ExpenseService) AddWorkerExpense(ctx context.Context, req *models.CreateWorkerExpenseRequest) (*models.WorkerExpense, error) {
	if req.Name == "" {
		return nil, validationf("name is required")
	}
	if req.AmtPaid < 0 {
		return nil, validationf("Amt_Paid cannot be negative")
	}
	date, err := parseRequestDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	worker, err := s.workerRepo.GetByID(ctx, req.WorkerID)
	if err != nil {
		return nil, fmt.Errorf("fetch worker %d: %w", req.WorkerID, err)
	}
	if worker == nil {
		return nil, ErrNotFound
	}

	expense := &models.WorkerExpense{
		Date:     date,
		Name:     req.Name,
		AmtPaid:  req.AmtPaid,
		WorkerID: &worker.ID,
	}

	err = s.store.WithinTx(ctx, func(ops ExpenseOps) error {
		if err := ops.InsertWorkerExpense(ctx, expense); err != nil {
			return fmt.Errorf("insert worker expense: %w", err)
		}
		return RecomputeTotalPay(ctx, ops, date)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Expenses] Worker expense %.2f for %s on %s", expense.AmtPaid, expense.Name, timeutil.FormatDate(date))
	return expense, nil
}

// RecomputeTotalPay refreshes the date's persisted Total_Pay: direct costs
// plus every worker expense recorded for that date, across all workers. A
// date without a daily expense row is left alone.
func RecomputeTotalPay(ctx context.Context, ops ExpenseOps, date time.Time) error {
	daily, err := ops.FirstDailyExpenseByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("fetch daily expenses for %s: %w", timeutil.FormatDate(date), err)
	}
	if daily == nil {
		return nil
	}

	workerTotal, err := ops.SumWorkerExpensesByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("sum worker expenses for %s: %w", timeutil.FormatDate(date), err)
	}

	totalPay := daily.CashCost() + workerTotal
	if err := ops.SetDailyExpenseTotalPay(ctx, daily.ID, totalPay); err != nil {
		return fmt.Errorf("update total pay for %s: %w", timeutil.FormatDate(date), err)
	}
	return nil
}

func (s *ExpenseService) ListWorkerExpenses(ctx context.Context) ([]models.WorkerExpenseView, error) {
	expenses, err := s.workerExpenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list worker expenses: %w", err)
	}

	views := make([]models.WorkerExpenseView, 0, len(expenses))
	for _, e := range expenses {
		views = append(views, models.WorkerExpenseView{
			ID:       e.ID,
			Date:     timeutil.FormatDate(e.Date),
			Name:     e.Name,
			AmtPaid:  e.AmtPaid,
			WorkerID: e.WorkerID,
		})
	}
	return views, nil
}

// AddDailyExpense records the shop's expense row for a date. Total_Pay is
// required up front; it is refreshed later as worker expenses land on the
// date.
func (s *ExpenseService) AddDailyExpense(ctx context.Context, req *models.CreateDailyExpenseRequest) (*models.DailyExpense, error) {
	if req.TotalPay == nil {
		return nil, validationf("total_pay is required")
	}
	date, err := parseRequestDate("date", req.Date)
	if err != nil {
		return nil, err
	}

	expense := &models.DailyExpense{
		Date:              date,
		MaterialCost:      req.MaterialCost,
		MaterialType:      req.MaterialType,
		MiscellaneousCost: req.MiscellaneousCost,
		MiscellaneousItem: req.MiscellaneousItem,
		ChaiPaniCost:      req.ChaiPaniCost,
		TotalPay:          req.TotalPay,
	}

	if err := s.dailyExpenses.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("insert daily expense: %w", err)
	}

	log.Printf("[Expenses] Daily expense recorded for %s", timeutil.FormatDate(date))
	return expense, nil
}

func (s *ExpenseService) ListDailyExpenses(ctx context.Context) ([]models.DailyExpenseView, error) {
	expenses, err := s.dailyExpenses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daily expenses: %w", err)
	}

	views := make([]models.DailyExpenseView, 0, len(expenses))
	for _, d := range expenses {
		views = append(views, models.DailyExpenseView{
			ID:                d.ID,
			Date:              timeutil.FormatDate(d.Date),
			MaterialCost:      d.MaterialCost,
			MaterialType:      d.MaterialType,
			MiscellaneousCost: d.MiscellaneousCost,
			MiscellaneousItem: d.MiscellaneousItem,
			ChaiPaniCost:      d.ChaiPaniCost,
			TotalPay:          d.TotalPay,
		})
	}
	return views, nil
}
