package stores

import (
	"context"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ReportingStore backs the pay and profit reports. The pay side reuses the
// repositories; the profit totals are single aggregate queries so the date
// filtering stays in SQL.
type ReportingStore struct {
	pool           *pgxpool.Pool
	workers        *repositories.WorkerRepository
	orders         *repositories.OrderRepository
	workerExpenses *repositories.WorkerExpenseRepository
}

func NewReportingStore(pool *pgxpool.Pool) *ReportingStore {
	return &ReportingStore{
		pool:           pool,
		workers:        repositories.NewWorkerRepository(pool),
		orders:         repositories.NewOrderRepository(pool),
		workerExpenses: repositories.NewWorkerExpenseRepository(pool),
	}
}

var (
	_ services.PayrollStore = (*ReportingStore)(nil)
	_ services.ProfitStore  = (*ReportingStore)(nil)
)

func (s *ReportingStore) Worker(ctx context.Context, id int) (*models.Worker, error) {
	return s.workers.GetByID(ctx, id)
}

func (s *ReportingStore) Workers(ctx context.Context) ([]*models.Worker, error) {
	return s.workers.List(ctx)
}

func (s *ReportingStore) OrdersForWorker(ctx context.Context, workerID int) ([]*models.Order, error) {
	return s.orders.ListByWorker(ctx, workerID)
}

func (s *ReportingStore) ExpensesForWorker(ctx context.Context, workerID int) ([]*models.WorkerExpense, error) {
	return s.workerExpenses.ListByWorker(ctx, workerID)
}

func (s *ReportingStore) RevenueTotal(ctx context.Context, date *time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(total_amt), 0)
		FROM orders
		WHERE LOWER(payment_status) = 'paid'
		  AND ($1::date IS NULL OR DATE(updated_at) = $1::date)
	`
	return s.sum(ctx, query, date)
}

func (s *ReportingStore) DailyExpenseTotal(ctx context.Context, date *time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(COALESCE(material_cost, 0) + COALESCE(miscellaneous_cost, 0) + COALESCE(chai_pani_cost, 0)), 0)
		FROM daily_expenses
		WHERE $1::date IS NULL OR date = $1::date
	`
	return s.sum(ctx, query, date)
}

func (s *ReportingStore) WorkerExpenseTotal(ctx context.Context, date *time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(amt_paid), 0)
		FROM worker_expenses
		WHERE $1::date IS NULL OR date = $1::date
	`
	return s.sum(ctx, query, date)
}

func (s *ReportingStore) sum(ctx context.Context, query string, date *time.Time) (float64, error) {
	var total float64
	if err := s.pool.QueryRow(ctx, query, date).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
