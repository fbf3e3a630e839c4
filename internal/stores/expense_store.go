package stores

import (
	"context"
	"fmt"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ExpenseStore struct {
	pool *pgxpool.Pool
}

func NewExpenseStore(pool *pgxpool.Pool) *ExpenseStore {
	return &ExpenseStore{pool: pool}
}

var _ services.ExpenseStore = (*ExpenseStore)(nil)

// WithinTx scopes one worker-expense insert plus its Total_Pay rollup to a
// single transaction.
func (s *ExpenseStore) WithinTx(ctx context.Context, fn func(ops services.ExpenseOps) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ops := &expenseOps{
		workerExpenses: repositories.NewWorkerExpenseRepository(s.pool).WithTx(tx),
		dailyExpenses:  repositories.NewDailyExpenseRepository(s.pool).WithTx(tx),
	}

	if err := fn(ops); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type expenseOps struct {
	workerExpenses *repositories.WorkerExpenseRepository
	dailyExpenses  *repositories.DailyExpenseRepository
}

var _ services.ExpenseOps = (*expenseOps)(nil)

func (o *expenseOps) InsertWorkerExpense(ctx context.Context, e *models.WorkerExpense) error {
	return o.workerExpenses.Create(ctx, e)
}

func (o *expenseOps) FirstDailyExpenseByDate(ctx context.Context, date time.Time) (*models.DailyExpense, error) {
	return o.dailyExpenses.GetByDate(ctx, date)
}

func (o *expenseOps) SumWorkerExpensesByDate(ctx context.Context, date time.Time) (float64, error) {
	return o.workerExpenses.SumByDate(ctx, date)
}

func (o *expenseOps) SetDailyExpenseTotalPay(ctx context.Context, id int, totalPay float64) error {
	return o.dailyExpenses.UpdateTotalPay(ctx, id, totalPay)
}
