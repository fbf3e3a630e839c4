package repositories

import (
	"context"
	"time"

	"tailor-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerExpenseRepository struct {
	DB Querier
}

func NewWorkerExpenseRepository(db *pgxpool.Pool) *WorkerExpenseRepository {
	return &WorkerExpenseRepository{DB: db}
}

func (r *WorkerExpenseRepository) WithTx(q Querier) *WorkerExpenseRepository {
	return &WorkerExpenseRepository{DB: q}
}

func (r *WorkerExpenseRepository) Create(ctx context.Context, e *models.WorkerExpense) error {
	query := `
		INSERT INTO worker_expenses (date, name, amt_paid, worker_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query, e.Date, e.Name, e.AmtPaid, e.WorkerID).Scan(&e.ID)
}

func (r *WorkerExpenseRepository) List(ctx context.Context) ([]*models.WorkerExpense, error) {
	query := `SELECT id, date, name, amt_paid, worker_id FROM worker_expenses ORDER BY date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.WorkerExpense
	for rows.Next() {
		e := &models.WorkerExpense{}
		if err := rows.Scan(&e.ID, &e.Date, &e.Name, &e.AmtPaid, &e.WorkerID); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// ListByWorker returns one worker's expenses, oldest first, for the weekly
// pay report.
func (r *WorkerExpenseRepository) ListByWorker(ctx context.Context, workerID int) ([]*models.WorkerExpense, error) {
	query := `SELECT id, date, name, amt_paid, worker_id FROM worker_expenses WHERE worker_id = $1 ORDER BY date, id`

	rows, err := r.DB.Query(ctx, query, workerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.WorkerExpense
	for rows.Next() {
		e := &models.WorkerExpense{}
		if err := rows.Scan(&e.ID, &e.Date, &e.Name, &e.AmtPaid, &e.WorkerID); err != nil {
			return nil, err
		}
		expenses = append(expenses, e)
	}

	return expenses, rows.Err()
}

// SumByDate totals every worker expense recorded on the given calendar date.
func (r *WorkerExpenseRepository) SumByDate(ctx context.Context, date time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(amt_paid), 0) FROM worker_expenses WHERE date = $1`

	var total float64
	if err := r.DB.QueryRow(ctx, query, date).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
