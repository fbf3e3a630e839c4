package repositories

import (
	"context"
	"errors"
	"time"

	"tailor-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DailyExpenseRepository struct {
	DB Querier
}

func NewDailyExpenseRepository(db *pgxpool.Pool) *DailyExpenseRepository {
	return &DailyExpenseRepository{DB: db}
}

func (r *DailyExpenseRepository) WithTx(q Querier) *DailyExpenseRepository {
	return &DailyExpenseRepository{DB: q}
}

const dailyExpenseColumns = ` id, date, material_cost, material_type, miscellaneous_cost, miscellaneous_item, chai_pani_cost, total_pay`

func scanDailyExpense(row pgx.Row) (*models.DailyExpense, error) {
	d := &models.DailyExpense{}
	err := row.Scan(
		&d.ID, &d.Date, &d.MaterialCost, &d.MaterialType,
		&d.MiscellaneousCost, &d.MiscellaneousItem, &d.ChaiPaniCost, &d.TotalPay,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DailyExpenseRepository) Create(ctx context.Context, d *models.DailyExpense) error {
	query := `
		INSERT INTO daily_expenses (date, material_cost, material_type, miscellaneous_cost, miscellaneous_item, chai_pani_cost, total_pay)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		d.Date, d.MaterialCost, d.MaterialType,
		d.MiscellaneousCost, d.MiscellaneousItem, d.ChaiPaniCost, d.TotalPay,
	).Scan(&d.ID)
}

func (r *DailyExpenseRepository) List(ctx context.Context) ([]*models.DailyExpense, error) {
	query := `SELECT` + dailyExpenseColumns + ` FROM daily_expenses ORDER BY date DESC, id DESC`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*models.DailyExpense
	for rows.Next() {
		d, err := scanDailyExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, d)
	}

	return expenses, rows.Err()
}

// GetByDate returns the first daily expense row recorded for the date, or nil
// when none exists. Multiple rows per date are possible; the earliest one
// carries the rollup.
func (r *DailyExpenseRepository) GetByDate(ctx context.Context, date time.Time) (*models.DailyExpense, error) {
	query := `SELECT` + dailyExpenseColumns + ` FROM daily_expenses WHERE date = $1 ORDER BY id LIMIT 1`

	d, err := scanDailyExpense(r.DB.QueryRow(ctx, query, date))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *DailyExpenseRepository) UpdateTotalPay(ctx context.Context, id int, totalPay float64) error {
	_, err := r.DB.Exec(ctx, `UPDATE daily_expenses SET total_pay = $1 WHERE id = $2`, totalPay, id)
	return err
}
