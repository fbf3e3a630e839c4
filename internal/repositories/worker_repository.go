package repositories

import (
	"context"
	"errors"

	"tailor-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerRepository struct {
	DB Querier
}

func NewWorkerRepository(db *pgxpool.Pool) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

func (r *WorkerRepository) WithTx(q Querier) *WorkerRepository {
	return &WorkerRepository{DB: q}
}

const workerColumns = ` id, name, number, rate, suit_rate, jacket_rate, sadri_rate, others_rate`

func scanWorker(row pgx.Row) (*models.Worker, error) {
	w := &models.Worker{}
	err := row.Scan(&w.ID, &w.Name, &w.Number, &w.Rate, &w.Suit, &w.Jacket, &w.Sadri, &w.Others)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WorkerRepository) Create(ctx context.Context, w *models.Worker) error {
	query := `
		INSERT INTO workers (name, number, rate, suit_rate, jacket_rate, sadri_rate, others_rate)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		w.Name, w.Number, w.Rate, w.Suit, w.Jacket, w.Sadri, w.Others,
	).Scan(&w.ID)
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int) (*models.Worker, error) {
	query := `SELECT` + workerColumns + ` FROM workers WHERE id = $1`

	w, err := scanWorker(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (r *WorkerRepository) List(ctx context.Context) ([]*models.Worker, error) {
	query := `SELECT` + workerColumns + ` FROM workers ORDER BY id`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []*models.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

// ListByIDs returns the workers matching the given ids, in id order. Missing
// ids are simply absent from the result.
func (r *WorkerRepository) ListByIDs(ctx context.Context, ids []int) ([]*models.Worker, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT` + workerColumns + ` FROM workers WHERE id = ANY($1) ORDER BY id`

	rows, err := r.DB.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []*models.Worker
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		workers = append(workers, w)
	}

	return workers, rows.Err()
}

func (r *WorkerRepository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := r.DB.Exec(ctx, `DELETE FROM workers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
