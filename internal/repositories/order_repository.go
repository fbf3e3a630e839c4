package repositories

import (
	"context"
	"errors"
	"fmt"

	"tailor-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB Querier
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *OrderRepository) WithTx(q Querier) *OrderRepository {
	return &OrderRepository{DB: q}
}

const orderColumns = `
	id, garment_type, status, order_date, due_date, total_amt,
	payment_mode, payment_status, payment_amount, updated_at, work_pay, bill_number, bill_id`

func scanOrder(row pgx.Row) (*models.Order, error) {
	o := &models.Order{}
	err := row.Scan(
		&o.ID, &o.GarmentType, &o.Status, &o.OrderDate, &o.DueDate, &o.TotalAmt,
		&o.PaymentMode, &o.PaymentStatus, &o.PaymentAmount, &o.UpdatedAt, &o.WorkPay, &o.BillNumber, &o.BillID,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) collect(rows pgx.Rows) ([]*models.Order, error) {
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE id = $1`

	o, err := scanOrder(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]*models.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders ORDER BY id`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListByBillAndGarment returns a bill's order rows for one garment type in
// persisted order. The reconciler relies on this ordering: the first N rows
// are retained, the tail is deleted.
func (r *OrderRepository) ListByBillAndGarment(ctx context.Context, billID int, garmentType string) ([]*models.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE bill_id = $1 AND garment_type = $2 ORDER BY id`

	rows, err := r.DB.Query(ctx, query, billID, garmentType)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *OrderRepository) ListByBill(ctx context.Context, billID int) ([]*models.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE bill_id = $1 ORDER BY id`

	rows, err := r.DB.Query(ctx, query, billID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// ListByWorker returns all orders assigned to a worker via the join table.
func (r *OrderRepository) ListByWorker(ctx context.Context, workerID int) ([]*models.Order, error) {
	query := `
		SELECT o.id, o.garment_type, o.status, o.order_date, o.due_date, o.total_amt,
		       o.payment_mode, o.payment_status, o.payment_amount, o.updated_at, o.work_pay, o.bill_number, o.bill_id
		FROM orders o
		JOIN order_worker ow ON ow.order_id = o.id
		WHERE ow.worker_id = $1
		ORDER BY o.order_date DESC, o.id DESC
	`

	rows, err := r.DB.Query(ctx, query, workerID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

// SearchByBillNumber matches orders whose bill number contains the query,
// case-insensitively.
func (r *OrderRepository) SearchByBillNumber(ctx context.Context, billNumber string) ([]*models.Order, error) {
	query := `SELECT` + orderColumns + ` FROM orders WHERE bill_number ILIKE $1 ORDER BY id`

	rows, err := r.DB.Query(ctx, query, "%"+billNumber+"%")
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	query := `
		INSERT INTO orders (garment_type, status, order_date, due_date, total_amt,
			payment_mode, payment_status, payment_amount, work_pay, bill_number, bill_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		o.GarmentType,
		o.Status,
		o.OrderDate,
		o.DueDate,
		o.TotalAmt,
		o.PaymentMode,
		o.PaymentStatus,
		o.PaymentAmount,
		o.WorkPay,
		o.BillNumber,
		o.BillID,
	).Scan(&o.ID)
}

// UpdateShared stamps the reconciler's shared fields and status onto an
// existing order row.
func (r *OrderRepository) UpdateShared(ctx context.Context, o *models.Order) error {
	query := `
		UPDATE orders
		SET status = $1, order_date = $2, due_date = $3, total_amt = $4,
		    payment_mode = $5, payment_status = $6, payment_amount = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := r.DB.Exec(ctx, query,
		o.Status, o.OrderDate, o.DueDate, o.TotalAmt,
		o.PaymentMode, o.PaymentStatus, o.PaymentAmount, o.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("order %d not found", o.ID)
	}
	return nil
}

// Delete removes an order row; its worker assignments cascade.
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return err
}

func (r *OrderRepository) setColumn(ctx context.Context, id int, column string, value any) (bool, error) {
	query := fmt.Sprintf(`UPDATE orders SET %s = $1, updated_at = NOW() WHERE id = $2`, column)

	tag, err := r.DB.Exec(ctx, query, value, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) (bool, error) {
	return r.setColumn(ctx, id, "status", status)
}

func (r *OrderRepository) UpdatePaymentStatus(ctx context.Context, id int, paymentStatus string) (bool, error) {
	return r.setColumn(ctx, id, "payment_status", paymentStatus)
}

func (r *OrderRepository) UpdatePaymentMode(ctx context.Context, id int, paymentMode string) (bool, error) {
	return r.setColumn(ctx, id, "payment_mode", paymentMode)
}

func (r *OrderRepository) UpdatePaymentAmount(ctx context.Context, id int, amount float64) (bool, error) {
	return r.setColumn(ctx, id, "payment_amount", amount)
}

func (r *OrderRepository) UpdateTotalAmt(ctx context.Context, id int, amount float64) (bool, error) {
	return r.setColumn(ctx, id, "total_amt", amount)
}

// UpdateStatusByBill sets the status of every order on a bill and returns the
// number of rows touched.
func (r *OrderRepository) UpdateStatusByBill(ctx context.Context, billID int, status string) (int, error) {
	query := `UPDATE orders SET status = $1, updated_at = NOW() WHERE bill_id = $2`

	tag, err := r.DB.Exec(ctx, query, status, billID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// WorkersForOrders returns the assigned workers for a batch of orders in one
// query, keyed by order id. Avoids N+1 lookups on the order listing.
func (r *OrderRepository) WorkersForOrders(ctx context.Context, orderIDs []int) (map[int][]*models.Worker, error) {
	result := make(map[int][]*models.Worker)
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT ow.order_id, w.id, w.name, w.number, w.rate, w.suit_rate, w.jacket_rate, w.sadri_rate, w.others_rate
		FROM workers w
		JOIN order_worker ow ON ow.worker_id = w.id
		WHERE ow.order_id = ANY($1)
		ORDER BY ow.order_id, w.id
	`

	rows, err := r.DB.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID int
		w := &models.Worker{}
		if err := rows.Scan(&orderID, &w.ID, &w.Name, &w.Number, &w.Rate, &w.Suit, &w.Jacket, &w.Sadri, &w.Others); err != nil {
			return nil, err
		}
		result[orderID] = append(result[orderID], w)
	}

	return result, rows.Err()
}

// ReplaceWorkers swaps an order's worker assignments for the given set and
// records the computed work pay.
func (r *OrderRepository) ReplaceWorkers(ctx context.Context, orderID int, workerIDs []int, workPay float64) error {
	if _, err := r.DB.Exec(ctx, `DELETE FROM order_worker WHERE order_id = $1`, orderID); err != nil {
		return err
	}

	for _, workerID := range workerIDs {
		_, err := r.DB.Exec(ctx,
			`INSERT INTO order_worker (order_id, worker_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			orderID, workerID)
		if err != nil {
			return err
		}
	}

	_, err := r.DB.Exec(ctx, `UPDATE orders SET work_pay = $1, updated_at = NOW() WHERE id = $2`, workPay, orderID)
	return err
}

// MobileNumbersForOrders returns each order's bill mobile number in one query.
func (r *OrderRepository) MobileNumbersForOrders(ctx context.Context, orderIDs []int) (map[int]string, error) {
	result := make(map[int]string)
	if len(orderIDs) == 0 {
		return result, nil
	}

	query := `
		SELECT o.id, b.mobile_number
		FROM orders o
		JOIN bills b ON b.id = o.bill_id
		WHERE o.id = ANY($1)
	`

	rows, err := r.DB.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		var mobile string
		if err := rows.Scan(&id, &mobile); err != nil {
			return nil, err
		}
		result[id] = mobile
	}

	return result, rows.Err()
}
