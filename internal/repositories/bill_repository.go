package repositories

import (
	"context"
	"errors"

	"tailor-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BillRepository struct {
	DB Querier
}

func NewBillRepository(db *pgxpool.Pool) *BillRepository {
	return &BillRepository{DB: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *BillRepository) WithTx(q Querier) *BillRepository {
	return &BillRepository{DB: q}
}

func (r *BillRepository) Create(ctx context.Context, bill *models.Bill) error {
	query := `
		INSERT INTO bills (customer_name, mobile_number, date_issue, delivery_date,
			suit_qty, safari_qty, pant_qty, shirt_qty, sadri_qty, total_qty,
			today_date, due_date, total_amt, payment_mode, payment_status, payment_amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id
	`

	return r.DB.QueryRow(ctx, query,
		bill.CustomerName,
		bill.MobileNumber,
		bill.DateIssue,
		bill.DeliveryDate,
		bill.SuitQty,
		bill.SafariQty,
		bill.PantQty,
		bill.ShirtQty,
		bill.SadriQty,
		bill.TotalQty,
		bill.TodayDate,
		bill.DueDate,
		bill.TotalAmt,
		bill.PaymentMode,
		bill.PaymentStatus,
		bill.PaymentAmount,
	).Scan(&bill.ID)
}

const billColumns = `
	id, customer_name, mobile_number, date_issue, delivery_date,
	suit_qty, safari_qty, pant_qty, shirt_qty, sadri_qty, total_qty,
	today_date, due_date, total_amt, payment_mode, payment_status, payment_amount`

func scanBill(row pgx.Row) (*models.Bill, error) {
	b := &models.Bill{}
	err := row.Scan(
		&b.ID, &b.CustomerName, &b.MobileNumber, &b.DateIssue, &b.DeliveryDate,
		&b.SuitQty, &b.SafariQty, &b.PantQty, &b.ShirtQty, &b.SadriQty, &b.TotalQty,
		&b.TodayDate, &b.DueDate, &b.TotalAmt, &b.PaymentMode, &b.PaymentStatus, &b.PaymentAmount,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BillRepository) GetByID(ctx context.Context, id int) (*models.Bill, error) {
	query := `SELECT` + billColumns + ` FROM bills WHERE id = $1`

	b, err := scanBill(r.DB.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByMobile returns all bills for a mobile number, oldest first.
func (r *BillRepository) ListByMobile(ctx context.Context, mobile string) ([]*models.Bill, error) {
	query := `SELECT` + billColumns + ` FROM bills WHERE mobile_number = $1 ORDER BY id`

	rows, err := r.DB.Query(ctx, query, mobile)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bills []*models.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		bills = append(bills, b)
	}

	return bills, rows.Err()
}
