// Package stores binds the service-layer persistence ports to Postgres,
// scoping multi-statement operations to a single pgx transaction.
package stores

import (
	"context"
	"fmt"

	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"

	"github.com/jackc/pgx/v5/pgxpool"
)

type BillingStore struct {
	pool *pgxpool.Pool
}

func NewBillingStore(pool *pgxpool.Pool) *BillingStore {
	return &BillingStore{pool: pool}
}

var _ services.BillingStore = (*BillingStore)(nil)

// WithinTx runs fn against transaction-bound repositories. Any error rolls
// the whole bill submission back.
func (s *BillingStore) WithinTx(ctx context.Context, fn func(ops services.BillingOps) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	ops := &billingOps{
		measurements: repositories.NewMeasurementRepository(s.pool).WithTx(tx),
		bills:        repositories.NewBillRepository(s.pool).WithTx(tx),
		orders:       repositories.NewOrderRepository(s.pool).WithTx(tx),
	}

	if err := fn(ops); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

type billingOps struct {
	measurements *repositories.MeasurementRepository
	bills        *repositories.BillRepository
	orders       *repositories.OrderRepository
}

var _ services.BillingOps = (*billingOps)(nil)

func (o *billingOps) MeasurementByPhone(ctx context.Context, phone string) (*models.Measurement, error) {
	return o.measurements.GetByPhone(ctx, phone)
}

func (o *billingOps) UpsertMeasurement(ctx context.Context, m *models.Measurement) error {
	return o.measurements.Upsert(ctx, m)
}

func (o *billingOps) InsertBill(ctx context.Context, bill *models.Bill) error {
	return o.bills.Create(ctx, bill)
}

func (o *billingOps) OrdersForGarment(ctx context.Context, billID int, garmentType string) ([]*models.Order, error) {
	return o.orders.ListByBillAndGarment(ctx, billID, garmentType)
}

func (o *billingOps) UpdateOrderShared(ctx context.Context, order *models.Order) error {
	return o.orders.UpdateShared(ctx, order)
}

func (o *billingOps) InsertOrder(ctx context.Context, order *models.Order) error {
	return o.orders.Create(ctx, order)
}

func (o *billingOps) DeleteOrder(ctx context.Context, id int) error {
	return o.orders.Delete(ctx, id)
}
