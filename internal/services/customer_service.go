package services

import (
	"context"
	"fmt"
	"log"

	"tailor-backend/internal/cache"
	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
)

// Read/write ports the customer screen needs. Satisfied by the pgx
// repositories and the order service.
type measurementStore interface {
	GetByPhone(ctx context.Context, phone string) (*models.Measurement, error)
	Upsert(ctx context.Context, m *models.Measurement) error
}

type billReader interface {
	ListByMobile(ctx context.Context, mobile string) ([]*models.Bill, error)
}

type orderHistorian interface {
	HistoryForBills(ctx context.Context, bills []*models.Bill) ([]models.OrderDetail, error)
}

type CustomerService struct {
	measurements measurementStore
	bills        billReader
	orders       orderHistorian
	cache        *cache.Client
}

func NewCustomerService(
	measurementRepo *repositories.MeasurementRepository,
	billRepo *repositories.BillRepository,
	orders *OrderService,
	cacheClient *cache.Client,
) *CustomerService {
	return &CustomerService{
		measurements: measurementRepo,
		bills:        billRepo,
		orders:       orders,
		cache:        cacheClient,
	}
}

func customerCacheKey(mobile string) string {
	return "customer-info:" + mobile
}

// GetCustomerInfo returns the customer screen payload: stored measurements,
// the customer's name from their first bill, and their full order history
// newest first. A customer with no measurements is a not-found, as is one
// with measurements but no bills.
func (s *CustomerService) GetCustomerInfo(ctx context.Context, mobile string) (*models.CustomerInfo, error) {
	if mobile == "" {
		return nil, validationf("mobile number is required")
	}

	var cached models.CustomerInfo
	if s.cache.Get(ctx, customerCacheKey(mobile), &cached) {
		return &cached, nil
	}

	measurements, err := s.measurements.GetByPhone(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("fetch measurements for %s: %w", mobile, err)
	}
	if measurements == nil {
		return nil, ErrNotFound
	}

	bills, err := s.bills.ListByMobile(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("fetch bills for %s: %w", mobile, err)
	}
	if len(bills) == 0 {
		return nil, ErrNotFound
	}

	history, err := s.orders.HistoryForBills(ctx, bills)
	if err != nil {
		return nil, err
	}

	info := &models.CustomerInfo{
		Measurements: measurements,
		CustomerName: bills[0].CustomerName,
		OrderHistory: history,
		MobileNumber: mobile,
	}

	s.cache.Set(ctx, customerCacheKey(mobile), info)
	return info, nil
}

// UpdateMeasurements merges the non-nil incoming fields into the customer's
// stored measurement row.
func (s *CustomerService) UpdateMeasurements(ctx context.Context, mobile string, incoming *models.Measurement) (*models.Measurement, error) {
	if mobile == "" {
		return nil, validationf("mobile number is required")
	}

	current, err := s.measurements.GetByPhone(ctx, mobile)
	if err != nil {
		return nil, fmt.Errorf("fetch measurements for %s: %w", mobile, err)
	}
	if current == nil {
		return nil, ErrNotFound
	}

	incoming.PhoneNumber = mobile
	current.Merge(incoming)

	if err := s.measurements.Upsert(ctx, current); err != nil {
		return nil, fmt.Errorf("save measurements for %s: %w", mobile, err)
	}

	s.InvalidateCustomer(ctx, mobile)
	log.Printf("[Customers] Updated measurements for %s", mobile)
	return current, nil
}

// InvalidateCustomer drops the cached customer-info payload; call it after
// anything that changes the customer's bills, orders, or measurements.
func (s *CustomerService) InvalidateCustomer(ctx context.Context, mobile string) {
	s.cache.Delete(ctx, customerCacheKey(mobile))
}
