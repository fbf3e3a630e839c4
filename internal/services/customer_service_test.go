package services

import (
	"context"
	"errors"
	"testing"

	"tailor-backend/internal/models"
)

type fakeMeasurementStore struct {
	stored *models.Measurement
	saved  *models.Measurement
}

func (f *fakeMeasurementStore) GetByPhone(ctx context.Context, phone string) (*models.Measurement, error) {
	return f.stored, nil
}

func (f *fakeMeasurementStore) Upsert(ctx context.Context, m *models.Measurement) error {
	f.saved = m
	return nil
}

type fakeBillReader struct {
	bills []*models.Bill
}

func (f *fakeBillReader) ListByMobile(ctx context.Context, mobile string) ([]*models.Bill, error) {
	return f.bills, nil
}

type fakeOrderHistorian struct {
	history []models.OrderDetail
}

func (f *fakeOrderHistorian) HistoryForBills(ctx context.Context, bills []*models.Bill) ([]models.OrderDetail, error) {
	return f.history, nil
}

func customerServiceWith(m *fakeMeasurementStore, b *fakeBillReader, o *fakeOrderHistorian) *CustomerService {
	return &CustomerService{measurements: m, bills: b, orders: o}
}

func TestGetCustomerInfo_NoMeasurementsIsNotFound(t *testing.T) {
	svc := customerServiceWith(
		&fakeMeasurementStore{stored: nil},
		&fakeBillReader{bills: []*models.Bill{{ID: 1, CustomerName: "Asha"}}},
		&fakeOrderHistorian{},
	)

	_, err := svc.GetCustomerInfo(context.Background(), "9876543210")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for customer without measurements, got %v", err)
	}
}

func TestGetCustomerInfo_NoBillsIsNotFound(t *testing.T) {
	svc := customerServiceWith(
		&fakeMeasurementStore{stored: &models.Measurement{PhoneNumber: "9876543210"}},
		&fakeBillReader{},
		&fakeOrderHistorian{},
	)

	_, err := svc.GetCustomerInfo(context.Background(), "9876543210")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for customer without bills, got %v", err)
	}
}

func TestGetCustomerInfo_NameComesFromFirstBill(t *testing.T) {
	svc := customerServiceWith(
		&fakeMeasurementStore{stored: &models.Measurement{PhoneNumber: "9876543210"}},
		&fakeBillReader{bills: []*models.Bill{
			{ID: 1, CustomerName: "Asha Mehta"},
			{ID: 2, CustomerName: "A. Mehta"},
		}},
		&fakeOrderHistorian{history: []models.OrderDetail{{ID: 7}, {ID: 3}}},
	)

	info, err := svc.GetCustomerInfo(context.Background(), "9876543210")
	if err != nil {
		t.Fatalf("GetCustomerInfo: %v", err)
	}
	if info.CustomerName != "Asha Mehta" {
		t.Fatalf("expected name from first bill, got %q", info.CustomerName)
	}
	if info.MobileNumber != "9876543210" {
		t.Fatalf("unexpected mobile %q", info.MobileNumber)
	}
	if len(info.OrderHistory) != 2 || info.OrderHistory[0].ID != 7 {
		t.Fatalf("unexpected order history %+v", info.OrderHistory)
	}
}

func TestUpdateMeasurements_UnknownCustomerIsNotFound(t *testing.T) {
	svc := customerServiceWith(&fakeMeasurementStore{stored: nil}, &fakeBillReader{}, &fakeOrderHistorian{})

	_, err := svc.UpdateMeasurements(context.Background(), "9876543210", &models.Measurement{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
