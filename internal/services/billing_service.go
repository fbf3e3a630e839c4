package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"
)

// BillingOps is everything a bill submission touches. All of it runs inside
// one transaction so a failed reconciliation leaves no partial bill behind.
type BillingOps interface {
	OrderReconcilerStore

	MeasurementByPhone(ctx context.Context, phone string) (*models.Measurement, error)
	UpsertMeasurement(ctx context.Context, m *models.Measurement) error
	InsertBill(ctx context.Context, bill *models.Bill) error
}

// BillingStore opens a transaction scope around bill creation.
type BillingStore interface {
	WithinTx(ctx context.Context, fn func(ops BillingOps) error) error
}

type BillingService struct {
	store BillingStore
}

func NewBillingService(store BillingStore) *BillingService {
	return &BillingService{store: store}
}

// CreateBill handles one billing-screen submission: merge the customer's
// measurement fields, insert the bill row, and reconcile the order rows for
// every requested garment type. All-or-nothing.
func (s *BillingService) CreateBill(ctx context.Context, req *models.NewBillRequest) (*models.Bill, error) {
	if req.CustomerName == "" {
		return nil, validationf("customerName is required")
	}
	if req.MobileNo == "" {
		return nil, validationf("mobileNo is required")
	}

	dateIssue, err := parseRequestDate("dateIssue", req.DateIssue)
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseRequestDate("deliveryDate", req.DeliveryDate)
	if err != nil {
		return nil, err
	}
	todayDate, err := parseRequestDate("todayDate", req.TodayDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := parseRequestDate("dueDate", req.DueDate)
	if err != nil {
		return nil, err
	}

	var paymentAmount float64
	if req.PaymentAmount != nil {
		paymentAmount = *req.PaymentAmount
	}

	bill := &models.Bill{
		CustomerName:  req.CustomerName,
		MobileNumber:  req.MobileNo,
		DateIssue:     dateIssue,
		DeliveryDate:  deliveryDate,
		SuitQty:       req.SuitQty,
		SafariQty:     req.SafariQty,
		PantQty:       req.PantQty,
		ShirtQty:      req.ShirtQty,
		SadriQty:      req.SadriQty,
		TotalQty:      req.TotalQty,
		TodayDate:     todayDate,
		DueDate:       dueDate,
		TotalAmt:      req.TotalAmt,
		PaymentMode:   req.PaymentMode,
		PaymentStatus: req.PaymentStatus,
		PaymentAmount: paymentAmount,
	}

	err = s.store.WithinTx(ctx, func(ops BillingOps) error {
		if err := s.mergeMeasurements(ctx, ops, req); err != nil {
			return err
		}

		if err := ops.InsertBill(ctx, bill); err != nil {
			return fmt.Errorf("insert bill: %w", err)
		}

		shared := models.OrderShared{
			OrderDate:     timeutil.Today(),
			DueDate:       dueDate,
			TotalAmt:      bill.TotalAmt,
			PaymentMode:   bill.PaymentMode,
			PaymentStatus: bill.PaymentStatus,
			PaymentAmount: bill.PaymentAmount,
			BillNumber:    req.BillNumber,
		}

		return ReconcileBill(ctx, ops, bill, shared)
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[Billing] Created bill %d for %s (%d garments)", bill.ID, bill.MobileNumber, bill.TotalQty)
	return bill, nil
}

// mergeMeasurements folds the request's non-nil measurement fields into the
// customer's stored row, creating it on first contact.
func (s *BillingService) mergeMeasurements(ctx context.Context, ops BillingOps, req *models.NewBillRequest) error {
	incoming := req.MeasurementInput()

	current, err := ops.MeasurementByPhone(ctx, req.MobileNo)
	if err != nil {
		return fmt.Errorf("fetch measurements for %s: %w", req.MobileNo, err)
	}
	if current == nil {
		current = &models.Measurement{PhoneNumber: req.MobileNo}
	}
	current.Merge(incoming)

	if err := ops.UpsertMeasurement(ctx, current); err != nil {
		return fmt.Errorf("save measurements for %s: %w", req.MobileNo, err)
	}
	return nil
}

func parseRequestDate(field, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, validationf(field + " is required")
	}
	t, err := timeutil.ParseDate(value)
	if err != nil {
		return time.Time{}, validationf(field + " must be a YYYY-MM-DD date")
	}
	return t, nil
}
