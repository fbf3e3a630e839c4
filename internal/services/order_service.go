package services

import (
	"context"
	"fmt"
	"log"
	"sort"

	"tailor-backend/internal/models"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/timeutil"
)

type OrderService struct {
	orderRepo  *repositories.OrderRepository
	workerRepo *repositories.WorkerRepository
}

func NewOrderService(orderRepo *repositories.OrderRepository, workerRepo *repositories.WorkerRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo, workerRepo: workerRepo}
}

// WorkPayFor sums each assigned worker's rate for the garment type. A worker
// without a usable rate contributes zero.
func WorkPayFor(workers []*models.Worker, garmentType string) float64 {
	var total float64
	for _, w := range workers {
		total += w.RateFor(garmentType)
	}
	return total
}

// ListGroupedByDueDate returns every order keyed by its due date string, each
// with its bill's mobile number and assigned workers. The orders screen
// renders one section per due date.
func (s *OrderService) ListGroupedByDueDate(ctx context.Context) (map[string][]models.OrderDetail, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	details, err := s.decorate(ctx, orders, true)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.OrderDetail)
	for _, d := range details {
		grouped[d.DueDate] = append(grouped[d.DueDate], d)
	}
	return grouped, nil
}

// SearchByBillNumber returns orders whose bill number contains the query,
// case-insensitively.
func (s *OrderService) SearchByBillNumber(ctx context.Context, billNumber string) ([]models.OrderDetail, error) {
	if billNumber == "" {
		return nil, validationf("bill_number is required")
	}

	orders, err := s.orderRepo.SearchByBillNumber(ctx, billNumber)
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	return s.decorate(ctx, orders, true)
}

// HistoryForBills returns the decorated orders of the given bills, newest
// order first.
func (s *OrderService) HistoryForBills(ctx context.Context, bills []*models.Bill) ([]models.OrderDetail, error) {
	history := []models.OrderDetail{}
	for _, bill := range bills {
		orders, err := s.orderRepo.ListByBill(ctx, bill.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch orders for bill %d: %w", bill.ID, err)
		}
		details, err := s.decorate(ctx, orders, false)
		if err != nil {
			return nil, err
		}
		history = append(history, details...)
	}

	sort.SliceStable(history, func(i, j int) bool {
		return history[i].ID > history[j].ID
	})
	return history, nil
}

// ListByWorker returns the orders assigned to one worker, newest first.
func (s *OrderService) ListByWorker(ctx context.Context, workerID int) ([]models.OrderDetail, error) {
	worker, err := s.workerRepo.GetByID(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch worker %d: %w", workerID, err)
	}
	if worker == nil {
		return nil, ErrNotFound
	}

	orders, err := s.orderRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("list orders for worker %d: %w", workerID, err)
	}
	return s.decorate(ctx, orders, false)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int, status string) error {
	if status == "" {
		return validationf("status is required")
	}
	ok, err := s.orderRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return fmt.Errorf("update order %d status: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) UpdatePaymentStatus(ctx context.Context, id int, paymentStatus string) error {
	if paymentStatus == "" {
		return validationf("payment_status is required")
	}
	ok, err := s.orderRepo.UpdatePaymentStatus(ctx, id, paymentStatus)
	if err != nil {
		return fmt.Errorf("update order %d payment status: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) UpdatePaymentMode(ctx context.Context, id int, paymentMode string) error {
	if paymentMode == "" {
		return validationf("payment_mode is required")
	}
	ok, err := s.orderRepo.UpdatePaymentMode(ctx, id, paymentMode)
	if err != nil {
		return fmt.Errorf("update order %d payment mode: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) UpdateAdvanceAmount(ctx context.Context, id int, amount float64) error {
	if amount < 0 {
		return validationf("payment_amount cannot be negative")
	}
	ok, err := s.orderRepo.UpdatePaymentAmount(ctx, id, amount)
	if err != nil {
		return fmt.Errorf("update order %d advance amount: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *OrderService) UpdateTotalAmount(ctx context.Context, id int, amount float64) error {
	if amount < 0 {
		return validationf("total_amt cannot be negative")
	}
	ok, err := s.orderRepo.UpdateTotalAmt(ctx, id, amount)
	if err != nil {
		return fmt.Errorf("update order %d total amount: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// UpdateStatusByBill sets the status of every order on a bill and returns the
// number of orders touched.
func (s *OrderService) UpdateStatusByBill(ctx context.Context, billID int, status string) (int, error) {
	if status == "" {
		return 0, validationf("status is required")
	}
	count, err := s.orderRepo.UpdateStatusByBill(ctx, billID, status)
	if err != nil {
		return 0, fmt.Errorf("update bill %d orders: %w", billID, err)
	}
	if count == 0 {
		return 0, ErrNotFound
	}
	return count, nil
}

// AssignWorkers replaces an order's worker set and recomputes its work pay
// from each worker's rate for the order's garment type. Unknown worker ids
// in the payload are rejected.
func (s *OrderService) AssignWorkers(ctx context.Context, orderID int, workerIDs []int) (float64, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return 0, fmt.Errorf("fetch order %d: %w", orderID, err)
	}
	if order == nil {
		return 0, ErrNotFound
	}

	workers, err := s.workerRepo.ListByIDs(ctx, workerIDs)
	if err != nil {
		return 0, fmt.Errorf("fetch workers: %w", err)
	}
	if len(workers) != len(uniqueInts(workerIDs)) {
		return 0, validationf("one or more worker ids do not exist")
	}

	workPay := WorkPayFor(workers, order.GarmentType)
	if err := s.orderRepo.ReplaceWorkers(ctx, orderID, workerIDs, workPay); err != nil {
		return 0, fmt.Errorf("assign workers to order %d: %w", orderID, err)
	}

	log.Printf("[Orders] Assigned %d worker(s) to order %d, work pay %.2f", len(workers), orderID, workPay)
	return workPay, nil
}

func uniqueInts(values []int) []int {
	seen := make(map[int]struct{}, len(values))
	var out []int
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// decorate turns raw order rows into listing details with date strings,
// assigned workers, and (optionally) the bill's mobile number.
func (s *OrderService) decorate(ctx context.Context, orders []*models.Order, withMobile bool) ([]models.OrderDetail, error) {
	ids := make([]int, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}

	workersByOrder, err := s.orderRepo.WorkersForOrders(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch order workers: %w", err)
	}

	var mobiles map[int]string
	if withMobile {
		mobiles, err = s.orderRepo.MobileNumbersForOrders(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("fetch order mobiles: %w", err)
		}
	}

	details := make([]models.OrderDetail, 0, len(orders))
	for _, o := range orders {
		d := models.OrderDetail{
			ID:            o.ID,
			GarmentType:   o.GarmentType,
			Status:        o.Status,
			OrderDate:     timeutil.FormatDate(o.OrderDate),
			DueDate:       timeutil.FormatDate(o.DueDate),
			TotalAmt:      o.TotalAmt,
			PaymentMode:   o.PaymentMode,
			PaymentStatus: o.PaymentStatus,
			PaymentAmount: o.PaymentAmount,
			BillID:        o.BillID,
			BillNumber:    o.BillNumber,
			Workers:       []models.WorkerRef{},
			WorkPay:       o.WorkPay,
		}
		for _, w := range workersByOrder[o.ID] {
			d.Workers = append(d.Workers, models.WorkerRef{
				WorkerID: w.ID,
				Name:     w.Name,
				Rate:     w.Rate,
				Suit:     w.Suit,
				Jacket:   w.Jacket,
				Sadri:    w.Sadri,
				Others:   w.Others,
			})
		}
		if withMobile {
			if mobile, ok := mobiles[o.ID]; ok {
				d.CustomerMobile = &mobile
			}
		}
		details = append(details, d)
	}
	return details, nil
}
