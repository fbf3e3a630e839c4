package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"tailor-backend/internal/models"
	"tailor-backend/internal/timeutil"
)

// PayrollStore is the read surface the pay reports aggregate over.
type PayrollStore interface {
	Worker(ctx context.Context, id int) (*models.Worker, error)
	Workers(ctx context.Context) ([]*models.Worker, error)
	OrdersForWorker(ctx context.Context, workerID int) ([]*models.Order, error)
	ExpensesForWorker(ctx context.Context, workerID int) ([]*models.WorkerExpense, error)
}

type PayrollService struct {
	store PayrollStore
}

func NewPayrollService(store PayrollStore) *PayrollService {
	return &PayrollService{store: store}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type weekAccum struct {
	start   time.Time
	orders  []models.WeekOrderRef
	workPay float64
	amtPaid float64
}

// WorkerWeeklyPay is the single-worker pay report: the worker's orders and
// payouts bucketed into Sunday-starting calendar weeks, newest week first,
// with a grand total. The all-workers overview uses Monday-starting weeks
// instead; the two screens shipped with different conventions and both are
// kept.
func (s *PayrollService) WorkerWeeklyPay(ctx context.Context, workerID int) (*models.WorkerWeeklyPayReport, error) {
	worker, err := s.store.Worker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch worker %d: %w", workerID, err)
	}
	if worker == nil {
		return nil, ErrNotFound
	}

	orders, err := s.store.OrdersForWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch orders for worker %d: %w", workerID, err)
	}
	expenses, err := s.store.ExpensesForWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses for worker %d: %w", workerID, err)
	}

	weeks := make(map[string]*weekAccum)
	bucket := func(day time.Time) *weekAccum {
		start := timeutil.WeekStartSunday(day)
		key := timeutil.FormatDate(start)
		w, ok := weeks[key]
		if !ok {
			w = &weekAccum{start: start}
			weeks[key] = w
		}
		return w
	}

	for _, o := range orders {
		w := bucket(o.OrderDate)
		pay := 0.0
		if o.WorkPay != nil {
			pay = *o.WorkPay
		}
		w.workPay += pay
		w.orders = append(w.orders, models.WeekOrderRef{
			OrderNumber: orderNumber(o),
			WorkPay:     round2(pay),
		})
	}
	for _, e := range expenses {
		bucket(e.Date).amtPaid += e.AmtPaid
	}

	report := &models.WorkerWeeklyPayReport{
		WorkerName: worker.Name,
		WeeklyData: []models.WeeklyPayBucket{},
	}

	for _, w := range sortedWeeks(weeks) {
		end := timeutil.WeekEnd(w.start)
		if w.orders == nil {
			w.orders = []models.WeekOrderRef{}
		}
		report.WeeklyData = append(report.WeeklyData, models.WeeklyPayBucket{
			WeekPeriod:   timeutil.FormatDate(w.start) + " to " + timeutil.FormatDate(end),
			OrderCount:   len(w.orders),
			TotalWorkPay: round2(w.workPay),
			TotalPaid:    round2(w.amtPaid),
			Remaining:    round2(w.workPay - w.amtPaid),
			Orders:       w.orders,
		})
		report.TotalSummary.TotalOrders += len(w.orders)
		report.TotalSummary.TotalWorkPay += w.workPay
		report.TotalSummary.TotalPaid += w.amtPaid
	}

	report.TotalSummary.TotalWorkPay = round2(report.TotalSummary.TotalWorkPay)
	report.TotalSummary.TotalPaid = round2(report.TotalSummary.TotalPaid)
	report.TotalSummary.TotalRemaining = round2(report.TotalSummary.TotalWorkPay - report.TotalSummary.TotalPaid)

	return report, nil
}

// AllWorkersWeeklyPay is the overview across every worker, bucketed into
// Monday-starting weeks, newest week first per worker.
func (s *PayrollService) AllWorkersWeeklyPay(ctx context.Context) ([]models.AllWorkersWeeklyPay, error) {
	workers, err := s.store.Workers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch workers: %w", err)
	}

	result := make([]models.AllWorkersWeeklyPay, 0, len(workers))
	for _, worker := range workers {
		orders, err := s.store.OrdersForWorker(ctx, worker.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch orders for worker %d: %w", worker.ID, err)
		}
		expenses, err := s.store.ExpensesForWorker(ctx, worker.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch expenses for worker %d: %w", worker.ID, err)
		}

		weeks := make(map[string]*weekAccum)
		bucket := func(day time.Time) *weekAccum {
			start := timeutil.WeekStartMonday(day)
			key := timeutil.FormatDate(start)
			w, ok := weeks[key]
			if !ok {
				w = &weekAccum{start: start}
				weeks[key] = w
			}
			return w
		}

		for _, o := range orders {
			w := bucket(o.OrderDate)
			if o.WorkPay != nil {
				w.workPay += *o.WorkPay
			}
			w.orders = append(w.orders, models.WeekOrderRef{OrderNumber: orderNumber(o)})
		}
		for _, e := range expenses {
			bucket(e.Date).amtPaid += e.AmtPaid
		}

		entry := models.AllWorkersWeeklyPay{
			WorkerID:   worker.ID,
			WorkerName: worker.Name,
			WeeklyData: []models.AllWorkersWeekBucket{},
		}
		for _, w := range sortedWeeks(weeks) {
			entry.WeeklyData = append(entry.WeeklyData, models.AllWorkersWeekBucket{
				WeekStart:    timeutil.FormatDate(w.start),
				WeekEnd:      timeutil.FormatDate(timeutil.WeekEnd(w.start)),
				OrdersCount:  len(w.orders),
				TotalWorkPay: round2(w.workPay),
				AmountPaid:   round2(w.amtPaid),
				RemainingPay: round2(w.workPay - w.amtPaid),
			})
		}
		result = append(result, entry)
	}

	return result, nil
}

// RollingPay is the last-7-days snapshot for one worker: the number of
// orders in the window times the worker's generic rate, against what was
// actually paid out in the window.
func (s *PayrollService) RollingPay(ctx context.Context, workerID int) (*models.RollingPaySummary, error) {
	worker, err := s.store.Worker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch worker %d: %w", workerID, err)
	}
	if worker == nil {
		return nil, ErrNotFound
	}

	orders, err := s.store.OrdersForWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch orders for worker %d: %w", workerID, err)
	}
	expenses, err := s.store.ExpensesForWorker(ctx, workerID)
	if err != nil {
		return nil, fmt.Errorf("fetch expenses for worker %d: %w", workerID, err)
	}

	cutoff := timeutil.Today().AddDate(0, 0, -7)

	rate := 0.0
	if worker.Rate != nil {
		rate = *worker.Rate
	}

	var orderCount int
	for _, o := range orders {
		if !timeutil.StartOfDay(o.OrderDate).Before(cutoff) {
			orderCount++
		}
	}

	var paid float64
	for _, e := range expenses {
		if !timeutil.StartOfDay(e.Date).Before(cutoff) {
			paid += e.AmtPaid
		}
	}

	totalPay := float64(orderCount) * rate
	return &models.RollingPaySummary{
		WorkerID:       workerID,
		TotalWorkerPay: round2(totalPay),
		TotalAmtPaid:   round2(paid),
		RemainingPay:   round2(totalPay - paid),
	}, nil
}

// orderNumber is the order's display handle in reports: the bill number when
// it has one, the row id otherwise.
func orderNumber(o *models.Order) string {
	if o.BillNumber != nil && *o.BillNumber != "" {
		return *o.BillNumber
	}
	return strconv.Itoa(o.ID)
}

// sortedWeeks returns the accumulated weeks newest first.
func sortedWeeks(weeks map[string]*weekAccum) []*weekAccum {
	out := make([]*weekAccum, 0, len(weeks))
	for _, w := range weeks {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].start.After(out[j].start)
	})
	return out
}
