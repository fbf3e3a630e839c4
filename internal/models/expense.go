package models

import "time"

// WorkerExpense records one payment made to a worker on a date.
type WorkerExpense struct {
	ID       int       `json:"id"`
	Date     time.Time `json:"-"`
	Name     string    `json:"name"`
	AmtPaid  float64   `json:"Amt_Paid"`
	WorkerID *int      `json:"worker_id"`
}

// CreateWorkerExpenseRequest is the POST /api/worker-expense payload.
type CreateWorkerExpenseRequest struct {
	WorkerID int     `json:"worker_id"`
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	AmtPaid  float64 `json:"Amt_Paid"`
}

// DailyExpense is the shop's expense row for one date. TotalPay is a derived
// rollup (materials + miscellaneous + chai pani + that date's worker
// expenses) persisted on the row; it is recomputed whenever a worker expense
// lands on the date, never maintained incrementally.
type DailyExpense struct {
	ID                int       `json:"id"`
	Date              time.Time `json:"-"`
	MaterialCost      *float64  `json:"material_cost"`
	MaterialType      *string   `json:"material_type"`
	MiscellaneousCost *float64  `json:"miscellaneous_cost"`
	MiscellaneousItem *string   `json:"miscellaneous_item"`
	ChaiPaniCost      *float64  `json:"chai_pani_cost"`
	TotalPay          *float64  `json:"total_pay"`
}

// CreateDailyExpenseRequest is the POST /api/daily_expenses payload.
type CreateDailyExpenseRequest struct {
	Date              string   `json:"date"`
	MaterialCost      *float64 `json:"material_cost"`
	MaterialType      *string  `json:"material_type"`
	MiscellaneousCost *float64 `json:"miscellaneous_cost"`
	MiscellaneousItem *string  `json:"miscellaneous_item"`
	ChaiPaniCost      *float64 `json:"chai_pani_cost"`
	TotalPay          *float64 `json:"total_pay"`
}

// CashCost returns the row's direct costs (materials + miscellaneous + chai
// pani), treating missing values as zero. Worker expenses are not included.
func (d *DailyExpense) CashCost() float64 {
	var total float64
	for _, v := range []*float64{d.MaterialCost, d.MiscellaneousCost, d.ChaiPaniCost} {
		if v != nil {
			total += *v
		}
	}
	return total
}

// WorkerExpenseView is the serialized worker expense with its calendar date.
type WorkerExpenseView struct {
	ID       int     `json:"id"`
	Date     string  `json:"date"`
	Name     string  `json:"name"`
	AmtPaid  float64 `json:"Amt_Paid"`
	WorkerID *int    `json:"worker_id"`
}

// DailyExpenseView is the serialized daily expense with its calendar date.
type DailyExpenseView struct {
	ID                int      `json:"id"`
	Date              string   `json:"date"`
	MaterialCost      *float64 `json:"material_cost"`
	MaterialType      *string  `json:"material_type"`
	MiscellaneousCost *float64 `json:"miscellaneous_cost"`
	MiscellaneousItem *string  `json:"miscellaneous_item"`
	ChaiPaniCost      *float64 `json:"chai_pani_cost"`
	TotalPay          *float64 `json:"total_pay"`
}
