package models

// WeekOrderRef identifies one order inside a weekly pay bucket. OrderNumber
// is the bill number when the order has one, the order id otherwise.
type WeekOrderRef struct {
	OrderNumber string  `json:"order_number"`
	WorkPay     float64 `json:"work_pay"`
}

// WeeklyPayBucket is one calendar week of a worker's pay report
// (single-worker view, Sunday-Saturday weeks).
type WeeklyPayBucket struct {
	WeekPeriod   string         `json:"week_period"`
	OrderCount   int            `json:"order_count"`
	TotalWorkPay float64        `json:"total_work_pay"`
	TotalPaid    float64        `json:"total_paid"`
	Remaining    float64        `json:"remaining"`
	Orders       []WeekOrderRef `json:"orders"`
}

// WeeklyPaySummary is the grand total across all of a worker's buckets.
type WeeklyPaySummary struct {
	TotalOrders    int     `json:"total_orders"`
	TotalWorkPay   float64 `json:"total_work_pay"`
	TotalPaid      float64 `json:"total_paid"`
	TotalRemaining float64 `json:"total_remaining"`
}

// WorkerWeeklyPayReport is the single-worker weekly pay response.
type WorkerWeeklyPayReport struct {
	WorkerName   string            `json:"worker_name"`
	TotalSummary WeeklyPaySummary  `json:"total_summary"`
	WeeklyData   []WeeklyPayBucket `json:"weekly_data"`
}

// AllWorkersWeekBucket is one calendar week in the all-workers pay overview
// (Monday-Sunday weeks; a different convention than the single-worker view,
// kept as-is on purpose).
type AllWorkersWeekBucket struct {
	WeekStart    string  `json:"week_start"`
	WeekEnd      string  `json:"week_end"`
	OrdersCount  int     `json:"orders_count"`
	TotalWorkPay float64 `json:"total_work_pay"`
	AmountPaid   float64 `json:"amount_paid"`
	RemainingPay float64 `json:"remaining_pay"`
}

// AllWorkersWeeklyPay is one worker's entry in the all-workers overview.
type AllWorkersWeeklyPay struct {
	WorkerID   int                    `json:"worker_id"`
	WorkerName string                 `json:"worker_name"`
	WeeklyData []AllWorkersWeekBucket `json:"weekly_data"`
}

// RollingPaySummary is the last-7-days pay snapshot for one worker:
// order count times the worker's generic rate, against what was paid out.
type RollingPaySummary struct {
	WorkerID       int     `json:"worker_id"`
	TotalWorkerPay float64 `json:"total_worker_pay"`
	TotalAmtPaid   float64 `json:"total_amt_paid"`
	RemainingPay   float64 `json:"remaining_pay"`
}

// ProfitReport is the revenue/expense/profit summary, either all-time or
// restricted to one calendar date. All amounts are rounded to 2 decimals.
type ProfitReport struct {
	Date           string  `json:"date"`
	TotalRevenue   float64 `json:"total_revenue"`
	DailyExpenses  float64 `json:"daily_expenses"`
	WorkerExpenses float64 `json:"worker_expenses"`
	NetProfit      float64 `json:"net_profit"`
}

// CustomerInfo is the customer screen payload: stored measurements plus the
// customer's full order history, newest first.
type CustomerInfo struct {
	Measurements *Measurement  `json:"measurements"`
	OrderHistory []OrderDetail `json:"order_history"`
	CustomerName string        `json:"customer_name"`
	MobileNumber string        `json:"mobile_number"`
}
