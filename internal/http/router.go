package http

import (
	"tailor-backend/internal/handlers"
	"tailor-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	billHandler *handlers.BillHandler,
	customerHandler *handlers.CustomerHandler,
	orderHandler *handlers.OrderHandler,
	workerHandler *handlers.WorkerHandler,
	expenseHandler *handlers.ExpenseHandler,
	reportHandler *handlers.ReportHandler,
	notificationHandler *handlers.NotificationHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.MetricsMiddleware)

	// Billing
	r.HandleFunc("/api/new-bill", billHandler.CreateBill).Methods("POST")
	r.HandleFunc("/api/bills/{id}/pdf", billHandler.BillPDF).Methods("GET")

	// Customer info
	r.HandleFunc("/api/customer-info/{mobile}", customerHandler.GetCustomerInfo).Methods("GET")
	r.HandleFunc("/api/customer-info/{mobile}", customerHandler.UpdateMeasurements).Methods("PUT")

	// Orders
	r.HandleFunc("/api/orders", orderHandler.ListOrders).Methods("GET")
	r.HandleFunc("/api/orders/search", orderHandler.SearchOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", orderHandler.UpdateStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/payment-status", orderHandler.UpdatePaymentStatus).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/payment-mode", orderHandler.UpdatePaymentMode).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/update-advance-amount", orderHandler.UpdateAdvanceAmount).Methods("POST")
	r.HandleFunc("/api/orders/{id}/update-total-amount", orderHandler.UpdateTotalAmount).Methods("POST")
	r.HandleFunc("/api/orders/bill/{bill_id}/update-status", orderHandler.UpdateStatusByBill).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/assign-workers", orderHandler.AssignWorkers).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/notify", notificationHandler.NotifyOrderReady).Methods("POST")
	r.HandleFunc("/api/worker-orders", orderHandler.WorkerOrders).Methods("GET")

	// Workers
	r.HandleFunc("/api/workers", workerHandler.CreateWorkers).Methods("POST")
	r.HandleFunc("/api/workers", workerHandler.ListWorkers).Methods("GET")
	r.HandleFunc("/api/workers/{id}", workerHandler.DeleteWorker).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/worker-expense", expenseHandler.AddWorkerExpense).Methods("POST")
	r.HandleFunc("/api/worker-expenses", expenseHandler.ListWorkerExpenses).Methods("GET")
	r.HandleFunc("/api/daily_expenses", expenseHandler.AddDailyExpense).Methods("POST")
	r.HandleFunc("/api/daily_expenses", expenseHandler.ListDailyExpenses).Methods("GET")

	// Reports
	r.HandleFunc("/api/worker-weekly-pay", reportHandler.AllWorkersWeeklyPay).Methods("GET")
	r.HandleFunc("/api/weekly-pay/{worker_id}", reportHandler.WorkerWeeklyPay).Methods("GET")
	r.HandleFunc("/api/weekly-pay/{worker_id}/current", reportHandler.RollingPay).Methods("GET")
	r.HandleFunc("/api/calculate-profit", reportHandler.CalculateProfit).Methods("GET")

	// Ops
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
