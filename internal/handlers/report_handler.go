package handlers

import (
	"context"
	"net/http"
	"strconv"

	"tailor-backend/internal/services"

	"github.com/gorilla/mux"
)

type ReportHandler struct {
	Payroll *services.PayrollService
	Profit  *services.ProfitService
}

func NewReportHandler(payroll *services.PayrollService, profit *services.ProfitService) *ReportHandler {
	return &ReportHandler{Payroll: payroll, Profit: profit}
}

// AllWorkersWeeklyPay serves the all-workers overview (Monday-starting weeks).
func (h *ReportHandler) AllWorkersWeeklyPay(w http.ResponseWriter, r *http.Request) {
	report, err := h.Payroll.AllWorkersWeeklyPay(context.Background())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// WorkerWeeklyPay serves the single-worker report (Sunday-starting weeks).
func (h *ReportHandler) WorkerWeeklyPay(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.Atoi(mux.Vars(r)["worker_id"])
	if err != nil {
		http.Error(w, "Invalid worker ID", http.StatusBadRequest)
		return
	}

	report, err := h.Payroll.WorkerWeeklyPay(context.Background(), workerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// RollingPay serves the last-7-days snapshot for one worker.
func (h *ReportHandler) RollingPay(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.Atoi(mux.Vars(r)["worker_id"])
	if err != nil {
		http.Error(w, "Invalid worker ID", http.StatusBadRequest)
		return
	}

	summary, err := h.Payroll.RollingPay(context.Background(), workerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *ReportHandler) CalculateProfit(w http.ResponseWriter, r *http.Request) {
	report, err := h.Profit.CalculateProfit(context.Background(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}
