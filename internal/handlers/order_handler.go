package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"

	"github.com/gorilla/mux"
)

type OrderHandler struct {
	Service *services.OrderService
}

func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{Service: service}
}

func orderID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["id"])
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	grouped, err := h.Service.ListGroupedByDueDate(context.Background())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, grouped)
}

func (h *OrderHandler) SearchOrders(w http.ResponseWriter, r *http.Request) {
	billNumber := r.URL.Query().Get("bill_number")

	orders, err := h.Service.SearchByBillNumber(context.Background(), billNumber)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if orders == nil {
		orders = []models.OrderDetail{}
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) WorkerOrders(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.Atoi(r.URL.Query().Get("worker_id"))
	if err != nil {
		http.Error(w, "worker_id parameter required", http.StatusBadRequest)
		return
	}

	orders, err := h.Service.ListByWorker(context.Background(), workerID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateStatus(context.Background(), id, req.Status); err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Status updated successfully"})
}

func (h *OrderHandler) UpdatePaymentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		PaymentStatus string `json:"payment_status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdatePaymentStatus(context.Background(), id, req.PaymentStatus); err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Payment status updated successfully"})
}

func (h *OrderHandler) UpdatePaymentMode(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		PaymentMode string `json:"payment_mode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdatePaymentMode(context.Background(), id, req.PaymentMode); err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Payment mode updated successfully"})
}

func (h *OrderHandler) UpdateAdvanceAmount(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		PaymentAmount float64 `json:"payment_amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateAdvanceAmount(context.Background(), id, req.PaymentAmount); err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Advance amount updated successfully"})
}

func (h *OrderHandler) UpdateTotalAmount(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		TotalAmt float64 `json:"total_amt"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Service.UpdateTotalAmount(context.Background(), id, req.TotalAmt); err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Total amount updated successfully"})
}

func (h *OrderHandler) UpdateStatusByBill(w http.ResponseWriter, r *http.Request) {
	billID, err := strconv.Atoi(mux.Vars(r)["bill_id"])
	if err != nil {
		http.Error(w, "Invalid bill ID", http.StatusBadRequest)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	count, err := h.Service.UpdateStatusByBill(context.Background(), billID, req.Status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":        "Orders updated successfully",
		"updated_orders": count,
	})
}

func (h *OrderHandler) AssignWorkers(w http.ResponseWriter, r *http.Request) {
	id, err := orderID(r)
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var req struct {
		WorkerIDs []int `json:"worker_ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	workPay, err := h.Service.AssignWorkers(context.Background(), id, req.WorkerIDs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":  "Workers assigned successfully",
		"Work_pay": workPay,
	})
}
