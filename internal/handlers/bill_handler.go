package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"tailor-backend/internal/metrics"
	"tailor-backend/internal/models"
	"tailor-backend/internal/pdf"
	"tailor-backend/internal/repositories"
	"tailor-backend/internal/services"

	"github.com/gorilla/mux"
)

type BillHandler struct {
	Service   *services.BillingService
	Customers *services.CustomerService
	BillRepo  *repositories.BillRepository
}

func NewBillHandler(service *services.BillingService, customers *services.CustomerService, billRepo *repositories.BillRepository) *BillHandler {
	return &BillHandler{Service: service, Customers: customers, BillRepo: billRepo}
}

func (h *BillHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req models.NewBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	bill, err := h.Service.CreateBill(context.Background(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	metrics.BillsCreatedTotal.Inc()
	metrics.OrdersReconciledTotal.Add(float64(bill.TotalQty))
	h.Customers.InvalidateCustomer(context.Background(), bill.MobileNumber)

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Bill created successfully",
		"bill_id": bill.ID,
	})
}

func (h *BillHandler) BillPDF(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "Invalid bill ID", http.StatusBadRequest)
		return
	}

	bill, err := h.BillRepo.GetByID(context.Background(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if bill == nil {
		http.Error(w, "Bill not found", http.StatusNotFound)
		return
	}

	data, err := pdf.RenderBill(bill)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="bill-%d.pdf"`, bill.ID))
	w.Write(data)
}
