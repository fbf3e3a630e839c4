package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"
)

type ExpenseHandler struct {
	Service *services.ExpenseService
}

func NewExpenseHandler(service *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Service: service}
}

func (h *ExpenseHandler) AddWorkerExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateWorkerExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	expense, err := h.Service.AddWorkerExpense(context.Background(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Worker expense added successfully",
		"id":      expense.ID,
	})
}

func (h *ExpenseHandler) ListWorkerExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListWorkerExpenses(context.Background())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}

func (h *ExpenseHandler) AddDailyExpense(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDailyExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	expense, err := h.Service.AddDailyExpense(context.Background(), &req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Daily expense added successfully",
		"id":      expense.ID,
	})
}

func (h *ExpenseHandler) ListDailyExpenses(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.Service.ListDailyExpenses(context.Background())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, expenses)
}
