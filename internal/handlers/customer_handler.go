package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"tailor-backend/internal/models"
	"tailor-backend/internal/services"

	"github.com/gorilla/mux"
)

type CustomerHandler struct {
	Service *services.CustomerService
}

func NewCustomerHandler(service *services.CustomerService) *CustomerHandler {
	return &CustomerHandler{Service: service}
}

func (h *CustomerHandler) GetCustomerInfo(w http.ResponseWriter, r *http.Request) {
	mobile := mux.Vars(r)["mobile"]

	info, err := h.Service.GetCustomerInfo(context.Background(), mobile)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (h *CustomerHandler) UpdateMeasurements(w http.ResponseWriter, r *http.Request) {
	mobile := mux.Vars(r)["mobile"]

	var incoming models.Measurement
	if err := json.NewDecoder(r.Body).Decode(&incoming); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateMeasurements(context.Background(), mobile, &incoming)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"message":      "Measurements updated successfully",
		"measurements": updated,
	})
}
