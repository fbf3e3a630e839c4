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

type WorkerHandler struct {
	Service *services.WorkerService
}

func NewWorkerHandler(service *services.WorkerService) *WorkerHandler {
	return &WorkerHandler{Service: service}
}

// CreateWorkers accepts a JSON list of workers, the way the workers screen
// submits them even for a single row.
func (h *WorkerHandler) CreateWorkers(w http.ResponseWriter, r *http.Request) {
	var workers []*models.Worker
	if err := json.NewDecoder(r.Body).Decode(&workers); err != nil {
		http.Error(w, "Request body must be a list of workers", http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateWorkers(context.Background(), workers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]any{
		"message": "Workers added successfully",
		"workers": created,
	})
}

func (h *WorkerHandler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers, err := h.Service.List(context.Background())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, workers)
}

func (h *WorkerHandler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid worker ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.Delete(context.Background(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Worker deleted successfully"})
}
