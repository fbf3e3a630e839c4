package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"tailor-backend/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// writeServiceError maps service errors onto HTTP statuses: not-found to 404,
// rejected payloads to 400, everything else to 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, "Not found", http.StatusNotFound)
	case errors.As(err, &vErr):
		http.Error(w, vErr.Message, http.StatusBadRequest)
	default:
		log.Printf("[HTTP] Internal error: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
