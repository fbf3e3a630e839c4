package handlers

import (
	"context"
	"net/http"
	"strconv"

	"tailor-backend/internal/metrics"
	"tailor-backend/internal/services"

	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	Service *services.NotificationService
}

func NewNotificationHandler(service *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// NotifyOrderReady sends the order-ready WhatsApp message to the customer on
// the order's bill.
func (h *NotificationHandler) NotifyOrderReady(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	if err := h.Service.NotifyOrderReady(context.Background(), id); err != nil {
		metrics.NotificationsSentTotal.WithLabelValues("failed").Inc()
		writeServiceError(w, err)
		return
	}

	metrics.NotificationsSentTotal.WithLabelValues("sent").Inc()
	respondJSON(w, http.StatusOK, map[string]string{"message": "Notification sent"})
}
