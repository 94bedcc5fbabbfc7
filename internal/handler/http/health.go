package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-card-validator/internal/utils"
	"github.com/MKhiriev/go-card-validator/models"
)

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:    models.HealthStatusHealthy,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}, http.StatusOK)
}
