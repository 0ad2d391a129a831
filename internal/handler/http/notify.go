package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

func (h *Handler) notify(w http.ResponseWriter, r *http.Request) {
	var req models.NotifyRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.NotificationService.AddSaleAlerts(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "sale alerts were not stored")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
