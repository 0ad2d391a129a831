package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

func (h *Handler) createShippingAddress(w http.ResponseWriter, r *http.Request) {
	var req models.ShippingRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.services.ShippingService.CreateShippingAddress(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "shipping address creation failed")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}
