package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	token, err := h.services.AuthService.RegisterUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	writeToken(w, token)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "user login failed")
		return
	}

	writeToken(w, token)
}

// writeToken answers with the signed token both as the JSON body and as an
// Authorization header.
func writeToken(w http.ResponseWriter, token models.Token) {
	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, token.SignedString, http.StatusOK)
}
