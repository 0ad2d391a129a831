package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.services.ProductService.CreateProduct(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "product creation failed")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, r, err, "invalid product id")
		return
	}

	desc, err := h.services.ProductService.GetProductDescription(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "product lookup failed")
		return
	}

	utils.WriteJSON(w, desc, http.StatusOK)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, r, err, "invalid product id")
		return
	}

	var req models.UpdateProductRequest
	if !h.decodeJSON(w, r, &req) {
		return
	}

	res, err := h.services.ProductService.UpdateProductDescription(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err, "product update failed")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, r, err, "invalid product id")
		return
	}

	res, err := h.services.ProductService.DeleteProduct(r.Context(), id)
	if err != nil {
		writeError(w, r, err, "product deletion failed")
		return
	}

	utils.WriteJSON(w, res, http.StatusOK)
}

func productID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badRequest(ErrInvalidID)
	}
	return id, nil
}
