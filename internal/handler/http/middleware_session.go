// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

// withSession checks out one database session for the request and puts it
// into the request context. The session is released when the rest of the
// chain returns, panics included.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		session, err := h.sessions.Acquire(r.Context())
		if err != nil {
			log.Err(err).Msg("database session acquisition failed")
			utils.WriteError(w, ErrDatabaseUnavailable.Error(), http.StatusServiceUnavailable)
			return
		}
		defer func() {
			if err := session.Release(); err != nil {
				log.Err(err).Msg("database session release failed")
			}
		}()

		next.ServeHTTP(w, r.WithContext(store.WithSession(r.Context(), session)))
	})
}
