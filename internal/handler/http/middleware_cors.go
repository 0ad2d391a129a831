// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS answers preflight requests and decorates every response with the
// configured cross-origin headers.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cors.AllowedOrigins,
		AllowedMethods: h.cors.AllowedMethods,
		AllowedHeaders: h.cors.AllowedHeaders,
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         h.cors.MaxAge,
	})
}
