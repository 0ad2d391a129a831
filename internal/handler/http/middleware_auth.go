package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and, on success, stores the decoded
// claims in the request context (see [utils.WithClaims]) before delegating to
// the next handler.
//
// Requests are rejected with 401 Unauthorized when the header is absent, is
// not of the form "Bearer <token>", or carries an expired or otherwise invalid
// token. Token failures are logged with event=jwt-error.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Warn().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Warn().Err(err).Send()
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Str("event", "jwt-error").Msg("token rejected")

			msg := service.ErrTokenIsExpiredOrInvalid.Error()
			if errors.Is(err, service.ErrTokenIsExpired) {
				msg = service.ErrTokenIsExpired.Error()
			}
			utils.WriteError(w, msg, http.StatusUnauthorized)
			return
		}

		claims := token.Claims
		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, &claims)))
	})
}
