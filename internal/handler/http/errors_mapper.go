package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

// errorStatuses is checked in order; the first sentinel found in the chain
// decides the status.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidProductID, http.StatusBadRequest},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrPasswordHashing, http.StatusInternalServerError},

	{store.ErrEmailAlreadyExists, http.StatusConflict},
	{store.ErrDuplicate, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrProductNotFound, http.StatusNotFound},
	{store.ErrInvalidData, http.StatusBadRequest},
	{store.ErrAcquiringSession, http.StatusServiceUnavailable},
	{store.ErrStoreUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Status
	}

	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns what the client is told about err. Server-side
// failures are reduced to the status text.
func messageFromError(err error, status int) string {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Message
	}

	switch {
	case status == http.StatusServiceUnavailable:
		return ErrDatabaseUnavailable.Error()
	case status >= http.StatusInternalServerError:
		return http.StatusText(status)
	}

	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		if e.err == service.ErrInvalidDataProvided {
			// validation details are useful to the client
			return err.Error()
		}
		return e.err.Error()
	}
	return err.Error()
}

// writeError logs err with msg and answers the request with the mapped
// status in the {"error": "..."} envelope.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(msg)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(msg)
	}

	utils.WriteError(w, messageFromError(err, status), status)
}
