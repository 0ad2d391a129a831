package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "validation error keeps details",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("email is required")),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data provided: email is required",
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "invalid email/password",
		},
		{
			name:       "wrapped not found",
			err:        fmt.Errorf("lookup: %w", store.ErrProductNotFound),
			wantStatus: http.StatusNotFound,
			wantMsg:    "product was not found",
		},
		{
			name:       "duplicate email",
			err:        fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists),
			wantStatus: http.StatusConflict,
			wantMsg:    "email already exists",
		},
		{
			name: "rejected value hides driver details",
			err: fmt.Errorf("%w: %w", store.ErrInvalidData,
				errors.New(`ERROR: null value in column "brands" of relation "products" violates not-null constraint (SQLSTATE 23502)`)),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data",
		},
		{
			name:       "invalid product id",
			err:        fmt.Errorf("get product: %w", service.ErrInvalidProductID),
			wantStatus: http.StatusBadRequest,
			wantMsg:    service.ErrInvalidProductID.Error(),
		},
		{
			name:       "session acquisition",
			err:        fmt.Errorf("%w: dial tcp", store.ErrAcquiringSession),
			wantStatus: http.StatusServiceUnavailable,
			wantMsg:    "database unavailable",
		},
		{
			name:       "statement failure hides details",
			err:        fmt.Errorf("%w: relation does not exist", store.ErrExecutingStatement),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "unknown error",
			err:        errors.New("surprise"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal Server Error",
		},
		{
			name:       "status error",
			err:        fmt.Errorf("wrapped: %w", badRequest(ErrInvalidID)),
			wantStatus: http.StatusBadRequest,
			wantMsg:    ErrInvalidID.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := statusFromError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, messageFromError(tt.err, status))
			}
		})
	}
}

func TestStatusError_Unwrap(t *testing.T) {
	err := badRequest(ErrInvalidJSON)

	assert.ErrorIs(t, err, ErrInvalidJSON)
	assert.Equal(t, ErrInvalidJSON.Error(), err.Error())
	assert.Equal(t, "only message", (&StatusError{Status: 400, Message: "only message"}).Error())
}
