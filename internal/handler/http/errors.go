// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when the request body is not a single valid
	// JSON document of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when the request body exceeds the
	// configured limit.
	ErrBodyTooLarge = errors.New("request body is too large")

	// ErrInvalidGzipBody is returned when a body announced as gzip cannot be
	// decompressed.
	ErrInvalidGzipBody = errors.New("invalid gzip data")

	ErrInvalidID = errors.New("id must be a positive integer")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")

	ErrDatabaseUnavailable = errors.New("database unavailable")
)

// StatusError is an error that already knows the HTTP status it should be
// answered with and the message the client may see.
type StatusError struct {
	Status  int
	Message string
	Err     error
}

func newStatusError(status int, err error) *StatusError {
	return &StatusError{Status: status, Message: err.Error(), Err: err}
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return e.Err.Error()
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

func badRequest(err error) *StatusError {
	return newStatusError(http.StatusBadRequest, err)
}
