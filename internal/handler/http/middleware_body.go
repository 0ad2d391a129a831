// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/utils"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withBodyDecoding bounds the request body to the configured size and
// transparently inflates gzip-encoded bodies. Handlers then decode JSON with
// [Handler.decodeJSON].
func (h *Handler) withBodyDecoding(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody {
			next.ServeHTTP(w, r)
			return
		}

		if h.server.MaxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, h.server.MaxBodyBytes)
		}

		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(r.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				logger.FromRequest(r).Warn().Err(err).Msg("request body is not valid gzip")
				utils.WriteError(w, ErrInvalidGzipBody.Error(), http.StatusBadRequest)
				return
			}

			body := r.Body
			r.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() error {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
					return body.Close()
				},
			}
			r.Header.Del("Content-Encoding")
		}

		next.ServeHTTP(w, r)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func() error
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		return w.OnClose()
	}
	return nil
}

// decodeJSON reads exactly one JSON document from the request body into v.
// On failure the response is already written and false is returned.
func (h *Handler) decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := utils.DecodeJSON(r.Body, v)
	if err == nil {
		return true
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		writeError(w, r, newStatusError(http.StatusRequestEntityTooLarge, ErrBodyTooLarge), "request body too large")
	case errors.Is(err, gzip.ErrChecksum), errors.Is(err, gzip.ErrHeader):
		writeError(w, r, badRequest(ErrInvalidGzipBody), "request body is not valid gzip")
	default:
		writeError(w, r, &StatusError{Status: http.StatusBadRequest, Message: ErrInvalidJSON.Error(), Err: err}, "invalid JSON was passed")
	}
	return false
}
