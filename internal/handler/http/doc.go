// Package http implements the HTTP transport layer of the storefront.
//
// It exposes route wiring, request handlers, and middleware. Every request
// checks out one database session, passes CORS and body decoding, and (for
// everything except /register and /auth) bearer token verification before it
// is delegated to the service layer.
package http
