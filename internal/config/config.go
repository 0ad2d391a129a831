// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"net/url"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-storefront server. It aggregates all sub-configurations and is
// populated by merging defaults with values from a .env file, environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing parameters.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds the listening address and request limits.
	Server Server

	// CORS holds the cross-origin policy applied to every route.
	CORS CORS `envPrefix:"CORS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// issuance and password hashing.
type App struct {
	// TokenSignKey is the secret used to sign and verify bearer tokens.
	// Env: JWT_KEY
	TokenSignKey string `env:"JWT_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// checked on every authenticated request.
	// Env: JWT_ISSUER
	TokenIssuer string `env:"JWT_ISSUER"`

	// TokenDuration specifies how long a token remains valid after issuance.
	// Env: JWT_DURATION
	TokenDuration time.Duration `env:"JWT_DURATION"`

	// PasswordHashCost is the bcrypt work factor.
	// Env: BCRYPT_COST
	PasswordHashCost int `env:"BCRYPT_COST"`

	// LogLevel is the minimal zerolog level (e.g. "debug", "info").
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and limit settings for the inbound HTTP transport.
type Server struct {
	// Host is the interface the HTTP server binds to. Empty means all.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`

	// MaxBodyBytes caps the size of a request body.
	// Env: SERVER_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"SERVER_MAX_BODY_BYTES"`
}

// Address returns the host:port pair the HTTP server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection, pool and session settings for PostgreSQL.
type DB struct {
	// DSN, when set, is used verbatim and takes precedence over the
	// individual connection fields.
	// Env: DB_DSN
	DSN string `env:"DSN"`

	// Env: DB_HOST
	Host string `env:"HOST"`
	// Env: DB_PORT
	Port int `env:"PORT"`
	// Env: DB_USER
	User string `env:"USER"`
	// Env: DB_PASSWORD
	Password string `env:"PASSWORD"`
	// Env: DB_NAME
	Name string `env:"NAME"`
	// Env: DB_SSL_MODE
	SSLMode string `env:"SSL_MODE"`

	// MaxOpenConns is the upper bound of the connection pool.
	// Env: DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`

	// MaxIdleConns is the number of idle connections kept in the pool.
	// Env: DB_MAX_IDLE_CONNS
	MaxIdleConns int `env:"MAX_IDLE_CONNS"`

	// ConnMaxLifetime recycles pooled connections after this duration.
	// Env: DB_CONN_MAX_LIFETIME
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME"`

	// AcquireTimeout bounds checking a session out of the pool.
	// Env: DB_ACQUIRE_TIMEOUT
	AcquireTimeout time.Duration `env:"ACQUIRE_TIMEOUT"`

	// TimeZone is the fixed UTC offset (±HH:MM) applied to every session.
	// Env: DB_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`
}

// ConnectionString returns the DSN used to open the pool.
func (db DB) ConnectionString() string {
	if db.DSN != "" {
		return db.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(db.Host, strconv.Itoa(db.Port)),
		Path:   "/" + db.Name,
	}
	if db.User != "" {
		u.User = url.UserPassword(db.User, db.Password)
	}
	if db.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{db.SSLMode}}.Encode()
	}

	return u.String()
}

// CORS holds the cross-origin resource sharing policy.
type CORS struct {
	// Env: CORS_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
	// Env: CORS_ALLOWED_METHODS (comma separated)
	AllowedMethods []string `env:"ALLOWED_METHODS"`
	// Env: CORS_ALLOWED_HEADERS (comma separated)
	AllowedHeaders []string `env:"ALLOWED_HEADERS"`
	// MaxAge is the preflight cache duration in seconds.
	// Env: CORS_MAX_AGE
	MaxAge int `env:"MAX_AGE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (later non-zero
// fields win):
//  0. Built-in defaults
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
