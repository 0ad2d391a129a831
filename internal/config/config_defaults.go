package config

import (
	"net/http"
	"time"
)

// defaultConfig returns the values every other source is merged onto.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      "go-storefront",
			TokenDuration:    24 * time.Hour,
			PasswordHashCost: 10,
			LogLevel:         "debug",
		},
		Storage: Storage{
			DB: DB{
				Port:            5432,
				SSLMode:         "disable",
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: 30 * time.Minute,
				AcquireTimeout:  5 * time.Second,
				TimeZone:        "-08:00",
			},
		},
		Server: Server{
			Port:            8080,
			RequestTimeout:  60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			MaxBodyBytes:    1 << 20,
		},
		CORS: CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodPost,
				http.MethodPut,
				http.MethodDelete,
				http.MethodOptions,
			},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
			MaxAge:         300,
		},
	}
}
