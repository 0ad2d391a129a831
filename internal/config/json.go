package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		TokenSignKey     string   `json:"jwt_key"`
		TokenIssuer      string   `json:"jwt_issuer"`
		TokenDuration    Duration `json:"jwt_duration"`
		PasswordHashCost int      `json:"bcrypt_cost"`
		LogLevel         string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN             string   `json:"dsn"`
			Host            string   `json:"host"`
			Port            int      `json:"port"`
			User            string   `json:"user"`
			Password        string   `json:"password"`
			Name            string   `json:"name"`
			SSLMode         string   `json:"ssl_mode"`
			MaxOpenConns    int      `json:"max_open_conns"`
			MaxIdleConns    int      `json:"max_idle_conns"`
			ConnMaxLifetime Duration `json:"conn_max_lifetime"`
			AcquireTimeout  Duration `json:"acquire_timeout"`
			TimeZone        string   `json:"time_zone"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Host            string   `json:"host"`
		Port            int      `json:"port"`
		RequestTimeout  Duration `json:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout"`
		MaxBodyBytes    int64    `json:"max_body_bytes"`
	} `json:"server,omitempty"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
		AllowedMethods []string `json:"allowed_methods"`
		AllowedHeaders []string `json:"allowed_headers"`
		MaxAge         int      `json:"max_age"`
	} `json:"cors,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	db := jsonCfg.Storage.DB
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:     jsonCfg.App.TokenSignKey,
			TokenIssuer:      jsonCfg.App.TokenIssuer,
			TokenDuration:    time.Duration(jsonCfg.App.TokenDuration),
			PasswordHashCost: jsonCfg.App.PasswordHashCost,
			LogLevel:         jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:             db.DSN,
				Host:            db.Host,
				Port:            db.Port,
				User:            db.User,
				Password:        db.Password,
				Name:            db.Name,
				SSLMode:         db.SSLMode,
				MaxOpenConns:    db.MaxOpenConns,
				MaxIdleConns:    db.MaxIdleConns,
				ConnMaxLifetime: time.Duration(db.ConnMaxLifetime),
				AcquireTimeout:  time.Duration(db.AcquireTimeout),
				TimeZone:        db.TimeZone,
			},
		},
		Server: Server{
			Host:            jsonCfg.Server.Host,
			Port:            jsonCfg.Server.Port,
			RequestTimeout:  time.Duration(jsonCfg.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(jsonCfg.Server.ShutdownTimeout),
			MaxBodyBytes:    jsonCfg.Server.MaxBodyBytes,
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.CORS.AllowedOrigins,
			AllowedMethods: jsonCfg.CORS.AllowedMethods,
			AllowedHeaders: jsonCfg.CORS.AllowedHeaders,
			MaxAge:         jsonCfg.CORS.MaxAge,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
