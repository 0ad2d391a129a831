// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

// timeZoneOffset matches a fixed UTC offset such as "-08:00" or "+05:30".
var timeZoneOffset = regexp.MustCompile(`^[+-](0\d|1[0-4]):[0-5]\d$`)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of
// the ErrInvalid*Configs sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: JWT_KEY is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost must be in range %d..%d",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	db := cfg.Storage.DB
	if db.DSN == "" && (db.Host == "" || db.Name == "") {
		return fmt.Errorf("%w: either DB_DSN or DB_HOST and DB_NAME are required", ErrInvalidStorageConfigs)
	}
	if !timeZoneOffset.MatchString(db.TimeZone) {
		return fmt.Errorf("%w: time zone %q is not a ±HH:MM offset", ErrInvalidStorageConfigs, db.TimeZone)
	}
	if db.AcquireTimeout <= 0 {
		return fmt.Errorf("%w: acquire timeout must be positive", ErrInvalidStorageConfigs)
	}

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d is out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max body bytes must be positive", ErrInvalidServerConfigs)
	}

	return nil
}
