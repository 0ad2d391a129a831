// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash of password using the given work
// factor. Each call produces a different hash for the same input.
//
// Parameters:
//
//	password - plain-text password
//	cost     - bcrypt work factor, within [bcrypt.MinCost, bcrypt.MaxCost]
//
// Example usage:
//
//	hash, err := utils.HashPassword("pw", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
//
// A mismatch is reported as (false, nil). A malformed hash is reported as an
// error so callers can tell a corrupt row apart from a wrong password.
func CheckPassword(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("error comparing password hash: %w", err)
	}
}
