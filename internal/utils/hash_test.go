// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("pw", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "pw" {
		t.Fatal("hash must not equal the plain-text password")
	}

	ok, err := CheckPassword(hash, "pw")
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}
}

func TestHashPassword_Salted(t *testing.T) {
	h1, _ := HashPassword("pw", bcrypt.MinCost)
	h2, _ := HashPassword("pw", bcrypt.MinCost)

	if h1 == h2 {
		t.Fatal("two hashes of the same password must differ")
	}
}

func TestHashPassword_EncodesCost(t *testing.T) {
	hash, err := HashPassword("pw", 10)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected parsable hash, got: %v", err)
	}
	if cost != 10 {
		t.Errorf("expected cost 10, got %d", cost)
	}
}

func TestHashPassword_TooLong(t *testing.T) {
	// bcrypt rejects inputs longer than 72 bytes.
	if _, err := HashPassword(strings.Repeat("x", 73), bcrypt.MinCost); err == nil {
		t.Fatal("expected error for password longer than 72 bytes")
	}
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, _ := HashPassword("pw", bcrypt.MinCost)

	ok, err := CheckPassword(hash, "other")
	if err != nil {
		t.Fatalf("expected no error on mismatch, got: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch")
	}
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	ok, err := CheckPassword("not-a-bcrypt-hash", "pw")
	if err == nil {
		t.Fatal("expected error for malformed hash")
	}
	if ok {
		t.Fatal("expected no match for malformed hash")
	}
}
