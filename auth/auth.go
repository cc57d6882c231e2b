// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingOperatorKey = errors.New("operator key required")
	ErrInvalidOperatorKey = errors.New("invalid operator key")
)

// GenerateOperatorKey creates a random key for the kiosk operator
func GenerateOperatorKey() (string, error) {
	b := make([]byte, 18) // 144 bits, 24 base64 chars
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate operator key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// ValidateOperatorKey compares the provided key against the configured one
// in constant time
func ValidateOperatorKey(provided, expected string) error {
	if provided == "" {
		return ErrMissingOperatorKey
	}
	if !hmac.Equal([]byte(provided), []byte(expected)) {
		return ErrInvalidOperatorKey
	}
	return nil
}

// HashClient creates a one-way hash of a client address so logs can tell
// kiosks apart without recording raw IPs
func HashClient(addr, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(addr))
	sum := h.Sum(nil)
	// First 16 hex chars (64 bits) is enough to tell clients apart
	return hex.EncodeToString(sum[:8])
}
