// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// IDNumberLength is the fixed length of a national ID number on the voter roll.
const IDNumberLength = 8

var (
	ErrInvalidIDNumber = errors.New("invalid ID number format")
)

// NormalizeIDNumber trims surrounding whitespace and checks the ID number is
// exactly IDNumberLength ASCII digits.
func NormalizeIDNumber(idNumber string) (string, error) {
	idNumber = strings.TrimSpace(idNumber)
	if len(idNumber) != IDNumberLength {
		return "", ErrInvalidIDNumber
	}
	for i := 0; i < len(idNumber); i++ {
		if idNumber[i] < '0' || idNumber[i] > '9' {
			return "", ErrInvalidIDNumber
		}
	}
	return idNumber, nil
}

// MaskIDNumber keeps the first four characters of an ID number and masks the
// rest, so log lines can be correlated without recording the full number.
func MaskIDNumber(idNumber string) string {
	if len(idNumber) <= 4 {
		return strings.Repeat("*", len(idNumber))
	}
	return idNumber[:4] + strings.Repeat("*", len(idNumber)-4)
}

// HashIP creates a one-way hash of an IP address for privacy
// Includes salt to prevent rainbow table attacks
func HashIP(ip, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(ip))
	sum := h.Sum(nil)
	// Return first 16 hex chars (64 bits) - enough for deduplication
	return hex.EncodeToString(sum[:8])
}

// GenerateSalt returns byteLen random bytes, hex encoded.
func GenerateSalt(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}
