// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Supported password hash schemes.
const (
	// HashSchemeSHA256 is an unsalted SHA-256 digest encoded as standard
	// base64. It is the default because existing account files use it.
	HashSchemeSHA256 = "sha256"

	// HashSchemeBcrypt is a salted, adaptive bcrypt hash.
	HashSchemeBcrypt = "bcrypt"
)

// ErrUnknownHashScheme is returned by [NewPasswordHasher] for an
// unsupported scheme name.
var ErrUnknownHashScheme = errors.New("unknown password hash scheme")

// PasswordHasher turns plaintext passwords into stored digests and checks
// candidates against them.
//
// Hash always uses the configured scheme. Check detects the scheme from the
// stored value itself, so accounts hashed with different schemes can live in
// the same store.
type PasswordHasher struct {
	scheme     string
	bcryptCost int
}

// NewPasswordHasher returns a hasher for scheme. bcryptCost is ignored by the
// sha256 scheme; a zero cost selects [bcrypt.DefaultCost].
func NewPasswordHasher(scheme string, bcryptCost int) (*PasswordHasher, error) {
	switch scheme {
	case "", HashSchemeSHA256:
		return &PasswordHasher{scheme: HashSchemeSHA256}, nil
	case HashSchemeBcrypt:
		if bcryptCost == 0 {
			bcryptCost = bcrypt.DefaultCost
		}
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
		return &PasswordHasher{scheme: HashSchemeBcrypt, bcryptCost: bcryptCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHashScheme, scheme)
	}
}

// Scheme returns the scheme used for new hashes.
func (h *PasswordHasher) Scheme() string {
	return h.scheme
}

// Hash returns the stored representation of password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	if h.scheme == HashSchemeBcrypt {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
		if err != nil {
			return "", fmt.Errorf("error hashing password with bcrypt: %w", err)
		}
		return string(hashed), nil
	}

	return SHA256Base64(password), nil
}

// Check reports whether password matches the stored hash.
func (h *PasswordHasher) Check(hashed, password string) bool {
	if isBcryptHash(hashed) {
		return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
	}

	candidate := SHA256Base64(password)
	return subtle.ConstantTimeCompare([]byte(hashed), []byte(candidate)) == 1
}

// SHA256Base64 returns base64(sha256(utf8(s))).
func SHA256Base64(s string) string {
	sum := sha256.Sum256([]byte(s))
	return base64.StdEncoding.EncodeToString(sum[:])
}

func isBcryptHash(hashed string) bool {
	return strings.HasPrefix(hashed, "$2a$") ||
		strings.HasPrefix(hashed, "$2b$") ||
		strings.HasPrefix(hashed, "$2y$")
}
