// Package cryptox derives and verifies local credential material. Passwords
// are never stored: each account keeps a random salt and an argon2id-derived
// verifier, and login recomputes the verifier from the submitted password.
package cryptox

import (
	"crypto/sha256"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"
)

// DeriveKey derives a 32-byte key from (password, salt) using argon2id.
func DeriveKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes a derived key into the value stored alongside the salt.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}

// VerifierMatches reports whether the password matches the stored
// (salt, verifier) pair. Comparison is constant-time.
func VerifierMatches(password, salt, verifier []byte) bool {
	candidate := MakeVerifier(DeriveKey(password, salt))
	return subtle.ConstantTimeCompare(candidate, verifier) == 1
}
