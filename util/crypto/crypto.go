// Package crypto provides password hashing and verification.
package crypto

import (
	"crypto/subtle"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// hashPrefixes identify stored values produced by an adaptive hash algorithm.
// Anything else is treated as a legacy pre-migration value.
var hashPrefixes = []string{"$2a$", "$2b$", "$2y$", "$argon2"}

// HashPasswordAsBcrypt generates a bcrypt hash of the given password.
func HashPasswordAsBcrypt(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash verifies if the given password matches the bcrypt hash.
func CheckPasswordHash(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// VerifyPassword checks a plaintext password against the stored credential.
//
// The stored value is normally a bcrypt hash. Installations migrated from the
// old site may still carry plaintext rows; those are compared in constant
// time so existing users can log in until their password is rewritten as a
// hash. New and updated passwords must always be stored hashed.
func VerifyPassword(plain, stored string) bool {
	if stored == "" {
		return false
	}
	if CheckPasswordHash(stored, plain) {
		return true
	}
	if LooksLikeHash(stored) {
		// hashed credential, verification failed
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(plain)) == 1
}

// LooksLikeHash reports whether the stored value is structurally an adaptive
// hash rather than a legacy plaintext credential.
func LooksLikeHash(stored string) bool {
	for _, prefix := range hashPrefixes {
		if strings.HasPrefix(stored, prefix) {
			return true
		}
	}
	return false
}
