package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyPasswordBcrypt(t *testing.T) {
	hash, err := HashPasswordAsBcrypt("password1")
	assert.NoError(t, err)
	assert.True(t, LooksLikeHash(hash))

	assert.True(t, VerifyPassword("password1", hash))
	assert.False(t, VerifyPassword("password2", hash))
	assert.False(t, VerifyPassword("Password1", hash))
	assert.False(t, VerifyPassword("", hash))
}

func TestVerifyPasswordLegacyPlaintext(t *testing.T) {
	// rows written before the hash migration hold the raw value
	assert.True(t, VerifyPassword("s3cret", "s3cret"))
	assert.False(t, VerifyPassword("s3cret!", "s3cret"))
	assert.False(t, VerifyPassword("s3cre", "s3cret"))
	assert.False(t, VerifyPassword("S3cret", "s3cret"))
}

func TestVerifyPasswordEmptyStored(t *testing.T) {
	assert.False(t, VerifyPassword("anything", ""))
	assert.False(t, VerifyPassword("", ""))
}

func TestVerifyPasswordHashLikeValueNeverFallsBack(t *testing.T) {
	// looks like a hash, so the plaintext fallback must not kick in even
	// when the strings are equal
	stored := "$2a$10$notarealhashvalue"
	assert.False(t, VerifyPassword(stored, stored))
}

func TestLooksLikeHash(t *testing.T) {
	assert.True(t, LooksLikeHash("$2a$10$abc"))
	assert.True(t, LooksLikeHash("$2b$12$abc"))
	assert.True(t, LooksLikeHash("$2y$10$abc"))
	assert.True(t, LooksLikeHash("$argon2id$v=19$abc"))
	assert.False(t, LooksLikeHash("plaintext"))
	assert.False(t, LooksLikeHash("2a$10$abc"))
	assert.False(t, LooksLikeHash(""))
}
