package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_VerifyRoundtrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPassword("correct horse battery staple", hash))
	assert.False(t, CheckPassword("wrong password", hash))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("same input")
	require.NoError(t, err)
	second, err := HashPassword("same input")
	require.NoError(t, err)

	// Two hashes of the same plaintext must differ, yet both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same input", first))
	assert.True(t, CheckPassword("same input", second))
}

func TestHashPassword_EmptyAndUnicode(t *testing.T) {
	t.Parallel()

	for _, plaintext := range []string{"", "pässwörd-日本語-🔒"} {
		hash, err := HashPassword(plaintext)
		require.NoError(t, err, "plaintext %q", plaintext)
		assert.True(t, CheckPassword(plaintext, hash), "plaintext %q", plaintext)
	}
}

func TestHashPassword_OverlongBytes(t *testing.T) {
	t.Parallel()

	// bcrypt counts bytes, not runes.
	_, err := HashPassword(strings.Repeat("🔒", 30))
	require.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	// A corrupt stored hash must fail verification, not panic.
	assert.False(t, CheckPassword("anything", "not-a-bcrypt-hash"))
	assert.False(t, CheckPassword("anything", ""))
}
