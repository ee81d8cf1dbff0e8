package auth

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/todo-go/apperror"
)

func TestRegister_MultibytePasswordOver72Bytes(t *testing.T) {
	t.Parallel()

	// 30 runes but 120 bytes: passes the rune-counted struct tag, exceeds
	// bcrypt's 72-byte limit. Hashing fails before any store access, and the
	// failure must read as bad input, not a server error.
	svc := &authService{}
	_, err := svc.Register(context.Background(), RegisterRequest{
		Username: "alice",
		Password: strings.Repeat("🔒", 30),
	})

	require.Error(t, err)
	assert.True(t, apperror.IsValidationError(err))

	appErr, ok := apperror.FromError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "72 bytes")
}
