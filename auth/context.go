package auth

import "context"

// contextKey is a private type for context keys so values set by this
// package cannot collide with other packages.
type contextKey string

const userIDContextKey contextKey = "auth_user_id"

// ContextWithUserID returns a child context carrying the authenticated
// user's id. Set by the middleware after successful token validation.
func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDContextKey, userID)
}

// UserIDFromContext retrieves the authenticated user id stored by the
// middleware. The second return value is false when no identity is present.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDContextKey).(int64)
	return userID, ok
}
