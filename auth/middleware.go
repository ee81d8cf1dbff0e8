package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/httputil"
)

// UserFinder is the narrow lookup the middleware needs to resolve a token
// subject to an existing account. Service satisfies it.
type UserFinder interface {
	GetUserByID(ctx context.Context, userID int64) (*User, error)
}

// Middleware returns a handler wrapper that authenticates every request:
// it extracts the bearer token from the Authorization header, validates it,
// resolves the subject to an existing user, and stores the user id in the
// request context. Any failure short-circuits with 401 before the protected
// handler runs.
//
// A token whose subject no longer exists is rejected with the same response
// as an invalid token, so callers cannot tell "user gone" from "token bad".
func Middleware(tokens *TokenService, users UserFinder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				httputil.WriteError(w, r, apperror.NewAuthError("authorization header is missing", nil))
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				httputil.WriteError(w, r, apperror.NewAuthError("authorization header format must be Bearer {token}", nil))
				return
			}

			userID, err := tokens.Validate(parts[1])
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}

			// The subject must resolve to a currently-existing user on
			// every request; tokens outlive deleted accounts only
			// cryptographically.
			if _, err := users.GetUserByID(r.Context(), userID); err != nil {
				if apperror.IsNotFound(err) {
					err = apperror.NewAuthError(invalidTokenMessage, nil)
				}
				httputil.WriteError(w, r, err)
				return
			}

			ctx := ContextWithUserID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
