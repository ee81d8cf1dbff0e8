package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/todo-go/apperror"
	"github.com/user/todo-go/config"
)

const tokenIssuer = "todo-go"

// invalidTokenMessage is the single client-facing reason for every token
// failure. Signature, structure, expiry, and claim problems are not
// distinguishable from the outside.
const invalidTokenMessage = "invalid or expired token"

// TokenService issues and validates signed, time-limited bearer tokens.
// Validation is stateless: expiry is the only invalidation mechanism, and
// no revocation store is consulted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a TokenService from the auth configuration.
func NewTokenService(cfg config.AuthConfig) *TokenService {
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.AccessTokenDuration,
	}
}

// Issue creates a token for userID with the configured default lifetime.
func (s *TokenService) Issue(userID int64) (string, error) {
	return s.IssueWithTTL(userID, s.ttl)
}

// IssueWithTTL creates an HS256-signed token whose subject claim is the
// decimal user id and whose expiry is now+ttl.
func (s *TokenService) IssueWithTTL(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    tokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Validate parses a token string and returns the subject user id. It fails
// with an AuthError when the signature does not verify, the structure is
// malformed, the token is expired, the signing method is not HMAC, or the
// subject claim is absent or not a positive integer.
func (s *TokenService) Validate(tokenString string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return 0, apperror.NewAuthError(invalidTokenMessage, err)
	}
	if !token.Valid {
		return 0, apperror.NewAuthError(invalidTokenMessage, nil)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID < 1 {
		return 0, apperror.NewAuthError(invalidTokenMessage, err)
	}
	return userID, nil
}
