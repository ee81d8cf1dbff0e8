package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/user/todo-go/apperror"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint
// violations. Username uniqueness is enforced by the store, so concurrent
// registrations of the same name are arbitrated here, not in application
// logic.
const pgUniqueViolation = "23505"

// Service exposes the authentication operations used by the handlers and
// the middleware.
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*User, error)
	Login(ctx context.Context, req LoginRequest) (*TokenResponse, error)
	GetUserByID(ctx context.Context, userID int64) (*User, error)
}

type authService struct {
	db     *pgxpool.Pool
	tokens *TokenService
}

// NewService creates the authentication service backed by the given pool
// and token service.
func NewService(db *pgxpool.Pool, tokens *TokenService) Service {
	return &authService{db: db, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password. A duplicate
// username surfaces as a ConflictError.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		// The struct tag caps the password at 72 runes, but bcrypt's limit
		// is 72 bytes, so a multibyte password can slip past validation and
		// fail here. That is the caller's input, not a server fault.
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, apperror.NewValidationError("password must not exceed 72 bytes", err)
		}
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
	}

	query := `INSERT INTO users (username, hashed_password)
	          VALUES ($1, $2)
	          RETURNING id, created_at`
	err = s.db.QueryRow(ctx, query, user.Username, user.HashedPassword).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "username") {
			return nil, apperror.NewConflictError("username already registered", nil)
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return user, nil
}

// Login verifies credentials and issues an access token. Unknown username
// and wrong password produce the same error so the response does not reveal
// which was incorrect.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	var user User
	query := `SELECT id, username, hashed_password, created_at FROM users WHERE username = $1`
	err := s.db.QueryRow(ctx, query, req.Username).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewAuthError("invalid username or password", nil)
		}
		log.Printf("database error fetching user for login: %v", err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewAuthError("invalid username or password", nil)
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}

	return &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

// GetUserByID retrieves a user by primary key.
func (s *authService) GetUserByID(ctx context.Context, userID int64) (*User, error) {
	var user User
	query := `SELECT id, username, hashed_password, created_at FROM users WHERE id = $1`
	err := s.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}
