package auth

import "time"

// User represents a registered account. HashedPassword is excluded from
// JSON so it can never appear in an API response.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
