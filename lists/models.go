package lists

import "time"

// List is a named collection of items owned by exactly one user. The owner
// id stays server-side: responses never reveal which user a list belongs
// to, and every query is already scoped to the caller.
type List struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	UserID    int64     `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
