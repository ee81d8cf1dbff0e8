package items

import "time"

// Item is a titled task with a completion flag, belonging to exactly one
// list. Its effective owner is the owning list's owner; there is no direct
// user reference, so every ownership check joins through todo_lists.
type Item struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	ListID    int64     `json:"list_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
