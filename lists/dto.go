// Package lists implements the List resource: creation, listing, retrieval,
// partial update, and cascading deletion, all scoped to the authenticated
// owner on every operation.
package lists

// CreateListRequest is the payload for creating a list.
type CreateListRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255" example:"groceries"`
}

// UpdateListRequest is the payload for partially updating a list. Omitted
// fields keep their prior values; a present-but-empty title is rejected.
type UpdateListRequest struct {
	Title *string `json:"title" validate:"omitempty,min=1,max=255" example:"weekend groceries"`
}
