// Package items implements the Item resource nested under lists: creation
// under an owned list, listing, partial update, and single-row deletion,
// with ownership always resolved through the owning list.
package items

// CreateItemRequest is the payload for creating an item. New items start
// uncompleted.
type CreateItemRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255" example:"buy milk"`
}

// UpdateItemRequest is the payload for partially updating an item. Omitted
// fields keep their prior values; a present-but-empty title is rejected.
type UpdateItemRequest struct {
	Title     *string `json:"title" validate:"omitempty,min=1,max=255" example:"buy oat milk"`
	Completed *bool   `json:"completed" example:"true"`
}
