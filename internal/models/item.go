package models

import "time"

// Item maps to a row in the items table. Rows are cascade-deleted with the
// owning user.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateItemInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type UpdateItemInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

func (in UpdateItemInput) Empty() bool {
	return in.Title == nil && in.Description == nil
}

// ItemFilters selects items for listing.
type ItemFilters struct {
	Q      string
	UserID string
}
