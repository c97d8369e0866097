package models

import "time"

// Review maps to a row in the reviews table. Rows are cascade-deleted with
// their book.
type Review struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	Rating    int       `json:"rating"`
	Text      *string   `json:"text,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateReviewInput struct {
	Rating int     `json:"rating"`
	Text   *string `json:"text"`
}

type UpdateReviewInput struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

func (in UpdateReviewInput) Empty() bool {
	return in.Rating == nil && in.Text == nil
}

// ReviewFilters selects reviews for listing.
type ReviewFilters struct {
	BookID string
}
