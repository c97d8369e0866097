package domain

import "fmt"

const (
	MinRating        = 1
	MaxRating        = 5
	MaxReviewTextLen = 2000
)

// Review is the transient value object for review validation.
type Review struct {
	Rating int
	Text   *string
}

// NewReview checks the full record; updates revalidate the merged result.
func NewReview(rating int, text *string) (Review, error) {
	r, err := ValidateRating(rating)
	if err != nil {
		return Review{}, err
	}
	t, err := NormalizeOptional("text", text, MaxReviewTextLen)
	if err != nil {
		return Review{}, err
	}
	return Review{Rating: r, Text: t}, nil
}

// ValidateRating bounds the rating to [MinRating, MaxRating] inclusive.
func ValidateRating(rating int) (int, error) {
	if rating < MinRating || rating > MaxRating {
		return 0, &DomainError{
			Kind:  InvalidRating,
			Field: "rating",
			Msg:   fmt.Sprintf("rating %d outside range [%d, %d]", rating, MinRating, MaxRating),
		}
	}
	return rating, nil
}
