package entities

import (
	"strings"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// Review is a user's review of a place. Rating is optional; when present it
// must be between 1 and 5.
type Review struct {
	Base
	Text    string `json:"text"`
	Rating  *int   `json:"rating,omitempty"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// NewReview creates an empty review with a fresh identity.
func NewReview() *Review {
	return &Review{Base: newBase()}
}

// EntityKind returns KindReview.
func (r *Review) EntityKind() Kind {
	return KindReview
}

// Validate checks required fields and the rating range.
func (r *Review) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return apperrors.NewValidationError("text is required")
	}
	if r.Rating != nil && (*r.Rating < 1 || *r.Rating > 5) {
		return apperrors.NewValidationError("rating must be between 1 and 5")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return apperrors.NewValidationError("user_id is required")
	}
	if strings.TrimSpace(r.PlaceID) == "" {
		return apperrors.NewValidationError("place_id is required")
	}
	return nil
}

// Apply merges a field map into the review. Unknown keys are ignored. An
// explicit null rating clears the field.
func (r *Review) Apply(updates map[string]any) error {
	if v, ok := updates["text"]; ok {
		s, err := stringValue(v, "text")
		if err != nil {
			return err
		}
		r.Text = s
	}
	if v, ok := updates["rating"]; ok {
		if v == nil {
			r.Rating = nil
		} else {
			n, err := intValue(v, "rating")
			if err != nil {
				return err
			}
			r.Rating = &n
		}
	}
	if v, ok := updates["user_id"]; ok {
		s, err := stringValue(v, "user_id")
		if err != nil {
			return err
		}
		r.UserID = s
	}
	if v, ok := updates["place_id"]; ok {
		s, err := stringValue(v, "place_id")
		if err != nil {
			return err
		}
		r.PlaceID = s
	}
	return nil
}

// Clone returns an independent copy, including the rating pointer.
func (r *Review) Clone() Entity {
	c := *r
	if r.Rating != nil {
		rating := *r.Rating
		c.Rating = &rating
	}
	return &c
}
