package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

func validReview() *Review {
	r := NewReview()
	r.Text = "great stay"
	r.UserID = "user-1"
	r.PlaceID = "place-1"
	return r
}

func TestReviewValidate(t *testing.T) {
	r := validReview()
	assert.NoError(t, r.Validate())

	r.Text = "  "
	err := r.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "text is required")

	r = validReview()
	r.UserID = ""
	assert.Contains(t, r.Validate().Error(), "user_id is required")

	r = validReview()
	r.PlaceID = ""
	assert.Contains(t, r.Validate().Error(), "place_id is required")
}

func TestReviewRatingRange(t *testing.T) {
	for _, rating := range []int{1, 3, 5} {
		r := validReview()
		r.Rating = &rating
		assert.NoError(t, r.Validate())
	}

	for _, rating := range []int{0, 6, -1} {
		r := validReview()
		r.Rating = &rating
		err := r.Validate()
		assert.Error(t, err)
		assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
		assert.Contains(t, err.Error(), "rating must be between 1 and 5")
	}
}

func TestReviewApplyRating(t *testing.T) {
	r := validReview()

	// JSON decodes integers as float64
	assert.NoError(t, r.Apply(map[string]any{"rating": float64(4)}))
	assert.NotNil(t, r.Rating)
	assert.Equal(t, 4, *r.Rating)

	err := r.Apply(map[string]any{"rating": 3.5})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rating must be an integer")

	assert.NoError(t, r.Apply(map[string]any{"rating": nil}))
	assert.Nil(t, r.Rating)
}

func TestReviewSerializationOmitsAbsentRating(t *testing.T) {
	r := validReview()

	data, err := json.Marshal(r)
	assert.NoError(t, err)

	var out map[string]any
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.NotContains(t, out, "rating")
	assert.Equal(t, "user-1", out["user_id"])
	assert.Equal(t, "place-1", out["place_id"])

	rating := 5
	r.Rating = &rating
	data, err = json.Marshal(r)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, 5.0, out["rating"])
}

func TestReviewCloneCopiesRating(t *testing.T) {
	r := validReview()
	rating := 4
	r.Rating = &rating

	clone := r.Clone().(*Review)
	*clone.Rating = 1

	assert.Equal(t, 4, *r.Rating)
}
