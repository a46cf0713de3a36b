package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// Kind identifies one of the entity types held by the object store.
type Kind string

const (
	KindUser    Kind = "User"
	KindAmenity Kind = "Amenity"
	KindPlace   Kind = "Place"
	KindReview  Kind = "Review"
)

// Entity is the closed contract shared by User, Amenity, Place and Review.
// Updates arrive as decoded JSON field maps; Apply merges them into the
// entity (unknown keys are ignored) and Validate checks the merged result.
type Entity interface {
	EntityID() string
	EntityKind() Kind

	// Validate checks the entity's current field values and returns a
	// validation error on the first violated rule.
	Validate() error

	// Apply merges a field map into the entity. Values that cannot be
	// coerced to the field's type produce a validation error; the entity
	// may be partially modified on failure, so callers apply to a clone.
	Apply(updates map[string]any) error

	// Clone returns an independent copy used for merge-then-validate
	// updates.
	Clone() Entity

	// Touch refreshes the update timestamp.
	Touch()
}

// Base carries the identity contract shared by all entities: a unique id
// assigned at creation plus creation and update timestamps.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newBase() Base {
	now := time.Now().UTC()
	return Base{
		ID:        uuid.New().String(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// EntityID returns the entity's unique identifier.
func (b *Base) EntityID() string {
	return b.ID
}

// Touch refreshes the update timestamp.
func (b *Base) Touch() {
	b.UpdatedAt = time.Now().UTC()
}

func stringValue(v any, field string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", apperrors.NewValidationError(fmt.Sprintf("%s must be a string", field))
	}
	return s, nil
}

func floatValue(v any, field string) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err == nil {
			return f, nil
		}
	}
	return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be a number", field))
}

// intValue accepts integral floats because JSON decoding turns every number
// into a float64.
func intValue(v any, field string) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if math.Trunc(n) == n {
			return int(n), nil
		}
	case json.Number:
		i, err := n.Int64()
		if err == nil {
			return int(i), nil
		}
	}
	return 0, apperrors.NewValidationError(fmt.Sprintf("%s must be an integer", field))
}

func stringListValue(v any, field string) ([]string, error) {
	switch list := v.(type) {
	case nil:
		return []string{}, nil
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a list of strings", field))
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, apperrors.NewValidationError(fmt.Sprintf("%s must be a list of strings", field))
}

// dedup removes duplicate ids while keeping first-seen order.
func dedup(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		cleaned = append(cleaned, id)
	}
	return cleaned
}
