package entities

import (
	"strings"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// Amenity is a named feature a place can offer.
type Amenity struct {
	Base
	Name string `json:"name"`
}

// NewAmenity creates an empty amenity with a fresh identity.
func NewAmenity() *Amenity {
	return &Amenity{Base: newBase()}
}

// EntityKind returns KindAmenity.
func (a *Amenity) EntityKind() Kind {
	return KindAmenity
}

// Validate checks required fields.
func (a *Amenity) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return apperrors.NewValidationError("name is required")
	}
	return nil
}

// Apply merges a field map into the amenity. Unknown keys are ignored.
func (a *Amenity) Apply(updates map[string]any) error {
	if v, ok := updates["name"]; ok {
		s, err := stringValue(v, "name")
		if err != nil {
			return err
		}
		a.Name = s
	}
	return nil
}

// Clone returns an independent copy.
func (a *Amenity) Clone() Entity {
	c := *a
	return &c
}
