package entities

import (
	"strings"

	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// Place is a lodging listing owned by a user. AmenityIDs and ReviewIDs are
// denormalized id lists; ReviewIDs is maintained by the review cascade and
// never set directly by clients.
type Place struct {
	Base
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	OwnerID     string   `json:"owner_id"`
	AmenityIDs  []string `json:"amenity_ids"`
	ReviewIDs   []string `json:"review_ids"`
}

// NewPlace creates an empty place with a fresh identity and empty id lists.
func NewPlace() *Place {
	return &Place{
		Base:       newBase(),
		AmenityIDs: []string{},
		ReviewIDs:  []string{},
	}
}

// EntityKind returns KindPlace.
func (p *Place) EntityKind() Kind {
	return KindPlace
}

// Validate checks required fields and numeric ranges. As a side effect it
// collapses duplicate amenity and review ids, keeping first-seen order.
func (p *Place) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return apperrors.NewValidationError("title is required")
	}
	if p.Price <= 0 {
		return apperrors.NewValidationError("price must be > 0")
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return apperrors.NewValidationError("latitude must be between -90 and 90")
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return apperrors.NewValidationError("longitude must be between -180 and 180")
	}
	if strings.TrimSpace(p.OwnerID) == "" {
		return apperrors.NewValidationError("owner_id is required")
	}

	p.AmenityIDs = dedup(p.AmenityIDs)
	p.ReviewIDs = dedup(p.ReviewIDs)
	return nil
}

// Apply merges a field map into the place. Unknown keys are ignored.
func (p *Place) Apply(updates map[string]any) error {
	if v, ok := updates["title"]; ok {
		s, err := stringValue(v, "title")
		if err != nil {
			return err
		}
		p.Title = s
	}
	if v, ok := updates["description"]; ok {
		s, err := stringValue(v, "description")
		if err != nil {
			return err
		}
		p.Description = s
	}
	if v, ok := updates["price"]; ok {
		f, err := floatValue(v, "price")
		if err != nil {
			return err
		}
		p.Price = f
	}
	if v, ok := updates["latitude"]; ok {
		f, err := floatValue(v, "latitude")
		if err != nil {
			return err
		}
		p.Latitude = f
	}
	if v, ok := updates["longitude"]; ok {
		f, err := floatValue(v, "longitude")
		if err != nil {
			return err
		}
		p.Longitude = f
	}
	if v, ok := updates["owner_id"]; ok {
		s, err := stringValue(v, "owner_id")
		if err != nil {
			return err
		}
		p.OwnerID = s
	}
	if v, ok := updates["amenity_ids"]; ok {
		ids, err := stringListValue(v, "amenity_ids")
		if err != nil {
			return err
		}
		p.AmenityIDs = ids
	}
	if v, ok := updates["review_ids"]; ok {
		ids, err := stringListValue(v, "review_ids")
		if err != nil {
			return err
		}
		p.ReviewIDs = ids
	}
	return nil
}

// Clone returns an independent copy, including the id lists.
func (p *Place) Clone() Entity {
	c := *p
	c.AmenityIDs = make([]string, len(p.AmenityIDs))
	copy(c.AmenityIDs, p.AmenityIDs)
	c.ReviewIDs = make([]string, len(p.ReviewIDs))
	copy(c.ReviewIDs, p.ReviewIDs)
	return &c
}

// OwnerSummary is the minimal owner projection embedded in a place's
// extended representation.
type OwnerSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// AmenitySummary is the minimal amenity projection embedded in a place's
// extended representation.
type AmenitySummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PlaceDetails is the extended representation of a place: its serialized
// fields plus its owner, amenities and currently resolvable reviews.
type PlaceDetails struct {
	*Place
	Owner     OwnerSummary     `json:"owner"`
	Amenities []AmenitySummary `json:"amenities"`
	Reviews   []*Review        `json:"reviews"`
}
