package services

import (
	"context"
	"fmt"

	"github.com/stayhub/stayhub/internal/domain/entities"
	"github.com/stayhub/stayhub/internal/domain/repositories"
	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// PlaceService handles place lifecycle operations and enforces the
// cross-entity rules the store alone cannot: the owner and every referenced
// amenity must exist.
type PlaceService struct {
	store repositories.Store
}

// NewPlaceService creates a new place service.
func NewPlaceService(store repositories.Store) *PlaceService {
	return &PlaceService{store: store}
}

// Create builds a place from a field map and stores it. The owner and all
// referenced amenities must exist; review_ids always starts empty and is
// never taken from the payload.
func (s *PlaceService) Create(ctx context.Context, data map[string]any) (*entities.Place, error) {
	ownerID, err := requiredString(data["owner_id"], "owner_id")
	if err != nil {
		return nil, err
	}
	if !s.store.Exists(ctx, entities.KindUser, ownerID) {
		return nil, apperrors.NewNotFoundError("owner not found")
	}

	amenityIDs, err := s.resolveAmenityIDs(ctx, data["amenity_ids"])
	if err != nil {
		return nil, err
	}

	place := entities.NewPlace()
	if err := place.Apply(pick(data, "title", "description", "price", "latitude", "longitude")); err != nil {
		return nil, err
	}
	place.OwnerID = ownerID
	place.AmenityIDs = amenityIDs

	stored, err := s.store.Add(ctx, place)
	if err != nil {
		return nil, err
	}
	return stored.(*entities.Place), nil
}

// List returns all places.
func (s *PlaceService) List(ctx context.Context) ([]*entities.Place, error) {
	all, err := s.store.All(ctx, entities.KindPlace)
	if err != nil {
		return nil, err
	}
	places := make([]*entities.Place, 0, len(all))
	for _, entity := range all {
		places = append(places, entity.(*entities.Place))
	}
	return places, nil
}

// Get retrieves a place by id.
func (s *PlaceService) Get(ctx context.Context, id string) (*entities.Place, error) {
	entity, err := s.store.Get(ctx, entities.KindPlace, id)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.Place), nil
}

// Update applies a partial update to a place. Ownership and amenity
// references present in the payload are re-validated exactly as on create.
func (s *PlaceService) Update(ctx context.Context, id string, data map[string]any) (*entities.Place, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	updates := pick(data, "title", "description", "price", "latitude", "longitude")

	if raw, ok := data["owner_id"]; ok {
		ownerID, err := requiredString(raw, "owner_id")
		if err != nil {
			return nil, err
		}
		if !s.store.Exists(ctx, entities.KindUser, ownerID) {
			return nil, apperrors.NewNotFoundError("owner not found")
		}
		updates["owner_id"] = ownerID
	}

	if raw, ok := data["amenity_ids"]; ok {
		amenityIDs, err := s.resolveAmenityIDs(ctx, raw)
		if err != nil {
			return nil, err
		}
		updates["amenity_ids"] = amenityIDs
	}

	entity, err := s.store.Update(ctx, entities.KindPlace, id, updates)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.Place), nil
}

// Delete removes a place. Reviews referencing it keep their place_id; the
// review listing operations resolve ids defensively.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, entities.KindPlace, id)
}

// GetDetails composes the extended view of a place: its serialized fields
// plus the owner and amenity projections and the currently resolvable
// reviews. A dangling owner or amenity reference fails the whole view;
// dangling review ids are skipped.
func (s *PlaceService) GetDetails(ctx context.Context, id string) (*entities.PlaceDetails, error) {
	place, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerEntity, err := s.store.Get(ctx, entities.KindUser, place.OwnerID)
	if err != nil {
		return nil, err
	}
	owner := ownerEntity.(*entities.User)

	amenities := make([]entities.AmenitySummary, 0, len(place.AmenityIDs))
	for _, amenityID := range place.AmenityIDs {
		entity, err := s.store.Get(ctx, entities.KindAmenity, amenityID)
		if err != nil {
			return nil, err
		}
		amenity := entity.(*entities.Amenity)
		amenities = append(amenities, entities.AmenitySummary{ID: amenity.ID, Name: amenity.Name})
	}

	reviews := make([]*entities.Review, 0, len(place.ReviewIDs))
	for _, reviewID := range place.ReviewIDs {
		if !s.store.Exists(ctx, entities.KindReview, reviewID) {
			continue
		}
		entity, err := s.store.Get(ctx, entities.KindReview, reviewID)
		if err != nil {
			continue
		}
		reviews = append(reviews, entity.(*entities.Review))
	}

	return &entities.PlaceDetails{
		Place: place,
		Owner: entities.OwnerSummary{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
		},
		Amenities: amenities,
		Reviews:   reviews,
	}, nil
}

func (s *PlaceService) resolveAmenityIDs(ctx context.Context, raw any) ([]string, error) {
	amenityIDs, err := stringIDList(raw, "amenity_ids")
	if err != nil {
		return nil, err
	}
	for _, amenityID := range amenityIDs {
		if !s.store.Exists(ctx, entities.KindAmenity, amenityID) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("amenity not found: %s", amenityID))
		}
	}
	return amenityIDs, nil
}
