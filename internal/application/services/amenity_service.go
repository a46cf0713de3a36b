package services

import (
	"context"

	"github.com/stayhub/stayhub/internal/domain/entities"
	"github.com/stayhub/stayhub/internal/domain/repositories"
)

// AmenityService handles amenity lifecycle operations over the object store.
type AmenityService struct {
	store repositories.Store
}

// NewAmenityService creates a new amenity service.
func NewAmenityService(store repositories.Store) *AmenityService {
	return &AmenityService{store: store}
}

// Create builds an amenity from a field map and stores it.
func (s *AmenityService) Create(ctx context.Context, data map[string]any) (*entities.Amenity, error) {
	amenity := entities.NewAmenity()
	if err := amenity.Apply(pick(data, "name")); err != nil {
		return nil, err
	}
	stored, err := s.store.Add(ctx, amenity)
	if err != nil {
		return nil, err
	}
	return stored.(*entities.Amenity), nil
}

// List returns all amenities.
func (s *AmenityService) List(ctx context.Context) ([]*entities.Amenity, error) {
	all, err := s.store.All(ctx, entities.KindAmenity)
	if err != nil {
		return nil, err
	}
	amenities := make([]*entities.Amenity, 0, len(all))
	for _, entity := range all {
		amenities = append(amenities, entity.(*entities.Amenity))
	}
	return amenities, nil
}

// Get retrieves an amenity by id.
func (s *AmenityService) Get(ctx context.Context, id string) (*entities.Amenity, error) {
	entity, err := s.store.Get(ctx, entities.KindAmenity, id)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.Amenity), nil
}

// Update applies a partial update to an amenity.
func (s *AmenityService) Update(ctx context.Context, id string, data map[string]any) (*entities.Amenity, error) {
	entity, err := s.store.Update(ctx, entities.KindAmenity, id, pick(data, "name"))
	if err != nil {
		return nil, err
	}
	return entity.(*entities.Amenity), nil
}

// Delete removes an amenity. Places referencing it keep the id; the
// dangling reference makes the place's extended view unresolvable.
func (s *AmenityService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, entities.KindAmenity, id)
}
