package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayhub/stayhub/internal/adapters/memory"
	"github.com/stayhub/stayhub/internal/domain/entities"
	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

func seedUser(t *testing.T, store *memory.Store, email string) *entities.User {
	t.Helper()
	u := entities.NewUser()
	u.Email = email
	u.FirstName = "Ada"
	u.LastName = "Lovelace"
	u.Password = "secret"
	_, err := store.Add(context.Background(), u)
	require.NoError(t, err)
	return u
}

func seedAmenity(t *testing.T, store *memory.Store, name string) *entities.Amenity {
	t.Helper()
	a := entities.NewAmenity()
	a.Name = name
	_, err := store.Add(context.Background(), a)
	require.NoError(t, err)
	return a
}

func seedPlace(t *testing.T, store *memory.Store, svc *PlaceService, ownerID string) *entities.Place {
	t.Helper()
	place, err := svc.Create(context.Background(), map[string]any{
		"title":    "Beach flat",
		"price":    float64(120),
		"owner_id": ownerID,
	})
	require.NoError(t, err)
	return place
}

func TestPlaceServiceCreate(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)

	owner := seedUser(t, store, "owner@b.com")
	wifi := seedAmenity(t, store, "Wifi")

	place, err := svc.Create(ctx, map[string]any{
		"title":       "Beach flat",
		"description": "sea view",
		"price":       float64(120),
		"latitude":    6.45,
		"longitude":   3.39,
		"owner_id":    owner.ID,
		"amenity_ids": []any{wifi.ID},
		"review_ids":  []any{"smuggled"},
	})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, place.OwnerID)
	assert.Equal(t, []string{wifi.ID}, place.AmenityIDs)
	// review_ids is never taken from the payload
	assert.Empty(t, place.ReviewIDs)
	assert.True(t, store.Exists(ctx, entities.KindPlace, place.ID))
}

func TestPlaceServiceCreateUnknownOwner(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)

	_, err := svc.Create(ctx, map[string]any{
		"title":    "Beach flat",
		"price":    float64(120),
		"owner_id": "nope",
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "owner not found")
}

func TestPlaceServiceCreateMissingOwnerIsValidation(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)

	// owner_id absence is reported as validation, not a failed lookup
	_, err := svc.Create(ctx, map[string]any{
		"title": "Beach flat",
		"price": float64(120),
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "owner_id is required")
}

func TestPlaceServiceCreateUnknownAmenity(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)
	owner := seedUser(t, store, "owner@b.com")

	_, err := svc.Create(ctx, map[string]any{
		"title":       "Beach flat",
		"price":       float64(120),
		"owner_id":    owner.ID,
		"amenity_ids": []any{"ghost"},
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
	assert.Contains(t, err.Error(), "amenity not found: ghost")

	all, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestPlaceServiceCreateInvalidPriceNotStored(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)
	owner := seedUser(t, store, "owner@b.com")

	_, err := svc.Create(ctx, map[string]any{
		"title":    "Beach flat",
		"price":    float64(0),
		"owner_id": owner.ID,
	})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeValidation, apperrors.TypeOf(err))

	all, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	assert.Empty(t, all)
}

func TestPlaceServiceUpdateRevalidatesReferences(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)
	owner := seedUser(t, store, "owner@b.com")
	place := seedPlace(t, store, svc, owner.ID)

	_, err := svc.Update(ctx, place.ID, map[string]any{"owner_id": "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner not found")

	_, err = svc.Update(ctx, place.ID, map[string]any{"amenity_ids": []any{"ghost"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amenity not found: ghost")

	updated, err := svc.Update(ctx, place.ID, map[string]any{"title": "Renamed", "price": float64(99)})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, 99.0, updated.Price)
	assert.Equal(t, owner.ID, updated.OwnerID)
}

func TestPlaceServiceGetDetails(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)
	reviews := NewReviewService(store)

	owner := seedUser(t, store, "owner@b.com")
	guest := seedUser(t, store, "guest@b.com")
	wifi := seedAmenity(t, store, "Wifi")

	place, err := svc.Create(ctx, map[string]any{
		"title":       "Beach flat",
		"price":       float64(120),
		"owner_id":    owner.ID,
		"amenity_ids": []any{wifi.ID},
	})
	require.NoError(t, err)

	review, err := reviews.Create(ctx, map[string]any{
		"text":     "great stay",
		"rating":   float64(5),
		"user_id":  guest.ID,
		"place_id": place.ID,
	})
	require.NoError(t, err)

	details, err := svc.GetDetails(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, details.Owner.ID)
	assert.Equal(t, "Ada", details.Owner.FirstName)
	require.Len(t, details.Amenities, 1)
	assert.Equal(t, "Wifi", details.Amenities[0].Name)
	require.Len(t, details.Reviews, 1)
	assert.Equal(t, review.ID, details.Reviews[0].ID)
}

func TestPlaceServiceGetDetailsDanglingOwner(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewPlaceService(store)

	owner := seedUser(t, store, "owner@b.com")
	place := seedPlace(t, store, svc, owner.ID)

	require.NoError(t, store.Delete(ctx, entities.KindUser, owner.ID))

	_, err := svc.GetDetails(ctx, place.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrorTypeNotFound, apperrors.TypeOf(err))
}
