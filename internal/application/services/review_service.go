package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/stayhub/stayhub/internal/domain/entities"
	"github.com/stayhub/stayhub/internal/domain/repositories"
	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// ReviewService handles review lifecycle operations and keeps the parent
// place's review id list consistent with review creation and deletion.
type ReviewService struct {
	store repositories.Store
}

// NewReviewService creates a new review service.
func NewReviewService(store repositories.Store) *ReviewService {
	return &ReviewService{store: store}
}

// Create builds a review from a field map and stores it, then appends the
// review's id to the parent place's review_ids. The cascade step is
// idempotent but not transactional: if it fails the review stays stored
// without being listed on its place.
func (s *ReviewService) Create(ctx context.Context, data map[string]any) (*entities.Review, error) {
	text, err := requiredString(data["text"], "text")
	if err != nil {
		return nil, err
	}
	userID, err := requiredString(data["user_id"], "user_id")
	if err != nil {
		return nil, err
	}
	placeID, err := requiredString(data["place_id"], "place_id")
	if err != nil {
		return nil, err
	}

	if !s.store.Exists(ctx, entities.KindUser, userID) {
		return nil, apperrors.NewNotFoundError("user not found")
	}
	if !s.store.Exists(ctx, entities.KindPlace, placeID) {
		return nil, apperrors.NewNotFoundError("place not found")
	}

	review := entities.NewReview()
	review.Text = strings.TrimSpace(text)
	review.UserID = userID
	review.PlaceID = placeID
	if rating, ok := data["rating"]; ok {
		if err := review.Apply(map[string]any{"rating": rating}); err != nil {
			return nil, err
		}
	}

	stored, err := s.store.Add(ctx, review)
	if err != nil {
		return nil, err
	}
	review = stored.(*entities.Review)

	if err := s.appendToPlace(ctx, placeID, review.ID); err != nil {
		log.Warn().Err(err).
			Str("review_id", review.ID).
			Str("place_id", placeID).
			Msg("review stored but place cascade failed")
		return nil, err
	}

	return review, nil
}

func (s *ReviewService) appendToPlace(ctx context.Context, placeID, reviewID string) error {
	entity, err := s.store.Get(ctx, entities.KindPlace, placeID)
	if err != nil {
		return err
	}
	place := entity.(*entities.Place)
	if containsID(place.ReviewIDs, reviewID) {
		return nil
	}
	reviewIDs := make([]string, 0, len(place.ReviewIDs)+1)
	reviewIDs = append(reviewIDs, place.ReviewIDs...)
	reviewIDs = append(reviewIDs, reviewID)
	_, err = s.store.Update(ctx, entities.KindPlace, placeID, map[string]any{"review_ids": reviewIDs})
	return err
}

// List returns all reviews.
func (s *ReviewService) List(ctx context.Context) ([]*entities.Review, error) {
	all, err := s.store.All(ctx, entities.KindReview)
	if err != nil {
		return nil, err
	}
	reviews := make([]*entities.Review, 0, len(all))
	for _, entity := range all {
		reviews = append(reviews, entity.(*entities.Review))
	}
	return reviews, nil
}

// Get retrieves a review by id.
func (s *ReviewService) Get(ctx context.Context, id string) (*entities.Review, error) {
	entity, err := s.store.Get(ctx, entities.KindReview, id)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.Review), nil
}

// Update applies a partial update to a review. Text, when present, must be
// non-empty and is stored trimmed.
func (s *ReviewService) Update(ctx context.Context, id string, data map[string]any) (*entities.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any, 2)
	if raw, ok := data["text"]; ok {
		text, err := requiredString(raw, "text")
		if err != nil {
			return nil, err
		}
		updates["text"] = strings.TrimSpace(text)
	}
	if rating, ok := data["rating"]; ok {
		updates["rating"] = rating
	}
	if len(updates) == 0 {
		return review, nil
	}

	entity, err := s.store.Update(ctx, entities.KindReview, id, updates)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.Review), nil
}

// Delete removes a review. The review's id is removed from its parent
// place's review_ids before the review itself is deleted, so an
// interrupted delete can leave a stale id removed but never a deleted
// review still listed.
func (s *ReviewService) Delete(ctx context.Context, id string) error {
	review, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if review.PlaceID != "" && s.store.Exists(ctx, entities.KindPlace, review.PlaceID) {
		entity, err := s.store.Get(ctx, entities.KindPlace, review.PlaceID)
		if err != nil {
			return err
		}
		place := entity.(*entities.Place)
		reviewIDs := make([]string, 0, len(place.ReviewIDs))
		for _, reviewID := range place.ReviewIDs {
			if reviewID != id {
				reviewIDs = append(reviewIDs, reviewID)
			}
		}
		if _, err := s.store.Update(ctx, entities.KindPlace, review.PlaceID, map[string]any{"review_ids": reviewIDs}); err != nil {
			return err
		}
	}

	return s.store.Delete(ctx, entities.KindReview, id)
}

// ListForPlace returns the currently resolvable reviews referenced by a
// place, silently skipping ids that no longer resolve.
func (s *ReviewService) ListForPlace(ctx context.Context, placeID string) ([]*entities.Review, error) {
	entity, err := s.store.Get(ctx, entities.KindPlace, placeID)
	if err != nil {
		return nil, err
	}
	place := entity.(*entities.Place)

	reviews := make([]*entities.Review, 0, len(place.ReviewIDs))
	for _, reviewID := range place.ReviewIDs {
		if !s.store.Exists(ctx, entities.KindReview, reviewID) {
			continue
		}
		stored, err := s.store.Get(ctx, entities.KindReview, reviewID)
		if err != nil {
			continue
		}
		reviews = append(reviews, stored.(*entities.Review))
	}
	return reviews, nil
}
