package services

import (
	"context"

	"github.com/stayhub/stayhub/internal/domain/entities"
	"github.com/stayhub/stayhub/internal/domain/repositories"
)

// UserService handles user lifecycle operations over the object store.
type UserService struct {
	store repositories.Store
}

// NewUserService creates a new user service.
func NewUserService(store repositories.Store) *UserService {
	return &UserService{store: store}
}

// Create builds a user from a field map and stores it. The store enforces
// field validation and email uniqueness.
func (s *UserService) Create(ctx context.Context, data map[string]any) (*entities.User, error) {
	user := entities.NewUser()
	if err := user.Apply(pick(data, "email", "first_name", "last_name", "password")); err != nil {
		return nil, err
	}
	stored, err := s.store.Add(ctx, user)
	if err != nil {
		return nil, err
	}
	return stored.(*entities.User), nil
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]*entities.User, error) {
	all, err := s.store.All(ctx, entities.KindUser)
	if err != nil {
		return nil, err
	}
	users := make([]*entities.User, 0, len(all))
	for _, entity := range all {
		users = append(users, entity.(*entities.User))
	}
	return users, nil
}

// Get retrieves a user by id.
func (s *UserService) Get(ctx context.Context, id string) (*entities.User, error) {
	entity, err := s.store.Get(ctx, entities.KindUser, id)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.User), nil
}

// Update applies a partial update to a user.
func (s *UserService) Update(ctx context.Context, id string, data map[string]any) (*entities.User, error) {
	updates := pick(data, "email", "first_name", "last_name", "password")
	entity, err := s.store.Update(ctx, entities.KindUser, id, updates)
	if err != nil {
		return nil, err
	}
	return entity.(*entities.User), nil
}

// Delete removes a user. Places owned by the user keep their owner_id; the
// dangling reference makes the place's extended view unresolvable.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, entities.KindUser, id)
}
