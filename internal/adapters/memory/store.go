// Package memory implements the object store as in-process maps. One bucket
// per entity kind, a secondary email uniqueness index for users, and a
// single mutex serializing all mutations.
package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/stayhub/stayhub/internal/domain/entities"
	"github.com/stayhub/stayhub/internal/domain/repositories"
	apperrors "github.com/stayhub/stayhub/pkg/errors"
)

// Store is an in-memory object store. The zero value is not usable; create
// one with NewStore.
type Store struct {
	mu      sync.RWMutex
	buckets map[entities.Kind]map[string]entities.Entity
	// order keeps insertion order per kind so All is deterministic.
	order map[entities.Kind][]string
	// emails maps a user's email to the owning user id.
	emails map[string]string
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		buckets: make(map[entities.Kind]map[string]entities.Entity),
		order:   make(map[entities.Kind][]string),
		emails:  make(map[string]string),
	}
}

var _ repositories.Store = (*Store)(nil)

func (s *Store) bucket(kind entities.Kind) map[string]entities.Entity {
	b, ok := s.buckets[kind]
	if !ok {
		b = make(map[string]entities.Entity)
		s.buckets[kind] = b
	}
	return b
}

// Add validates the entity, enforces the email uniqueness index for users
// and commits the entity keyed by id.
func (s *Store) Add(ctx context.Context, entity entities.Entity) (entities.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := entity.Validate(); err != nil {
		return nil, err
	}

	if user, ok := entity.(*entities.User); ok {
		if owner, taken := s.emails[user.Email]; taken && owner != user.ID {
			return nil, apperrors.NewConflictError("email already exists")
		}
		s.emails[user.Email] = user.ID
	}

	kind := entity.EntityKind()
	bucket := s.bucket(kind)
	if _, exists := bucket[entity.EntityID()]; !exists {
		s.order[kind] = append(s.order[kind], entity.EntityID())
	}
	bucket[entity.EntityID()] = entity
	return entity, nil
}

// Get retrieves an entity by kind and id.
func (s *Store) Get(ctx context.Context, kind entities.Kind, id string) (entities.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok := s.buckets[kind][id]
	if !ok {
		return nil, notFound(kind)
	}
	return entity, nil
}

// All returns every entity of a kind in insertion order.
func (s *Store) All(ctx context.Context, kind entities.Kind) ([]entities.Entity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bucket := s.buckets[kind]
	out := make([]entities.Entity, 0, len(bucket))
	for _, id := range s.order[kind] {
		if entity, ok := bucket[id]; ok {
			out = append(out, entity)
		}
	}
	return out, nil
}

// Update merges the field map into a clone of the stored entity,
// re-validates and commits. Email changes for users are checked against the
// uniqueness index and re-indexed atomically with the commit; any failure
// leaves the store unchanged.
func (s *Store) Update(ctx context.Context, kind entities.Kind, id string, updates map[string]any) (entities.Entity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.buckets[kind][id]
	if !ok {
		return nil, notFound(kind)
	}

	var staleEmail, newEmail string
	reindex := false
	if kind == entities.KindUser {
		if raw, present := updates["email"]; present {
			email, isString := raw.(string)
			if !isString || strings.TrimSpace(email) == "" {
				return nil, apperrors.NewValidationError("email is required")
			}
			current := entity.(*entities.User).Email
			if email != current {
				if owner, taken := s.emails[email]; taken && owner != id {
					return nil, apperrors.NewConflictError("email already exists")
				}
				staleEmail = current
				newEmail = email
				reindex = true
			}
		}
	}

	merged := entity.Clone()
	if err := merged.Apply(updates); err != nil {
		return nil, err
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	merged.Touch()

	if reindex {
		delete(s.emails, staleEmail)
		s.emails[newEmail] = id
	}
	s.buckets[kind][id] = merged
	return merged, nil
}

// Delete removes an entity and, for users, its email index entry.
func (s *Store) Delete(ctx context.Context, kind entities.Kind, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entity, ok := s.buckets[kind][id]
	if !ok {
		return notFound(kind)
	}
	delete(s.buckets[kind], id)

	ids := s.order[kind]
	for i, existing := range ids {
		if existing == id {
			s.order[kind] = append(ids[:i], ids[i+1:]...)
			break
		}
	}

	if user, isUser := entity.(*entities.User); isUser {
		if owner, indexed := s.emails[user.Email]; indexed && owner == id {
			delete(s.emails, user.Email)
		}
	}
	return nil
}

// Exists reports whether an entity of the given kind exists.
func (s *Store) Exists(ctx context.Context, kind entities.Kind, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.buckets[kind][id]
	return ok
}

// Reset clears all buckets and indexes. Intended for tests.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buckets = make(map[entities.Kind]map[string]entities.Entity)
	s.order = make(map[entities.Kind][]string)
	s.emails = make(map[string]string)
}

func notFound(kind entities.Kind) *apperrors.AppError {
	return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", strings.ToLower(string(kind))))
}
