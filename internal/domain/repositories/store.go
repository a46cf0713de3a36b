package repositories

import (
	"context"

	"github.com/stayhub/stayhub/internal/domain/entities"
)

// Store defines the object store contract shared by all entity kinds. Ids
// are unique within a kind; All returns entities in insertion order.
type Store interface {
	// Add validates the entity and commits it, enforcing the user email
	// uniqueness index. Returns the stored entity.
	Add(ctx context.Context, entity entities.Entity) (entities.Entity, error)

	// Get retrieves an entity by kind and id.
	Get(ctx context.Context, kind entities.Kind, id string) (entities.Entity, error)

	// All returns every entity of a kind.
	All(ctx context.Context, kind entities.Kind) ([]entities.Entity, error)

	// Update merges a field map into the stored entity, re-validates the
	// merged result and commits it. A failed update leaves the store
	// unchanged.
	Update(ctx context.Context, kind entities.Kind, id string, updates map[string]any) (entities.Entity, error)

	// Delete removes an entity by kind and id.
	Delete(ctx context.Context, kind entities.Kind, id string) error

	// Exists reports whether an entity of the given kind exists. It never
	// fails.
	Exists(ctx context.Context, kind entities.Kind, id string) bool
}
