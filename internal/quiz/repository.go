package quiz

import (
	"context"
	"fmt"
	"slices"
	"sync"
)

// Repository provides the relationship and recipient answers of the quiz.
type Repository interface {
	Relationships(ctx context.Context) ([]RelationshipGroup, error)
	Recipients(ctx context.Context, rel Relationship) ([]string, error)
}

// InMemoryRepository serves a fixed set of answers; used when no database is configured.
type InMemoryRepository struct {
	mu     sync.RWMutex
	groups []RelationshipGroup
}

func NewInMemoryRepository(seed []RelationshipGroup) *InMemoryRepository {
	groups := make([]RelationshipGroup, 0, len(seed))
	for _, g := range seed {
		groups = append(groups, RelationshipGroup{Relationship: g.Relationship, Recipients: slices.Clone(g.Recipients)})
	}
	return &InMemoryRepository{groups: groups}
}

func (r *InMemoryRepository) Relationships(_ context.Context) ([]RelationshipGroup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]RelationshipGroup, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, RelationshipGroup{Relationship: g.Relationship, Recipients: slices.Clone(g.Recipients)})
	}
	return out, nil
}

func (r *InMemoryRepository) Recipients(_ context.Context, rel Relationship) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.groups {
		if g.Relationship == rel {
			return slices.Clone(g.Recipients), nil
		}
	}
	return nil, fmt.Errorf("relationship %q: %w", rel, ErrNotFound)
}
