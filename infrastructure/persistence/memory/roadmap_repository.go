// Package memory provides an in-process roadmap store for development
// and tests. Not safe for multi-instance deployments.
package memory

import (
	"context"
	"sync"

	"tutoria-backend/application/ports"
	"tutoria-backend/domain/core/aggregates"
	pkgerrors "tutoria-backend/pkg/errors"
)

type key struct {
	ownerID   string
	roadmapID aggregates.RoadmapID
}

// RoadmapRepository keeps roadmaps in a map guarded by a mutex
type RoadmapRepository struct {
	mu       sync.RWMutex
	roadmaps map[key]*aggregates.Roadmap
	order    []key
}

// NewRoadmapRepository creates an empty in-memory repository
func NewRoadmapRepository() *RoadmapRepository {
	return &RoadmapRepository{
		roadmaps: make(map[key]*aggregates.Roadmap),
	}
}

var _ ports.RoadmapRepository = (*RoadmapRepository)(nil)

// FindByID loads one roadmap owned by ownerID
func (r *RoadmapRepository) FindByID(ctx context.Context, ownerID string, id aggregates.RoadmapID) (*aggregates.Roadmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roadmap, ok := r.roadmaps[key{ownerID, id}]
	if !ok {
		return nil, pkgerrors.NewNotFoundError("roadmap")
	}
	return roadmap, nil
}

// FindByOwner lists all roadmaps of one author in insertion order
func (r *RoadmapRepository) FindByOwner(ctx context.Context, ownerID string) ([]*aggregates.Roadmap, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	roadmaps := make([]*aggregates.Roadmap, 0)
	for _, k := range r.order {
		if k.ownerID != ownerID {
			continue
		}
		if roadmap, ok := r.roadmaps[k]; ok {
			roadmaps = append(roadmaps, roadmap)
		}
	}
	return roadmaps, nil
}

// Save upserts the roadmap
func (r *RoadmapRepository) Save(ctx context.Context, roadmap *aggregates.Roadmap) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{roadmap.OwnerID(), roadmap.ID()}
	if _, exists := r.roadmaps[k]; !exists {
		r.order = append(r.order, k)
	}
	r.roadmaps[k] = roadmap
	return nil
}

// Delete removes a roadmap owned by ownerID
func (r *RoadmapRepository) Delete(ctx context.Context, ownerID string, id aggregates.RoadmapID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{ownerID, id}
	if _, ok := r.roadmaps[k]; !ok {
		return pkgerrors.NewNotFoundError("roadmap")
	}
	delete(r.roadmaps, k)
	for i, existing := range r.order {
		if existing == k {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
