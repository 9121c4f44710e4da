package ports

import (
	"context"

	"tutoria-backend/domain/core/aggregates"
)

// RoadmapRepository is the persistence collaborator for roadmaps. The
// backing store keeps whole roadmaps (metadata plus node and connection
// lists) as single records; identifiers and the position/kind wire
// shapes must round-trip unchanged.
type RoadmapRepository interface {
	// FindByID loads one roadmap owned by ownerID
	FindByID(ctx context.Context, ownerID string, id aggregates.RoadmapID) (*aggregates.Roadmap, error)

	// FindByOwner lists all roadmaps of one author
	FindByOwner(ctx context.Context, ownerID string) ([]*aggregates.Roadmap, error)

	// Save upserts the complete roadmap record
	Save(ctx context.Context, roadmap *aggregates.Roadmap) error

	// Delete removes a roadmap owned by ownerID
	Delete(ctx context.Context, ownerID string, id aggregates.RoadmapID) error
}
