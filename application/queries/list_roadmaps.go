package queries

import (
	"context"
	"errors"

	"tutoria-backend/application/ports"
)

// ListRoadmapsQuery lists the roadmaps of one author
type ListRoadmapsQuery struct {
	OwnerID string `json:"owner_id"`
}

// Validate validates the query
func (q ListRoadmapsQuery) Validate() error {
	if q.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	return nil
}

// RoadmapSummaryDTO is the list read model; node and connection bodies
// are omitted to keep the listing light
type RoadmapSummaryDTO struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Difficulty      string   `json:"difficulty"`
	Tags            []string `json:"tags"`
	NodeCount       int      `json:"node_count"`
	ConnectionCount int      `json:"connection_count"`
	UpdatedAt       string   `json:"updated_at"`
}

// ListRoadmapsHandler handles the ListRoadmapsQuery
type ListRoadmapsHandler struct {
	roadmapRepo ports.RoadmapRepository
}

// NewListRoadmapsHandler creates a new handler instance
func NewListRoadmapsHandler(roadmapRepo ports.RoadmapRepository) *ListRoadmapsHandler {
	return &ListRoadmapsHandler{roadmapRepo: roadmapRepo}
}

// Handle executes the list roadmaps query
func (h *ListRoadmapsHandler) Handle(ctx context.Context, query ListRoadmapsQuery) ([]RoadmapSummaryDTO, error) {
	roadmaps, err := h.roadmapRepo.FindByOwner(ctx, query.OwnerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]RoadmapSummaryDTO, 0, len(roadmaps))
	for _, roadmap := range roadmaps {
		summaries = append(summaries, RoadmapSummaryDTO{
			ID:              roadmap.ID().String(),
			Title:           roadmap.Title(),
			Description:     roadmap.Description(),
			Category:        roadmap.Category(),
			Difficulty:      roadmap.Difficulty(),
			Tags:            roadmap.Tags(),
			NodeCount:       len(roadmap.Nodes()),
			ConnectionCount: len(roadmap.Connections()),
			UpdatedAt:       roadmap.UpdatedAt().UTC().Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return summaries, nil
}
