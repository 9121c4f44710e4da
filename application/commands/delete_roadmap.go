package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tutoria-backend/application/ports"
	"tutoria-backend/domain/core/aggregates"
)

// DeleteRoadmapCommand represents the command to delete a roadmap
type DeleteRoadmapCommand struct {
	RoadmapID string `json:"roadmap_id" validate:"required"`
	OwnerID   string `json:"owner_id" validate:"required"`
}

// Validate validates the command
func (cmd DeleteRoadmapCommand) Validate() error {
	if cmd.RoadmapID == "" {
		return errors.New("roadmap ID is required")
	}
	if cmd.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	return nil
}

// DeleteRoadmapHandler handles the DeleteRoadmapCommand
type DeleteRoadmapHandler struct {
	roadmapRepo ports.RoadmapRepository
	logger      *zap.Logger
}

// NewDeleteRoadmapHandler creates a new handler instance
func NewDeleteRoadmapHandler(roadmapRepo ports.RoadmapRepository, logger *zap.Logger) *DeleteRoadmapHandler {
	return &DeleteRoadmapHandler{
		roadmapRepo: roadmapRepo,
		logger:      logger,
	}
}

// Handle executes the delete roadmap command
func (h *DeleteRoadmapHandler) Handle(ctx context.Context, cmd DeleteRoadmapCommand) error {
	if err := h.roadmapRepo.Delete(ctx, cmd.OwnerID, aggregates.RoadmapID(cmd.RoadmapID)); err != nil {
		return err
	}

	h.logger.Info("Roadmap deleted", zap.String("roadmap_id", cmd.RoadmapID))
	return nil
}
