package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tutoria-backend/application/ports"
	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/aggregates"
)

// CreateRoadmapCommand represents the command to create a new roadmap.
// The caller allocates the id so it can report it back immediately.
type CreateRoadmapCommand struct {
	RoadmapID   string   `json:"roadmap_id" validate:"required"`
	OwnerID     string   `json:"owner_id" validate:"required"`
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"max=100"`
	Difficulty  string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Tags        []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
}

// Validate validates the command
func (cmd CreateRoadmapCommand) Validate() error {
	if cmd.RoadmapID == "" {
		return errors.New("roadmap ID is required")
	}
	if cmd.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	if cmd.Title == "" {
		return errors.New("title is required")
	}
	return nil
}

// CreateRoadmapHandler handles the CreateRoadmapCommand
type CreateRoadmapHandler struct {
	roadmapRepo ports.RoadmapRepository
	cfg         *config.EditorConfig
	logger      *zap.Logger
}

// NewCreateRoadmapHandler creates a new handler instance
func NewCreateRoadmapHandler(roadmapRepo ports.RoadmapRepository, cfg *config.EditorConfig, logger *zap.Logger) *CreateRoadmapHandler {
	return &CreateRoadmapHandler{
		roadmapRepo: roadmapRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Handle executes the create roadmap command
func (h *CreateRoadmapHandler) Handle(ctx context.Context, cmd CreateRoadmapCommand) error {
	roadmap, err := aggregates.NewRoadmapWithID(
		aggregates.RoadmapID(cmd.RoadmapID),
		cmd.OwnerID,
		cmd.Title,
		h.cfg,
	)
	if err != nil {
		return err
	}

	roadmap.UpdateDetails(cmd.Title, cmd.Description, cmd.Category, cmd.Difficulty, cmd.Tags)

	if err := h.roadmapRepo.Save(ctx, roadmap); err != nil {
		return err
	}

	for _, event := range roadmap.GetUncommittedEvents() {
		h.logger.Info("Domain event",
			zap.String("type", event.GetEventType()),
			zap.String("aggregate_id", event.GetAggregateID()),
		)
	}
	roadmap.MarkEventsAsCommitted()

	return nil
}
