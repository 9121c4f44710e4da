package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tutoria-backend/application/ports"
	"tutoria-backend/domain/config"
	"tutoria-backend/domain/core/aggregates"
	pkgerrors "tutoria-backend/pkg/errors"
)

// SaveRoadmapCommand persists the complete node and connection lists a
// host collected from the editor. The host debounces; this command
// always carries the full latest state.
type SaveRoadmapCommand struct {
	RoadmapID   string            `json:"roadmap_id" validate:"required"`
	OwnerID     string            `json:"owner_id" validate:"required"`
	Title       string            `json:"title" validate:"required,min=1,max=200"`
	Description string            `json:"description" validate:"max=5000"`
	Category    string            `json:"category" validate:"max=100"`
	Difficulty  string            `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Tags        []string          `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Nodes       []NodeInput       `json:"nodes" validate:"dive"`
	Connections []ConnectionInput `json:"connections" validate:"dive"`
}

// Validate validates the command
func (cmd SaveRoadmapCommand) Validate() error {
	if cmd.RoadmapID == "" {
		return errors.New("roadmap ID is required")
	}
	if cmd.OwnerID == "" {
		return errors.New("owner ID is required")
	}
	return nil
}

// SaveRoadmapHandler handles the SaveRoadmapCommand
type SaveRoadmapHandler struct {
	roadmapRepo ports.RoadmapRepository
	cfg         *config.EditorConfig
	logger      *zap.Logger
}

// NewSaveRoadmapHandler creates a new handler instance
func NewSaveRoadmapHandler(roadmapRepo ports.RoadmapRepository, cfg *config.EditorConfig, logger *zap.Logger) *SaveRoadmapHandler {
	return &SaveRoadmapHandler{
		roadmapRepo: roadmapRepo,
		cfg:         cfg,
		logger:      logger,
	}
}

// Handle reconstructs the aggregate from the wire payload, re-checks
// the graph invariants and upserts the record. Ownership is enforced
// against the stored record before overwriting.
func (h *SaveRoadmapHandler) Handle(ctx context.Context, cmd SaveRoadmapCommand) error {
	existing, err := h.roadmapRepo.FindByID(ctx, cmd.OwnerID, aggregates.RoadmapID(cmd.RoadmapID))
	if err != nil {
		return err
	}
	if existing.OwnerID() != cmd.OwnerID {
		return pkgerrors.NewForbiddenError("roadmap belongs to another author")
	}

	nodes, err := buildNodes(cmd.Nodes)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}
	connections, err := buildConnections(cmd.Connections)
	if err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	roadmap, err := aggregates.ReconstructRoadmap(
		aggregates.RoadmapID(cmd.RoadmapID),
		cmd.OwnerID,
		cmd.Title,
		cmd.Description,
		cmd.Category,
		cmd.Difficulty,
		cmd.Tags,
		nodes,
		connections,
		h.cfg,
	)
	if err != nil {
		return err
	}

	if err := roadmap.Validate(); err != nil {
		return pkgerrors.NewValidationError(err.Error())
	}

	if err := h.roadmapRepo.Save(ctx, roadmap); err != nil {
		return err
	}

	h.logger.Info("Roadmap saved",
		zap.String("roadmap_id", cmd.RoadmapID),
		zap.Int("nodes", len(nodes)),
		zap.Int("connections", len(connections)),
	)

	return nil
}
