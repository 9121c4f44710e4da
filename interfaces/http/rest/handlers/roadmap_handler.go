package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tutoria-backend/application/commands"
	"tutoria-backend/application/commands/bus"
	"tutoria-backend/application/queries"
	querybus "tutoria-backend/application/queries/bus"
	"tutoria-backend/pkg/auth"
	"tutoria-backend/pkg/common"
	pkgerrors "tutoria-backend/pkg/errors"
	"tutoria-backend/pkg/utils"
)

// RoadmapHandler handles roadmap CRUD requests
type RoadmapHandler struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	logger       *zap.Logger
	maxBodyBytes int64
}

// NewRoadmapHandler creates a new roadmap handler
func NewRoadmapHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, maxBodyBytes int64, logger *zap.Logger) *RoadmapHandler {
	return &RoadmapHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// createRoadmapRequest is the creation payload
type createRoadmapRequest struct {
	Title       string   `json:"title" validate:"required,min=1,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Category    string   `json:"category" validate:"max=100"`
	Difficulty  string   `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Tags        []string `json:"tags" validate:"max=20,dive,min=1,max=50"`
}

// saveRoadmapRequest is the full-document save payload
type saveRoadmapRequest struct {
	Title       string                     `json:"title" validate:"required,min=1,max=200"`
	Description string                     `json:"description" validate:"max=5000"`
	Category    string                     `json:"category" validate:"max=100"`
	Difficulty  string                     `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	Tags        []string                   `json:"tags" validate:"max=20,dive,min=1,max=50"`
	Nodes       []commands.NodeInput       `json:"nodes" validate:"dive"`
	Connections []commands.ConnectionInput `json:"connections" validate:"dive"`
}

// CreateRoadmap handles POST /roadmaps
func (h *RoadmapHandler) CreateRoadmap(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req createRoadmapRequest
	if err := common.ParseJSONBody(w, r, &req, h.maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	cmd := commands.CreateRoadmapCommand{
		RoadmapID:   uuid.NewString(),
		OwnerID:     user.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Create roadmap failed", zap.Error(err))
		common.RespondAppError(w, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetRoadmapQuery{
		RoadmapID: cmd.RoadmapID,
		OwnerID:   user.ID,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, result)
}

// GetRoadmap handles GET /roadmaps/{roadmapID}
func (h *RoadmapHandler) GetRoadmap(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetRoadmapQuery{
		RoadmapID: chi.URLParam(r, "roadmapID"),
		OwnerID:   user.ID,
	})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// ListRoadmaps handles GET /roadmaps
func (h *RoadmapHandler) ListRoadmaps(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.ListRoadmapsQuery{OwnerID: user.ID})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, result)
}

// SaveRoadmap handles PUT /roadmaps/{roadmapID}. The body carries the
// complete latest node and connection lists from the editor.
func (h *RoadmapHandler) SaveRoadmap(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	var req saveRoadmapRequest
	if err := common.ParseJSONBody(w, r, &req, h.maxBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", err.Error())
		return
	}

	cmd := commands.SaveRoadmapCommand{
		RoadmapID:   chi.URLParam(r, "roadmapID"),
		OwnerID:     user.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		Tags:        req.Tags,
		Nodes:       req.Nodes,
		Connections: req.Connections,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		h.logger.Error("Save roadmap failed",
			zap.String("roadmap_id", cmd.RoadmapID),
			zap.Error(err),
		)
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": cmd.RoadmapID})
}

// DeleteRoadmap handles DELETE /roadmaps/{roadmapID}
func (h *RoadmapHandler) DeleteRoadmap(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.GetUserFromContext(r.Context())
	if !ok {
		common.RespondAppError(w, pkgerrors.NewUnauthorizedError(""))
		return
	}

	cmd := commands.DeleteRoadmapCommand{
		RoadmapID: chi.URLParam(r, "roadmapID"),
		OwnerID:   user.ID,
	}
	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": cmd.RoadmapID})
}
