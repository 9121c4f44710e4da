package commands

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tutoria-backend/domain/core/aggregates"
	"tutoria-backend/infrastructure/persistence/memory"
	pkgerrors "tutoria-backend/pkg/errors"
)

func createTestRoadmap(t *testing.T, repo *memory.RoadmapRepository, ownerID string) string {
	t.Helper()
	handler := NewCreateRoadmapHandler(repo, nil, zap.NewNop())
	cmd := CreateRoadmapCommand{
		RoadmapID:  uuid.NewString(),
		OwnerID:    ownerID,
		Title:      "Aprende Go",
		Category:   "backend",
		Difficulty: "beginner",
	}
	require.NoError(t, handler.Handle(context.Background(), cmd))
	return cmd.RoadmapID
}

func TestCreateRoadmapHandler_PersistsAggregate(t *testing.T) {
	repo := memory.NewRoadmapRepository()
	id := createTestRoadmap(t, repo, "owner-1")

	stored, err := repo.FindByID(context.Background(), "owner-1", aggregates.RoadmapID(id))
	require.NoError(t, err)
	assert.Equal(t, "Aprende Go", stored.Title())
	assert.Equal(t, "backend", stored.Category())
	assert.Empty(t, stored.Nodes())
}

func TestSaveRoadmapHandler_FullDocumentRoundTrip(t *testing.T) {
	repo := memory.NewRoadmapRepository()
	id := createTestRoadmap(t, repo, "owner-1")
	handler := NewSaveRoadmapHandler(repo, nil, zap.NewNop())

	nodeA := uuid.NewString()
	nodeB := uuid.NewString()
	cmd := SaveRoadmapCommand{
		RoadmapID:  id,
		OwnerID:    "owner-1",
		Title:      "Aprende Go",
		Difficulty: "beginner",
		Nodes: []NodeInput{
			{
				ID:       nodeA,
				Title:    "Sintaxis basica",
				Type:     "topic",
				Position: PositionInput{X: 100, Y: 80},
				Resources: []ResourceInput{{
					ID:    uuid.NewString(),
					Title: "Tour de Go",
					URL:   "https://go.dev/tour",
					Type:  "course",
				}},
				EstimatedHours: 3,
			},
			{
				ID:       nodeB,
				Title:    "Concurrencia",
				Type:     "milestone",
				Position: PositionInput{X: 100, Y: 320},
			},
		},
		Connections: []ConnectionInput{{
			ID:           uuid.NewString(),
			SourceNodeID: nodeA,
			TargetNodeID: nodeB,
			IsRequired:   true,
		}},
	}
	require.NoError(t, handler.Handle(context.Background(), cmd))

	stored, err := repo.FindByID(context.Background(), "owner-1", aggregates.RoadmapID(id))
	require.NoError(t, err)
	require.Len(t, stored.Nodes(), 2)
	require.Len(t, stored.Connections(), 1)
	assert.Equal(t, "Sintaxis basica", stored.Nodes()[0].Title())
	assert.Len(t, stored.Nodes()[0].Resources(), 1)
	assert.True(t, stored.Connections()[0].IsRequired)
}

func TestSaveRoadmapHandler_RejectsBrokenGraph(t *testing.T) {
	repo := memory.NewRoadmapRepository()
	id := createTestRoadmap(t, repo, "owner-1")
	handler := NewSaveRoadmapHandler(repo, nil, zap.NewNop())

	nodeA := uuid.NewString()
	cmd := SaveRoadmapCommand{
		RoadmapID: id,
		OwnerID:   "owner-1",
		Title:     "Aprende Go",
		Nodes: []NodeInput{{
			ID:    nodeA,
			Title: "Solo",
			Type:  "topic",
		}},
		Connections: []ConnectionInput{{
			ID:           uuid.NewString(),
			SourceNodeID: nodeA,
			TargetNodeID: nodeA,
		}},
	}

	err := handler.Handle(context.Background(), cmd)
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidation(err))
}

func TestSaveRoadmapHandler_UnknownRoadmapNotFound(t *testing.T) {
	repo := memory.NewRoadmapRepository()
	handler := NewSaveRoadmapHandler(repo, nil, zap.NewNop())

	err := handler.Handle(context.Background(), SaveRoadmapCommand{
		RoadmapID: uuid.NewString(),
		OwnerID:   "owner-1",
		Title:     "Fantasma",
	})
	require.Error(t, err)
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestDeleteRoadmapHandler(t *testing.T) {
	repo := memory.NewRoadmapRepository()
	id := createTestRoadmap(t, repo, "owner-1")
	handler := NewDeleteRoadmapHandler(repo, zap.NewNop())

	require.NoError(t, handler.Handle(context.Background(), DeleteRoadmapCommand{
		RoadmapID: id,
		OwnerID:   "owner-1",
	}))

	_, err := repo.FindByID(context.Background(), "owner-1", aggregates.RoadmapID(id))
	assert.True(t, pkgerrors.IsNotFound(err))

	// deleting under another owner never succeeds
	other := createTestRoadmap(t, repo, "owner-2")
	err = handler.Handle(context.Background(), DeleteRoadmapCommand{
		RoadmapID: other,
		OwnerID:   "owner-1",
	})
	assert.True(t, pkgerrors.IsNotFound(err))
}
