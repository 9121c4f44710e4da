//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"tutoria-backend/application/commands/bus"
	"tutoria-backend/application/ports"
	querybus "tutoria-backend/application/queries/bus"
	domainconfig "tutoria-backend/domain/config"
	"tutoria-backend/infrastructure/config"
	"tutoria-backend/pkg/auth"
	"tutoria-backend/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	EditorConfig *domainconfig.EditorConfig
	Logger       *zap.Logger
	RoadmapRepo  ports.RoadmapRepository
	CommandBus   *bus.CommandBus
	QueryBus     *querybus.QueryBus
	JWTValidator *auth.JWTValidator
	Metrics      *observability.Metrics
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideEditorConfig,
	ProvideJWTValidator,
	ProvideMetrics,
	ProvideRoadmapRepository,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
