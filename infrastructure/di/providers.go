package di

import (
	"context"
	"fmt"

	supabaseclient "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"tutoria-backend/application/commands"
	"tutoria-backend/application/commands/bus"
	"tutoria-backend/application/ports"
	"tutoria-backend/application/queries"
	querybus "tutoria-backend/application/queries/bus"
	domainconfig "tutoria-backend/domain/config"
	"tutoria-backend/infrastructure/config"
	"tutoria-backend/infrastructure/persistence/memory"
	"tutoria-backend/infrastructure/persistence/supabase"
	"tutoria-backend/pkg/auth"
	"tutoria-backend/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var zapCfg zap.Config
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	if level, err := zapcore.ParseLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(level)
	}

	return zapCfg.Build()
}

// ProvideEditorConfig supplies the editor tuning constants
func ProvideEditorConfig() *domainconfig.EditorConfig {
	return domainconfig.DefaultEditorConfig()
}

// ProvideJWTValidator creates the token validator
func ProvideJWTValidator(cfg *config.Config) (*auth.JWTValidator, error) {
	secret := cfg.SupabaseJWTSecret
	if secret == "" && cfg.IsDevelopment() {
		secret = "development-secret"
	}
	return auth.NewJWTValidator(secret)
}

// ProvideMetrics creates the service metrics
func ProvideMetrics(cfg *config.Config) *observability.Metrics {
	return observability.NewMetrics()
}

// ProvideRoadmapRepository selects the persistence backend. Development
// runs without Supabase credentials fall back to the in-memory store.
func ProvideRoadmapRepository(cfg *config.Config, editorCfg *domainconfig.EditorConfig, logger *zap.Logger) (ports.RoadmapRepository, error) {
	if cfg.SupabaseURL == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SUPABASE_URL is required in production")
		}
		logger.Warn("SUPABASE_URL not set, using in-memory roadmap store")
		return memory.NewRoadmapRepository(), nil
	}

	client, err := supabaseclient.NewClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create supabase client: %w", err)
	}
	return supabase.NewRoadmapRepository(client, cfg.RoadmapsTable, editorCfg, logger), nil
}

// ProvideCommandBus creates a command bus with registered handlers
func ProvideCommandBus(
	roadmapRepo ports.RoadmapRepository,
	editorCfg *domainconfig.EditorConfig,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	logging := bus.LoggingMiddleware(logger)

	createHandler := commands.NewCreateRoadmapHandler(roadmapRepo, editorCfg, logger)
	err := commandBus.Register(commands.CreateRoadmapCommand{}, logging(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			createCmd, ok := cmd.(commands.CreateRoadmapCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return createHandler.Handle(ctx, createCmd)
		},
	)))
	if err != nil {
		return nil, err
	}

	saveHandler := commands.NewSaveRoadmapHandler(roadmapRepo, editorCfg, logger)
	err = commandBus.Register(commands.SaveRoadmapCommand{}, logging(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			saveCmd, ok := cmd.(commands.SaveRoadmapCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return saveHandler.Handle(ctx, saveCmd)
		},
	)))
	if err != nil {
		return nil, err
	}

	deleteHandler := commands.NewDeleteRoadmapHandler(roadmapRepo, logger)
	err = commandBus.Register(commands.DeleteRoadmapCommand{}, logging(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) error {
			deleteCmd, ok := cmd.(commands.DeleteRoadmapCommand)
			if !ok {
				return fmt.Errorf("invalid command type %T", cmd)
			}
			return deleteHandler.Handle(ctx, deleteCmd)
		},
	)))
	if err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	roadmapRepo ports.RoadmapRepository,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	getHandler := queries.NewGetRoadmapHandler(roadmapRepo)
	err := queryBus.Register(queries.GetRoadmapQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetRoadmapQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return getHandler.Handle(ctx, getQuery)
		},
	))
	if err != nil {
		return nil, err
	}

	listHandler := queries.NewListRoadmapsHandler(roadmapRepo)
	err = queryBus.Register(queries.ListRoadmapsQuery{}, querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListRoadmapsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return listHandler.Handle(ctx, listQuery)
		},
	))
	if err != nil {
		return nil, err
	}

	return queryBus, nil
}
