package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/metrics"
	"github.com/andrescamacho/fantasy-manager-go/internal/adapters/persistence"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/common"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/mediator"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/setup"
	"github.com/andrescamacho/fantasy-manager-go/internal/application/throttle"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/config"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/database"
	"github.com/andrescamacho/fantasy-manager-go/internal/infrastructure/logging"
)

// runtime bundles everything a command needs to talk to the league database
type runtime struct {
	cfg         *config.Config
	logger      *logging.SlogLogger
	db          *gorm.DB
	managerRepo *persistence.GormManagerRepository
	registry    *setup.HandlerRegistry
	mediator    mediator.Mediator
}

// newRuntime loads configuration, opens the database and builds the configured mediator.
// Callers must Close the runtime.
func newRuntime() (*runtime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err := logging.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// A local SQLite store is created on first use; postgres goes through 'migrate'
	if cfg.Database.Type == "sqlite" {
		if err := database.AutoMigrate(db); err != nil {
			_ = database.Close(db)
			_ = logger.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	rt := &runtime{
		cfg:         cfg,
		logger:      logger,
		db:          db,
		managerRepo: persistence.NewGormManagerRepository(db, nil),
	}

	rt.registry = setup.NewHandlerRegistry(
		rt.managerRepo,
		persistence.NewGormPlayerRepository(db),
		persistence.NewGormTransferRepository(db, nil),
		persistence.NewGormLeagueRepository(db, nil),
		persistence.NewGormTeamRepository(db, nil),
		cfg.Transfers.Count,
	)

	if cfg.Throttle.Enabled() {
		rt.registry.WithThrottle(throttle.NewManagerLimiter(cfg.Throttle.RequestsPerSecond, cfg.Throttle.Burst))
	}

	if cfg.Metrics.Enabled {
		if err := rt.initMetrics(); err != nil {
			rt.Close()
			return nil, err
		}
	}

	rt.mediator, err = rt.registry.CreateConfiguredMediator()
	if err != nil {
		rt.Close()
		return nil, fmt.Errorf("failed to configure mediator: %w", err)
	}

	return rt, nil
}

func (rt *runtime) initMetrics() error {
	metrics.InitRegistry()

	commandCollector := metrics.NewCommandMetricsCollector()
	if err := commandCollector.Register(); err != nil {
		return fmt.Errorf("failed to register command metrics: %w", err)
	}
	rt.registry.WithCommandMetrics(commandCollector)

	transferCollector := metrics.NewTransferMetricsCollector()
	if err := transferCollector.Register(); err != nil {
		return fmt.Errorf("failed to register transfer metrics: %w", err)
	}
	metrics.SetGlobalTransferCollector(transferCollector)

	rt.logger.Log(common.LevelDebug, "[Runtime] Prometheus metrics enabled", nil)
	return nil
}

// Context returns a background context carrying the runtime logger
func (rt *runtime) Context() context.Context {
	return common.WithLogger(context.Background(), rt.logger)
}

// Close releases the database connection and the log file, if any
func (rt *runtime) Close() {
	if rt.db != nil {
		_ = database.Close(rt.db)
	}
	if rt.logger != nil {
		_ = rt.logger.Close()
	}
}
