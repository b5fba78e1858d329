// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"secure-it/cmd"
	"secure-it/internal/data/repository"
	"secure-it/internal/wire"
	"secure-it/pkg/database"
	"secure-it/pkg/events"
	"secure-it/pkg/utils"

	"go.uber.org/zap"
)

const (
	bootTimeout = 30 * time.Second

	eventBuffer         = 256
	eventPublishTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application stopped: %v", err)
	}
}

// run owns every deferred cleanup so the publisher and logger are flushed
// before main exits on an error.
func run() error {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.String("db_driver", config.Database.Driver),
		zap.Bool("debug", config.App.Debug),
	)

	// Site mode store: redis when configured and reachable, memory otherwise
	siteMode := initSiteModeStore(config, logger)

	// Customer events are dispatched off the request path
	publisher := events.NewNoopPublisher()
	if config.Events.URL != "" {
		rabbit := events.NewRabbitPublisher(config.Events.URL, config.Events.Queue, logger)
		publisher = events.NewAsyncPublisher(rabbit, eventBuffer, eventPublishTimeout, logger)
		logger.Info("Customer events enabled", zap.String("queue", config.Events.Queue))
	}
	defer publisher.Close()

	// Connect to database & initialize all repositories
	repos, closeDB, err := initRepository(config, siteMode, logger)
	if err != nil {
		logger.Error("Failed to initialize repository", zap.Error(err))
		return err
	}
	defer closeDB()

	// Wire all dependencies
	app := wire.Wiring(repos, config, publisher, logger)

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		return err
	}
	return nil
}

func initRepository(config *utils.Config, siteMode repository.SiteModeRepository, logger *zap.Logger) (*repository.Repository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), bootTimeout)
	defer cancel()

	switch config.Database.Driver {
	case utils.DriverMySQL:
		db, err := database.InitMySQL(config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if config.Database.AutoMigrate {
			if err := database.EnsureMySQLSchema(ctx, db); err != nil {
				db.Close()
				return nil, nil, fmt.Errorf("prepare schema: %w", err)
			}
		}
		logger.Info("Database connected successfully", zap.String("driver", utils.DriverMySQL))
		return repository.NewMySQLRepository(db, siteMode, logger), func() { db.Close() }, nil

	default:
		db, err := database.InitDB(config.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to database: %w", err)
		}
		if config.Database.AutoMigrate {
			if err := database.EnsureSchema(ctx, db); err != nil {
				db.Close()
				return nil, nil, fmt.Errorf("prepare schema: %w", err)
			}
		}
		logger.Info("Database connected successfully", zap.String("driver", utils.DriverPostgres))
		return repository.NewRepository(db, siteMode, logger), db.Close, nil
	}
}

func initSiteModeStore(config *utils.Config, logger *zap.Logger) repository.SiteModeRepository {
	rdb, err := database.InitRedis(config.Redis)
	if err != nil {
		logger.Warn("Redis unavailable, site mode kept in memory", zap.Error(err))
		return repository.NewMemorySiteModeRepository(config.Site.DefaultMode)
	}
	if rdb == nil {
		return repository.NewMemorySiteModeRepository(config.Site.DefaultMode)
	}

	logger.Info("Redis connected", zap.String("addr", config.Redis.Addr))
	return repository.NewRedisSiteModeRepository(rdb, config.Site.DefaultMode, logger)
}
