package cli

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mintgene/allocation-ledger/allocconfig"
	"github.com/mintgene/allocation-ledger/appconfig"
	"github.com/mintgene/allocation-ledger/database"
	"github.com/mintgene/allocation-ledger/executor"
	"github.com/mintgene/allocation-ledger/repositories"
	"github.com/mintgene/allocation-ledger/services"
)

// app is the wired process shared by every command
type app struct {
	cfg        *appconfig.Config
	allocation *allocconfig.Config
	db         *sql.DB
	services   *services.Services
	logger     *zap.Logger
}

// newApp reads the environment, loads the allocation table, opens the
// database and builds the services. An invalid allocation table is fatal.
func newApp(logger *zap.Logger) (*app, error) {
	cfg, err := appconfig.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("invalid environment: %w", err)
	}

	allocation, err := allocconfig.Load(cfg.AllocationConfigPath)
	if err != nil {
		return nil, fmt.Errorf("invalid allocation config: %w", err)
	}
	logger.Info("Allocation config loaded",
		zap.String("path", cfg.AllocationConfigPath),
		zap.String("config_digest", allocation.Digest()),
	)

	exec, err := newExecutor(cfg, logger)
	if err != nil {
		return nil, err
	}

	db, err := database.InitializeDatabase(cfg.DatabaseDriver, cfg.DatabasePath, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	opts := services.AllocationOptions{
		ScanWindow:      cfg.ScanWindow,
		ScanBatchLimit:  cfg.ScanBatchLimit,
		ExecutorTimeout: cfg.ExecutorTimeout,
	}

	return &app{
		cfg:        cfg,
		allocation: allocation,
		db:         db,
		services:   services.NewServices(repositories.NewRepositories(db), allocation, exec, opts, logger),
		logger:     logger,
	}, nil
}

func (a *app) Close() {
	if err := database.CloseDB(); err != nil {
		a.logger.Warn("Failed to close database", zap.Error(err))
	}
}

// newExecutor picks the HTTP executor when EXECUTOR_URL is set and the
// simulated one otherwise
func newExecutor(cfg *appconfig.Config, logger *zap.Logger) (executor.Executor, error) {
	if cfg.ExecutorURL == "" {
		logger.Info("EXECUTOR_URL not set, using simulated strategy executor")
		return executor.NewSimulated(logger.Named("executor")), nil
	}

	exec, err := executor.NewHTTPExecutor(executor.HTTPConfig{
		URL:          cfg.ExecutorURL,
		Timeout:      cfg.ExecutorTimeout,
		TokenURL:     cfg.ExecutorTokenURL,
		ClientID:     cfg.ExecutorClientID,
		ClientSecret: cfg.ExecutorClientSecret,
	}, logger.Named("executor"))
	if err != nil {
		return nil, fmt.Errorf("failed to configure executor: %w", err)
	}
	return exec, nil
}
