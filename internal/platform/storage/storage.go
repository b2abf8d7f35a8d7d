// Package storage selects and opens the repository backend named in the config.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/corebank/internal/core/ports/repositories"
	"github.com/SscSPs/corebank/internal/platform/config"
	"github.com/SscSPs/corebank/internal/repositories/database/pgsql"
	"github.com/SscSPs/corebank/internal/repositories/memory"
	"github.com/SscSPs/corebank/migrations"
	"github.com/SscSPs/corebank/pkg/database"
)

// Open returns the repositories for cfg.StorageDriver and a func that releases them.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("Using in-memory storage; balances and ledger are lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil

	case config.StoragePostgres:
		if cfg.RunMigrations {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, migrations.FS, logger); err != nil {
				return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("running migrations: %w", err)
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}
	return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
}
