// Package persistence selects the storage backend from configuration:
// PostgreSQL when a connection is configured, the in-memory store otherwise.
package persistence

import (
	"log/slog"

	"editais/config"
	"editais/internal/domain/repository"
	"editais/internal/infra/persistence/memory"
	"editais/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the repository set, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Result bundles every repository plus the transaction manager so a single
// provider decides the backend for all of them.
type Result struct {
	fx.Out

	Tenders repository.TenderRepository
	Filters repository.FilterRepository
	Alerts  repository.AlertHistoryRepository
	Users   repository.UserRepository
	Tx      repository.TransactionManager
}

// NewRepositories creates the repository set based on configuration.
func NewRepositories(params Params) (Result, error) {
	if params.Config.Postgres == nil {
		params.Logger.Info("Postgres not configured, using in-memory store")

		store := memory.NewStore()

		return Result{
			Tenders: memory.NewTenderRepository(store),
			Filters: memory.NewFilterRepository(store),
			Alerts:  memory.NewAlertHistoryRepository(store),
			Users:   memory.NewUserRepository(store),
			Tx:      memory.NewTransactionManager(store),
		}, nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lifecycle,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return Result{}, err
	}

	params.Logger.Info("Using PostgreSQL store")

	return Result{
		Tenders: postgres.NewTenderRepository(db),
		Filters: postgres.NewFilterRepository(db),
		Alerts:  postgres.NewAlertHistoryRepository(db),
		Users:   postgres.NewUserRepository(db),
		Tx:      postgres.NewTransactionManager(db),
	}, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
