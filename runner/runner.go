// Package runner assembles the sandbox from configuration: storage backend,
// mock gateway, handler group and HTTP server.
package runner

import (
	"context"
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/telclab/topup-sandbox/config"
	"github.com/telclab/topup-sandbox/gateway"
	"github.com/telclab/topup-sandbox/memory"
	"github.com/telclab/topup-sandbox/models"
	"github.com/telclab/topup-sandbox/postgres"
	"github.com/telclab/topup-sandbox/sqlite"
	"github.com/telclab/topup-sandbox/web"
	"github.com/telclab/topup-sandbox/web/handlers"
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type sandboxRunner struct {
	srv     *web.Server
	logger  *zap.Logger
	closers []func() error
}

func New(cfg *config.Config, logger *zap.Logger) (Runner, error) {
	ans := &sandboxRunner{logger: logger}

	users, txns, err := ans.openStores(cfg)
	if err != nil {
		return nil, err
	}

	sim := gateway.New(gateway.Config{
		SlowDelay:   cfg.Gateway.SlowDelay,
		ChargeDelay: cfg.Gateway.ChargeDelay,
	}, logger)

	group := handlers.NewHandlerGroup(handlers.Dependencies{
		Logger:       logger,
		Users:        users,
		Transactions: txns,
		Gateway:      sim,
	})

	router := handlers.NewRouter(group, logger)
	ans.srv = web.New(router, cfg.Server.Addr, logger)

	return ans, nil
}

func (r *sandboxRunner) openStores(cfg *config.Config) (models.UserRepository, models.TransactionRepository, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		r.logger.Info("using in-memory storage")

		return memory.NewUserRepository(), memory.NewTransactionRepository(), nil
	case config.BackendPostgres:
		db, err := postgres.Open(cfg.Storage.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}

		r.closers = append(r.closers, db.Close)
		r.logger.Info("using postgres storage")

		return postgres.NewUserRepository(db), postgres.NewTransactionRepository(db), nil
	case config.BackendSQLite:
		db, err := sqlite.Open(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}

		r.closers = append(r.closers, func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}

			return sqlDB.Close()
		})

		r.logger.Info("using sqlite storage", zap.String("path", cfg.Storage.SQLite.Path))

		return sqlite.NewUserRepository(db), sqlite.NewTransactionRepository(db), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend: %s", cfg.Storage.Backend)
	}
}

func (r *sandboxRunner) Run(ctx context.Context) error {
	return r.srv.Start(ctx)
}

func (r *sandboxRunner) Close(context.Context) error {
	var err error

	for _, closer := range r.closers {
		err = multierr.Append(err, closer())
	}

	return err
}
