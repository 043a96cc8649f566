package main

import (
	"context"
	"fmt"

	pgrepo "github.com/ogurasousui/gymledger/internal/adapters/repository/postgres"
	sqliterepo "github.com/ogurasousui/gymledger/internal/adapters/repository/sqlite"
	"github.com/ogurasousui/gymledger/internal/core/ledger"
	"github.com/ogurasousui/gymledger/internal/platform/config"
	"github.com/ogurasousui/gymledger/internal/platform/db/migrations"
	pgdb "github.com/ogurasousui/gymledger/internal/platform/db/postgres"
	sqlitedb "github.com/ogurasousui/gymledger/internal/platform/db/sqlite"
)

// store は main が所有するストアのハンドルです。
type store struct {
	repo  ledger.Repository
	tx    ledger.TransactionManager
	close func() error
}

func (s *store) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// openStore はストアを開き、スキーマを初期化します。初期化は何度実行しても既存データを保持します。
func openStore(ctx context.Context, cfg config.DatabaseConfig) (*store, error) {
	var st *store
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := pgdb.NewPool(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ledger.ErrStoreUnavailable, err)
		}
		st = &store{
			repo:  pgrepo.NewLedgerRepository(pool),
			tx:    pgdb.NewTransactionManager(pool),
			close: func() error { pool.Close(); return nil },
		}
	default:
		db, err := sqlitedb.Open(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ledger.ErrStoreUnavailable, err)
		}
		st = &store{
			repo:  sqliterepo.NewLedgerRepository(db),
			tx:    sqlitedb.NewTransactionManager(db),
			close: db.Close,
		}
	}

	if err := migrations.Up(cfg.Driver, cfg.MigrationURL()); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("%w: initialize schema: %w", ledger.ErrStoreUnavailable, err)
	}
	return st, nil
}
