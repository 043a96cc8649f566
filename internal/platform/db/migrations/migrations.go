// Package migrations は台帳スキーマのマイグレーションを埋め込みで提供します。
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sqlite/*.sql postgres/*.sql
var files embed.FS

// New はドライバに対応する埋め込みマイグレーションを読み込んだ migrate インスタンスを返します。
func New(driver, databaseURL string) (*migrate.Migrate, error) {
	switch driver {
	case "sqlite", "postgres":
	default:
		return nil, fmt.Errorf("migrations: unsupported driver %q", driver)
	}

	src, err := iofs.New(files, driver)
	if err != nil {
		return nil, fmt.Errorf("migrations: open source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("migrations: create migrate instance: %w", err)
	}
	return m, nil
}

// Up はスキーマを最新化します。適用済みの場合は何もしないため起動のたびに呼び出せます。
func Up(driver, databaseURL string) error {
	m, err := New(driver, databaseURL)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrations: up: %w", err)
	}
	return nil
}
