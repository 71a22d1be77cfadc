package db

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"github.com/bidhuripriyanshu/transport-scheduler/internal/config"
)

func NewDb(ctx context.Context, cfg config.Config, log *zap.Logger) (*Database, error) {
	url := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PostgresUser,
		cfg.PostgresPassword,
		cfg.PostgresHost,
		cfg.PostgresPort,
		cfg.PostgresDB,
	)

	pool, err := pgxpool.Connect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := runMigrations(url, log); err != nil {
		pool.Close()
		return nil, err
	}

	log.Info("Postgres connected", zap.String("db", cfg.PostgresDB))

	return NewDatabase(pool), nil
}

func runMigrations(url string, log *zap.Logger) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	mPath := filepath.Join(cwd, "migrations")

	m, err := migrate.New("file://"+mPath, url)
	if err != nil {
		log.Warn("migration init error or no migrations found", zap.Error(err))
		return nil
	}

	if err := m.Up(); err != nil {
		if strings.Contains(err.Error(), "no change") {
			log.Info("no migrations to apply")
			return nil
		}
		return fmt.Errorf("migration up error: %w", err)
	}

	log.Info("migrations applied")
	return nil
}
