package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"example.com/beadwork-storefront/app/internal/config"
	"example.com/beadwork-storefront/app/internal/infra/notify"
	"example.com/beadwork-storefront/app/internal/infra/persistence/mysql"
	"example.com/beadwork-storefront/app/internal/infra/persistence/postgres"
	"example.com/beadwork-storefront/app/internal/infra/seed"
	cataloguc "example.com/beadwork-storefront/app/internal/usecase/catalog"
	checkoutuc "example.com/beadwork-storefront/app/internal/usecase/checkout"
)

const connectTimeout = 5 * time.Second

// openSeedSource returns the configured catalog seed and a func releasing
// whatever connection backs it.
func openSeedSource(ctx context.Context, cfg config.CatalogConfig) (cataloguc.SeedSource, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.SourceFile:
		return seed.NewFileSource(cfg.Path), noop, nil

	case config.SourceMySQL:
		db, err := openMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return mysql.NewCatalogSource(db), func() { db.Close() }, nil

	case config.SourcePostgres:
		connCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		defer cancel()
		conn, err := pgx.Connect(connCtx, cfg.PostgresDSN)
		if err != nil {
			return nil, nil, fmt.Errorf("pg connect: %w", err)
		}
		if err := conn.Ping(connCtx); err != nil {
			conn.Close(context.Background())
			return nil, nil, fmt.Errorf("pg ping: %w", err)
		}
		return postgres.NewCatalogSource(conn), func() { conn.Close(context.Background()) }, nil

	default:
		return seed.Embedded(), noop, nil
	}
}

func newCatalogStore(source cataloguc.SeedSource, cfg config.CatalogConfig, logger *zap.Logger) *cataloguc.Store {
	return cataloguc.NewStore(source, cataloguc.NewGenerator(cfg.Seed), cataloguc.Options{
		GenerateStart: cfg.GenerateStart,
		GenerateCount: cfg.GenerateCount,
	}, logger.Named("catalog"))
}

func openHandoff(ctx context.Context, cfg config.Config, logger *zap.Logger) (checkoutuc.Handoff, func(), error) {
	switch cfg.Checkout.Handoff {
	case config.HandoffSMTP:
		return notify.NewSMTPHandoff(cfg.SMTP.Addr, cfg.SMTP.From, cfg.SMTP.To), func() {}, nil
	case config.HandoffMySQL:
		db, err := openMySQL(ctx, cfg.Checkout.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		return mysql.NewOrderHandoff(db), func() { db.Close() }, nil
	default:
		return notify.NewLogHandoff(logger.Named("checkout")), func() {}, nil
	}
}

func openMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("mysql open: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("mysql ping: %w", err)
	}
	return db, nil
}
