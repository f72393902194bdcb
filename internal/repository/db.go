package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/pressly/goose"

	"github.com/limbo/habbit/pkg/cleanup"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// NewPool opens and pings a pgx pool. Closing is registered in cleanup.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating pgxpool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging pgxpool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

// Migrate applies goose migrations from dir using a short-lived database/sql connection
func Migrate(connStr, dir string) error {
	return withMigrationDB(connStr, func(db *sql.DB) error {
		return goose.Up(db, dir)
	})
}

// MigrateDown rolls back the most recent migration
func MigrateDown(connStr, dir string) error {
	return withMigrationDB(connStr, func(db *sql.DB) error {
		return goose.Down(db, dir)
	})
}

func MigrationStatus(connStr, dir string) error {
	return withMigrationDB(connStr, func(db *sql.DB) error {
		return goose.Status(db, dir)
	})
}

func withMigrationDB(connStr string, f func(db *sql.DB) error) error {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return errors.New("opening migration connection error: " + err.Error())
	}
	defer db.Close()
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = f(db); err != nil {
		return errors.New("migration error: " + err.Error())
	}
	return nil
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
