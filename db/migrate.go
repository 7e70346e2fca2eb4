package db

import (
	"database/sql"
	"embed"
	"net/url"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

// SetupPostgres applies pending migrations over a plain database/sql
// connection. The pgx pool stays untouched; goose needs its own handle.
func SetupPostgres(dsn string, logger *zap.Logger) error {
	migrationsDSN, err := migrationDSN(dsn)

	if err != nil {
		return err
	}

	database, err := sql.Open("postgres", migrationsDSN)

	if err != nil {
		return err
	}

	defer func() {
		if closeErr := database.Close(); closeErr != nil && logger != nil {
			logger.Error("can not close migration connection", zap.Error(closeErr))
		}
	}()

	goose.SetBaseFS(migrations)

	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err = goose.Up(database, "migrations"); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("migrations applied")
	}

	return nil
}

// migrationDSN drops pgxpool-only settings from the connection URL. lib/pq
// forwards every unknown parameter to the server, and Postgres fatally
// rejects pool_max_conns.
func migrationDSN(dsn string) (string, error) {
	u, err := url.Parse(dsn)

	if err != nil {
		return "", err
	}

	query := u.Query()
	query.Del("pool_max_conns")
	u.RawQuery = query.Encode()

	return u.String(), nil
}
