package storage

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Cba40/blogCBA/pkg/envutils"
)

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite3".
	Driver string
	// URL is a connection string for postgres or a file path for sqlite3.
	URL string
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Driver: envutils.Env("DATABASE_DRIVER", "sqlite3"),
		URL:    envutils.Env("DATABASE_URL", "./db.sqlite"),
	}
}

const connectRetryDelay = 5 * time.Second

type NewDatabaseConnectionParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config *DatabaseConfig
	Log    *zap.SugaredLogger
}

// NewDatabaseConnection opens the backing store and blocks until it is
// reachable, retrying on a fixed delay so a transient outage at boot does
// not kill the process. The schema is ensured before the handle is handed
// to anyone else.
func NewDatabaseConnection(params NewDatabaseConnectionParams) (*sql.DB, error) {
	conn, err := sql.Open(params.Config.Driver, params.Config.URL)
	if err != nil {
		return nil, err
	}

	for {
		if err := conn.Ping(); err != nil {
			params.Log.Errorf("database unreachable, retry in %s. Err:%s", connectRetryDelay, err)
			time.Sleep(connectRetryDelay)
			continue
		}
		break
	}

	if err := EnsureSchema(context.Background(), conn); err != nil {
		return nil, err
	}

	params.Lifecycle.Append(fx.StopHook(conn.Close))
	return conn, nil
}
