// Package dbtest wires an in-memory database and cache into sys.R for tests.
package dbtest

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/wp-notes-api/persistence/v1/schema"
	"github.com/ribgsilva/wp-notes-api/platform/logger"
	"github.com/ribgsilva/wp-notes-api/sys"

	_ "github.com/proullon/ramsql/driver"
)

// Setup points sys.R at a fresh ramsql database holding the notes schema and at
// a miniredis cache. Everything is torn down when the test ends.
func Setup(t *testing.T) *miniredis.Miniredis {
	t.Helper()

	log, err := logger.New("Notes-Tests")
	if err != nil {
		t.Fatal(err)
	}
	sys.R.Log = log

	// miniredis
	s := miniredis.RunT(t)

	sys.Configs.Database.PingTimeout = 2 * time.Second
	sys.Configs.Database.OperationTimeout = 5 * time.Second
	sys.Configs.Cache.ConnectionURL = s.Addr()
	sys.Configs.Cache.PingTimeout = 2 * time.Second
	sys.Configs.Cache.OperationTimeout = 10 * time.Second
	sys.Configs.Cache.CacheTTL = 24 * time.Hour

	db, err := sql.Open("ramsql", t.Name())
	if err != nil {
		t.Fatalf("error to connect to database: %s", err)
	}
	dbCtx, dbCancel := context.WithTimeout(context.Background(), sys.Configs.Database.PingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		t.Fatalf("could not connect to database: %s", err)
	}
	sys.R.Database = db

	rdb := redis.NewClient(&redis.Options{Addr: sys.Configs.Cache.ConnectionURL})
	rdsCtx, rdsCancel := context.WithTimeout(context.Background(), sys.Configs.Cache.PingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		t.Fatalf("could not connect to redis: %s", err)
	}
	sys.R.Cache = rdb

	if err := schema.Create(context.Background()); err != nil {
		t.Fatalf("sql.Exec: Error: %s\n", err)
	}

	t.Cleanup(func() {
		_ = schema.Drop(context.Background())
		_ = rdb.Close()
		_ = db.Close()
	})

	return s
}

// Insert writes rows straight into the notes table, bypassing the cache.
func Insert(t *testing.T, rows ...[]any) {
	t.Helper()
	for _, r := range rows {
		_, err := sys.R.Database.Exec(`INSERT INTO notes (id, author, post_type, post_status, title, content, modified_gmt) VALUES (?, ?, ?, ?, ?, ?, ?)`, r...)
		if err != nil {
			t.Fatalf("sql.Exec: Error: %s\n", err)
		}
	}
}
