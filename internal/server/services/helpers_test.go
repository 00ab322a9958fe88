package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

var fixedNow = time.Date(2024, time.March, 10, 15, 30, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func openStore(t *testing.T) (*sql.DB, repomanager.RepositoryManager) {
	t.Helper()
	db, m, err := repomanager.Open(context.Background(), repomanager.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, m
}

type fakeExporter struct {
	key  string
	body []byte
	url  string
	err  error
}

func (f *fakeExporter) Export(ctx context.Context, key string, body []byte) (string, error) {
	f.key, f.body = key, body
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
