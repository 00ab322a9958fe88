package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUser_AssignsID(t *testing.T) {
	db, m := openStore(t)
	svc := NewUserService(db, m)

	u, err := svc.CreateUser(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.UserName)
}

func TestCreateUser_KeepsUsernameVerbatim(t *testing.T) {
	db, m := openStore(t)
	svc := NewUserService(db, m)
	ctx := context.Background()

	plain, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	padded, err := svc.CreateUser(ctx, "alice ")
	require.NoError(t, err)

	assert.Equal(t, "alice ", padded.UserName)
	assert.NotEqual(t, plain.ID, padded.ID)

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	db, m := openStore(t)
	svc := NewUserService(db, m)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, "alice")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
}

func TestCreateUser_EmptyUsername(t *testing.T) {
	db, m := openStore(t)
	svc := NewUserService(db, m)

	_, err := svc.CreateUser(context.Background(), "   ")
	assert.ErrorIs(t, err, common.ErrorValidation)
}

func TestListUsers(t *testing.T) {
	db, m := openStore(t)
	svc := NewUserService(db, m)
	ctx := context.Background()

	list, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	a, err := svc.CreateUser(ctx, "alice")
	require.NoError(t, err)
	b, err := svc.CreateUser(ctx, "bob")
	require.NoError(t, err)

	list, err = svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}

func TestGetUser_LoadsLog(t *testing.T) {
	db, m := openStore(t)
	users := NewUserService(db, m)
	logs := NewLogService(db, m, clock, nil)
	ctx := context.Background()

	u, err := users.CreateUser(ctx, "alice")
	require.NoError(t, err)
	_, _, err = logs.AddLogEntry(ctx, u.ID, "run", "30", "2023-01-01")
	require.NoError(t, err)

	got, err := users.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.UserName)
	assert.Equal(t, 1, got.Log.Len())

	_, err = users.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClearAll(t *testing.T) {
	db, m := openStore(t)
	users := NewUserService(db, m)
	logs := NewLogService(db, m, clock, nil)
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c"} {
		u, err := users.CreateUser(ctx, name)
		require.NoError(t, err)
		_, _, err = logs.AddLogEntry(ctx, u.ID, "walk", "10", "")
		require.NoError(t, err)
	}

	n, err := users.ClearAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	list, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	var entries int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM log_entries").Scan(&entries))
	assert.Zero(t, entries)

	n, err = users.ClearAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestClearAll_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM log_entries").WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec("DELETE FROM users").WillReturnError(errors.New("locked"))
	mock.ExpectRollback()

	svc := NewUserService(db, &repomanager.PostgresRepositoryManager{})
	_, err = svc.ClearAll(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error deleting users")
	require.NoError(t, mock.ExpectationsWereMet())
}
