// Package services contains server-side business logic. UserService covers
// the user lifecycle; LogService covers the exercise log.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/dbx"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/repomanager"
)

type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
	}
}

// CreateUser registers username exactly as given. A blank username yields
// common.ErrorValidation, a taken one common.ErrorAlreadyExists.
func (s *UserService) CreateUser(ctx context.Context, username string) (*models.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username is required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.Create(ctx, &models.User{UserName: username})
	if err != nil {
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.UserSummary, error) {
	list, err := s.repomanager.Users(s.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	return list, nil
}

// GetUser returns the user with its complete log.
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = loadUser(ctx, s.repomanager, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ClearAll removes every user together with their logs and returns the
// number of users removed.
func (s *UserService) ClearAll(ctx context.Context) (int64, error) {
	var deleted int64

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.LogEntries(tx).DeleteAll(ctx); err != nil {
			return fmt.Errorf("error deleting log entries: %w", err)
		}

		n, err := s.repomanager.Users(tx).DeleteAll(ctx)
		if err != nil {
			return fmt.Errorf("error deleting users: %w", err)
		}
		deleted = n

		return nil
	})
	if err != nil {
		return 0, err
	}

	return deleted, nil
}

// loadUser reads the user and its entries through db.
func loadUser(ctx context.Context, m repomanager.RepositoryManager, db dbx.DBTX, id string) (*models.User, error) {
	user, err := m.Users(db).GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading user %s: %w", id, err)
	}

	entries, err := m.LogEntries(db).ListByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error loading log of user %s: %w", id, err)
	}
	user.Log = models.NewLog(entries...)

	return user, nil
}
