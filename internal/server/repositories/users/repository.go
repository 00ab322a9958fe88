// Package users persists user identities. Implementations exist for
// PostgreSQL and SQLite; both enforce username uniqueness in the schema.
package users

import (
	"context"

	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

type Repository interface {
	// Create stores user, assigning ID and CreatedAt. A taken username yields
	// common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	// GetByID returns common.ErrorNotFound for an unknown id.
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.UserSummary, error)
	// DeleteAll removes every user and reports how many were removed.
	DeleteAll(ctx context.Context) (int64, error)
}
