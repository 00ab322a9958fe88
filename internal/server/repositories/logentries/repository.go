// Package logentries persists the per-user exercise log. Entries are only
// ever inserted; the store-assigned sequence keeps insertion order.
package logentries

import (
	"context"

	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

type Repository interface {
	// Append inserts e and sets e.Seq.
	Append(ctx context.Context, e *models.LogEntry) error
	// ListByUser returns the user's entries in insertion order.
	ListByUser(ctx context.Context, userID string) ([]models.LogEntry, error)
	// DeleteAll removes the entries of every user.
	DeleteAll(ctx context.Context) (int64, error)
}
