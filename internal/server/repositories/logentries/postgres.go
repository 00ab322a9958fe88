package logentries

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/dbx"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Append inserts the entry; entry_date is a DATE column so only the calendar
// day is kept.
func (r *PostgresRepository) Append(ctx context.Context, e *models.LogEntry) error {
	query := `
		INSERT INTO log_entries (user_id, description, duration, entry_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query, e.UserID, e.Description, e.Duration, e.Date).Scan(&e.Seq)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// ListByUser returns the user's entries ordered by id.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]models.LogEntry, error) {
	query := `
		SELECT id, user_id, description, duration, entry_date FROM log_entries
		WHERE user_id = $1
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select log entries: %w", err)
	}
	defer rows.Close()

	result := []models.LogEntry{}
	for rows.Next() {
		var item models.LogEntry
		var date time.Time
		if err := rows.Scan(&item.Seq, &item.UserID, &item.Description, &item.Duration, &date); err != nil {
			return nil, err
		}
		item.Date = calendarDay(date)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteAll removes every entry.
func (r *PostgresRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM log_entries`)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
