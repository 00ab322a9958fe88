package logentries

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/dbx"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

// dateLayout is how entry_date is stored in SQLite.
const dateLayout = time.DateOnly

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Append(ctx context.Context, e *models.LogEntry) error {
	query := ` INSERT INTO log_entries (user_id, description, duration, entry_date)
			values (?, ?, ?, ?)
			returning id
	`
	err := r.db.QueryRowContext(ctx, query, e.UserID, e.Description, e.Duration, e.Date.Format(dateLayout)).Scan(&e.Seq)
	if err != nil {
		return fmt.Errorf("failed to insert log entry: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) ListByUser(ctx context.Context, userID string) ([]models.LogEntry, error) {
	query := ` select id, user_id, description, duration, entry_date from log_entries
			where user_id = ? order by id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select log entries: %w", err)
	}
	defer rows.Close()

	result := []models.LogEntry{}
	for rows.Next() {
		var item models.LogEntry
		var date string
		if err := rows.Scan(&item.Seq, &item.UserID, &item.Description, &item.Duration, &date); err != nil {
			return nil, err
		}
		item.Date, err = time.Parse(dateLayout, date)
		if err != nil {
			return nil, fmt.Errorf("bad entry_date %q: %w", date, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `delete from log_entries`)
	if err != nil {
		return 0, fmt.Errorf("failed to delete log entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
