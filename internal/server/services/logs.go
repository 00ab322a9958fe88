package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/dbx"
	"github.com/dmitrijs2005/exercisetracker/internal/server/dto"
	"github.com/dmitrijs2005/exercisetracker/internal/server/export"
	"github.com/dmitrijs2005/exercisetracker/internal/server/logfilter"
	"github.com/dmitrijs2005/exercisetracker/internal/server/metrics"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/dmitrijs2005/exercisetracker/internal/server/repositories/repomanager"
)

// Exporter stores a document under key and returns a URL it can be
// downloaded from.
type Exporter interface {
	Export(ctx context.Context, key string, body []byte) (string, error)
}

// LogQueryResult is a user together with the entries selected by a query.
type LogQueryResult struct {
	User    *models.User
	Entries []models.LogEntry
}

type LogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
	exporter    Exporter
}

// NewLogService constructs a LogService. now is the clock used for entries
// without a valid date; a nil exporter disables Export.
func NewLogService(db *sql.DB, m repomanager.RepositoryManager, now func() time.Time, exporter Exporter) *LogService {
	if now == nil {
		now = time.Now
	}
	return &LogService{
		db:          db,
		repomanager: m,
		now:         now,
		exporter:    exporter,
	}
}

// AddLogEntry appends an exercise to the user's log. rawDate falls back to
// today when absent or invalid; rawDuration must start with an integer.
// The returned user carries the log including the new entry.
func (s *LogService) AddLogEntry(ctx context.Context, userID, description, rawDuration, rawDate string) (*models.User, *models.LogEntry, error) {
	duration, err := parseDuration(rawDuration)
	if err != nil {
		return nil, nil, err
	}

	entry := &models.LogEntry{
		UserID:      userID,
		Description: description,
		Duration:    duration,
		Date:        logfilter.ResolveDate(rawDate, s.now()),
	}

	var user *models.User

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		u, err := loadUser(ctx, s.repomanager, tx, userID)
		if err != nil {
			return err
		}

		if err := s.repomanager.LogEntries(tx).Append(ctx, entry); err != nil {
			return fmt.Errorf("error appending log entry: %w", err)
		}

		u.Log = u.Log.Append(*entry)
		user = u
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	metrics.LogEntriesAdded.Inc()

	return user, entry, nil
}

// GetLog loads the user's log and applies q to it. An invalid range is not
// an error: the result simply holds no entries.
func (s *LogService) GetLog(ctx context.Context, userID string, q logfilter.Query) (*LogQueryResult, error) {
	var user *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		user, err = loadUser(ctx, s.repomanager, tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	entries, err := logfilter.Filter(user.Log.Entries(), q)
	switch {
	case errors.Is(err, common.ErrInvalidRange):
		metrics.LogQueriesTotal.WithLabelValues(metrics.QueryInvalidRange).Inc()
		entries = []models.LogEntry{}
	case err != nil:
		return nil, err
	default:
		metrics.LogQueriesTotal.WithLabelValues(metrics.QueryOK).Inc()
	}

	return &LogQueryResult{User: user, Entries: entries}, nil
}

// Export writes the result of q as a JSON document to object storage and
// returns its key and a download URL.
func (s *LogService) Export(ctx context.Context, userID string, q logfilter.Query) (string, string, error) {
	if s.exporter == nil {
		return "", "", common.ErrExportDisabled
	}

	res, err := s.GetLog(ctx, userID, q)
	if err != nil {
		return "", "", err
	}

	body, err := json.Marshal(dto.NewLogResponse(res.User, res.Entries))
	if err != nil {
		return "", "", fmt.Errorf("error encoding export: %w", err)
	}

	key := export.StorageKey(userID, s.now())

	url, err := s.exporter.Export(ctx, key, body)
	if err != nil {
		return "", "", fmt.Errorf("error exporting log: %w", err)
	}

	return key, url, nil
}

// parseDuration reads the integer at the start of raw, so "30", "30 min"
// and "+30" all give 30. Anything without a leading integer is rejected.
func parseDuration(raw string) (int, error) {
	s := strings.TrimLeft(raw, " \t\r\n")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, fmt.Errorf("%w: duration %q is not a number", common.ErrorValidation, raw)
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, fmt.Errorf("%w: duration %q is out of range", common.ErrorValidation, raw)
	}

	return n, nil
}
