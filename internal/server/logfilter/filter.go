package logfilter

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

// Query selects a sub-sequence of a log. An invalid From or To means the
// bound is open; Limit <= 0 means no limit.
type Query struct {
	From  Date
	To    Date
	Limit int
}

// ParseQuery builds a Query from raw request values. Unparseable bounds are
// treated as absent and a non-positive or non-numeric limit as no limit.
func ParseQuery(from, to, limit string) Query {
	return Query{
		From:  ParseDate(from),
		To:    ParseDate(to),
		Limit: ParseLimit(limit),
	}
}

// ParseLimit returns the positive integer in raw, or 0 for anything else.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}

// Matches reports whether e's date falls inside the inclusive [From, To] range.
func (q Query) Matches(e models.LogEntry) bool {
	if q.From.Valid() && e.Date.Before(q.From.Time()) {
		return false
	}
	if q.To.Valid() && e.Date.After(q.To.Time()) {
		return false
	}
	return true
}

// Filter returns, in original order, the first q.Limit entries whose date
// lies in the inclusive range. Entries after the limit is reached are not
// inspected, so the result is always a prefix of the matches rather than
// the earliest or latest dated ones.
//
// When both bounds are set and From is after To, Filter returns nil and
// common.ErrInvalidRange.
func Filter(entries []models.LogEntry, q Query) ([]models.LogEntry, error) {
	if q.From.Valid() && q.To.Valid() && q.From.Time().After(q.To.Time()) {
		return nil, common.ErrInvalidRange
	}

	limit := q.Limit
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	result := make([]models.LogEntry, 0, limit)
	for _, e := range entries {
		if len(result) == limit {
			break
		}
		if q.Matches(e) {
			result = append(result, e)
		}
	}

	return result, nil
}
