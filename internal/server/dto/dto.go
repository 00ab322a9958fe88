// Package dto holds the JSON documents exchanged over the HTTP API and
// written by log exports.
package dto

import (
	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
)

// UserResponse is returned on user creation and in user listings.
type UserResponse struct {
	UserName string `json:"username"`
	ID       string `json:"_id"`
}

// EntryResponse is returned after an exercise has been added.
type EntryResponse struct {
	UserName    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

// LogItem is a single entry inside LogResponse.
type LogItem struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the result of a log query. Log is never null.
type LogResponse struct {
	UserName string    `json:"username"`
	Count    int       `json:"count"`
	ID       string    `json:"_id"`
	Log      []LogItem `json:"log"`
}

type ExportResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// ErrorResponse carries the request id so a failure can be matched to its
// log line.
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func NewUserResponse(id, userName string) UserResponse {
	return UserResponse{UserName: userName, ID: id}
}

func NewUserList(users []models.UserSummary) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u.ID, u.UserName))
	}
	return out
}

func NewEntryResponse(u *models.User, e *models.LogEntry) EntryResponse {
	return EntryResponse{
		UserName:    u.UserName,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.DateString(),
		ID:          u.ID,
	}
}

// NewLogResponse renders entries, already filtered, for user u.
func NewLogResponse(u *models.User, entries []models.LogEntry) LogResponse {
	items := make([]LogItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, LogItem{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.DateString(),
		})
	}
	return LogResponse{
		UserName: u.UserName,
		Count:    len(items),
		ID:       u.ID,
		Log:      items,
	}
}
