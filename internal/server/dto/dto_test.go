package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewLogResponse_Shape(t *testing.T) {
	u := &models.User{ID: "u-1", UserName: "alice"}
	entries := []models.LogEntry{
		{Description: "run", Duration: 30, Date: day(2023, time.January, 1)},
		{Description: "swim", Duration: 45, Date: day(2023, time.January, 5)},
	}

	b, err := json.Marshal(NewLogResponse(u, entries))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"username": "alice",
		"count": 2,
		"_id": "u-1",
		"log": [
			{"description": "run", "duration": 30, "date": "Sun Jan 01 2023"},
			{"description": "swim", "duration": 45, "date": "Thu Jan 05 2023"}
		]
	}`, string(b))
}

func TestNewLogResponse_EmptyLogIsArray(t *testing.T) {
	b, err := json.Marshal(NewLogResponse(&models.User{ID: "u-1", UserName: "bob"}, nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"bob","count":0,"_id":"u-1","log":[]}`, string(b))
}

func TestNewEntryResponse(t *testing.T) {
	u := &models.User{ID: "u-9", UserName: "carol"}
	e := &models.LogEntry{Description: "yoga", Duration: 20, Date: day(2024, time.February, 29)}

	b, err := json.Marshal(NewEntryResponse(u, e))
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"carol","description":"yoga","duration":20,"date":"Thu Feb 29 2024","_id":"u-9"}`, string(b))
}

func TestNewUserList(t *testing.T) {
	assert.Equal(t, []UserResponse{}, NewUserList(nil))
	assert.Equal(t,
		[]UserResponse{{UserName: "a", ID: "1"}, {UserName: "b", ID: "2"}},
		NewUserList([]models.UserSummary{{ID: "1", UserName: "a"}, {ID: "2", UserName: "b"}}),
	)
}
