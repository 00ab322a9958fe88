package models

import "time"

// User owns an append-only exercise log. ID is assigned by the store.
type User struct {
	ID        string
	UserName  string
	CreatedAt time.Time
	Log       Log
}

// UserSummary is the projection returned when listing users.
type UserSummary struct {
	ID       string
	UserName string
}
