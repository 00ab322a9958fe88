package models

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/exercisetracker/internal/common"
)

// LogEntry is one recorded activity. Date carries no time of day: it is
// always midnight UTC of the calendar day. Seq is the store-assigned
// position used to keep insertion order.
type LogEntry struct {
	Seq         int64
	UserID      string
	Description string
	Duration    int
	Date        time.Time
}

// DateString renders Date in the wire calendar format.
func (e LogEntry) DateString() string {
	return e.Date.Format(common.DateLayout)
}

// Log is an ordered, append-only sequence of entries. Appending never
// writes into storage shared with an earlier Log value, so a reader holding
// an older Log never observes a partially written entry.
type Log struct {
	entries []LogEntry
}

// NewLog builds a Log holding a copy of entries in the given order.
func NewLog(entries ...LogEntry) Log {
	return Log{entries: slices.Clone(entries)}
}

// Append returns a new Log with e added at the end; l is left untouched.
func (l Log) Append(e LogEntry) Log {
	return Log{entries: append(slices.Clip(l.entries), e)}
}

// Len reports the number of entries.
func (l Log) Len() int {
	return len(l.entries)
}

// Entries returns the entries in insertion order. The slice is a copy.
func (l Log) Entries() []LogEntry {
	return slices.Clone(l.entries)
}
