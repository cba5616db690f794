package models

import (
	"time"

	"github.com/google/uuid"
)

type CalendarItem struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Topic         string     `db:"topic" json:"topic"`
	Draft         *string    `db:"draft" json:"draft"`
	ScheduledDate *time.Time `db:"scheduled_date" json:"scheduled_date"`
	Status        string     `db:"status" json:"status"` // Pending, Drafted, Scheduled, Published
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

const (
	CalendarStatusPending   = "Pending"
	CalendarStatusDrafted   = "Drafted"
	CalendarStatusScheduled = "Scheduled"
	CalendarStatusPublished = "Published"
)

var CalendarStatuses = []string{
	CalendarStatusPending,
	CalendarStatusDrafted,
	CalendarStatusScheduled,
	CalendarStatusPublished,
}

func IsCalendarStatus(s string) bool {
	for _, v := range CalendarStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// DraftMaxLen caps stored tweet drafts, matching the limit the original
// Notion-backed calendar enforced.
const DraftMaxLen = 2000
