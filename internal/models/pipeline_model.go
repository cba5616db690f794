package models

import (
	"time"

	"github.com/google/uuid"
)

type PipelineItem struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Topic       string    `db:"topic" json:"topic"`
	OriginalURL *string   `db:"original_url" json:"original_url"`
	Status      string    `db:"status" json:"status"` // Inspiration, Drafted, Approved, Published
	Draft       *string   `db:"draft" json:"draft"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

const (
	PipelineStatusInspiration = "Inspiration"
	PipelineStatusDrafted     = "Drafted"
	PipelineStatusApproved    = "Approved"
	PipelineStatusPublished   = "Published"
)

// PipelineStatuses is the closed set accepted by content_pipeline.status.
// Any value may follow any other; membership is the only rule.
var PipelineStatuses = []string{
	PipelineStatusInspiration,
	PipelineStatusDrafted,
	PipelineStatusApproved,
	PipelineStatusPublished,
}

func IsPipelineStatus(s string) bool {
	for _, v := range PipelineStatuses {
		if s == v {
			return true
		}
	}
	return false
}
