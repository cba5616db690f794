package transfer

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type CalendarCreation struct {
	Topic         string `json:"topic"`
	ScheduledDate string `json:"scheduled_date"` // 2006-01-02, optional
	Status        string `json:"status"`
}

func (b CalendarCreation) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Topic, v.Required),
		v.Field(&b.ScheduledDate, v.Date("2006-01-02")),
		v.Field(&b.Status, statusRule(models.CalendarStatuses)),
	)
}

type CalendarStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (b CalendarStatusUpdate) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
		v.Field(&b.Status, v.Required, statusRule(models.CalendarStatuses)),
	)
}

type CalendarDraftUpdate struct {
	ID    string `json:"id"`
	Draft string `json:"draft"`
}

func (b CalendarDraftUpdate) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
		v.Field(&b.Draft, v.Required),
	)
}

type CalendarScheduleUpdate struct {
	ID            string `json:"id"`
	ScheduledDate string `json:"scheduled_date"`
}

func (b CalendarScheduleUpdate) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
		v.Field(&b.ScheduledDate, v.Required, v.Date("2006-01-02")),
	)
}

type GenerateDraftRequest struct {
	ID    string `json:"id"`
	Style string `json:"style"`
}

func (b GenerateDraftRequest) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
		v.Field(&b.Style, v.In("professional", "casual", "engaging")),
	)
}
