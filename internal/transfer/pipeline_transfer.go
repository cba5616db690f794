package transfer

import (
	v "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/ankitdas13/contentdesk/internal/models"
)

func statusRule(statuses []string) v.Rule {
	values := make([]interface{}, len(statuses))
	for i, s := range statuses {
		values[i] = s
	}
	return v.In(values...)
}

type PipelineCreation struct {
	Topic       string `json:"topic"`
	OriginalURL string `json:"original_url"`
	Status      string `json:"status"`
}

func (b PipelineCreation) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Topic, v.Required),
		v.Field(&b.OriginalURL, is.URL),
		v.Field(&b.Status, statusRule(models.PipelineStatuses)),
	)
}

type PipelineStatusUpdate struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

func (b PipelineStatusUpdate) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
		v.Field(&b.Status, v.Required, statusRule(models.PipelineStatuses)),
	)
}

type PipelineDraftUpdate struct {
	ID    string `json:"id"`
	Draft string `json:"draft"`
}

func (b PipelineDraftUpdate) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
		v.Field(&b.Draft, v.Required),
	)
}

type ItemRemoval struct {
	ID string `json:"id"`
}

func (b ItemRemoval) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.ID, v.Required, is.UUID),
	)
}
