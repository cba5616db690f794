package transfer

import (
	v "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type RefreshRequest struct {
	Platform string `json:"platform"`
}

func (b RefreshRequest) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Platform, v.Required, v.In(models.PlatformLinkedIn, models.PlatformTwitter)),
	)
}

type ImpressionsCreation struct {
	Platform         string `json:"platform"`
	Date             string `json:"date"` // 2006-01-02
	TotalImpressions int64  `json:"total_impressions"`
	TotalEngagements int    `json:"total_engagements"`
}

func (b ImpressionsCreation) Validate() error {
	return v.ValidateStruct(&b,
		v.Field(&b.Platform, v.Required, v.In(models.PlatformLinkedIn, models.PlatformTwitter)),
		v.Field(&b.Date, v.Required, v.Date("2006-01-02")),
		v.Field(&b.TotalImpressions, v.Min(0)),
		v.Field(&b.TotalEngagements, v.Min(0)),
	)
}
