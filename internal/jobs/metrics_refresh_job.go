package job

import (
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/queue"
)

// MetricsRefreshJob periodically enqueues scrape tasks so post metrics and
// follower counts stay current without manual refreshes.
type MetricsRefreshJob struct {
	client *asynq.Client
}

func NewMetricsRefreshJob(client *asynq.Client) *MetricsRefreshJob {
	return &MetricsRefreshJob{client: client}
}

func (c *MetricsRefreshJob) RefreshMetrics() {
	for _, platform := range []string{models.PlatformLinkedIn, models.PlatformTwitter} {
		err := queue.EnqueueScrapeMetrics(c.client, queue.ScrapeMetricsPayload{Platform: platform})
		if err != nil {
			slog.Info(err.Error())
		}
	}
}
