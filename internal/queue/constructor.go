package queue

import (
	"github.com/ankitdas13/contentdesk/internal/scraper"
	"github.com/ankitdas13/contentdesk/internal/service"
)

type Queue struct {
	cs service.CalendarService
	ds service.DraftService
	li *scraper.LinkedInScraper
	tw *scraper.TwitterScraper
}

func NewQueue(
	cs service.CalendarService,
	ds service.DraftService,
	li *scraper.LinkedInScraper,
	tw *scraper.TwitterScraper) *Queue {
	return &Queue{
		cs: cs,
		ds: ds,
		li: li,
		tw: tw,
	}
}

const (
	TaskTypeGenerateDraft = "draft:generate"
	TaskTypeScrapeMetrics = "scrape:metrics"
)

type GenerateDraftPayload struct {
	ItemID string `json:"item_id"`
	Style  string `json:"style"`
}

type ScrapeMetricsPayload struct {
	Platform string `json:"platform"`
}
