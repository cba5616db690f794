package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/queue"
	"github.com/ankitdas13/contentdesk/internal/service"
	"github.com/ankitdas13/contentdesk/internal/transfer"
)

type AnalyticsHandler struct {
	s      service.AnalyticsService
	client *asynq.Client
}

func NewAnalyticsHandler(service service.AnalyticsService, client *asynq.Client) *AnalyticsHandler {
	return &AnalyticsHandler{s: service, client: client}
}

func (h *AnalyticsHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.s.Summary(c.Context())
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(summary)
}

// GetRecentPosts returns the latest scraped posts. Without a platform filter
// both feeds are returned side by side.
func (h *AnalyticsHandler) GetRecentPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 5)

	switch c.Query("platform") {
	case models.PlatformLinkedIn:
		posts, err := h.s.RecentLinkedInPosts(c.Context(), limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	case models.PlatformTwitter:
		posts, err := h.s.RecentTwitterPosts(c.Context(), limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	default:
		linkedin, err := h.s.RecentLinkedInPosts(c.Context(), limit)
		if err != nil {
			return serviceError(c, err)
		}
		twitter, err := h.s.RecentTwitterPosts(c.Context(), limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(fiber.Map{
			"linkedin": linkedin,
			"twitter":  twitter,
		})
	}
}

func (h *AnalyticsHandler) GetTopPosts(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	metric := c.Query("metric", "views")

	switch c.Query("platform") {
	case models.PlatformLinkedIn:
		posts, err := h.s.TopLinkedInPosts(c.Context(), metric, limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	case models.PlatformTwitter:
		posts, err := h.s.TopTwitterPosts(c.Context(), metric, limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	default:
		posts, err := h.s.CombinedTopPosts(c.Context(), limit)
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(posts)
	}
}

func (h *AnalyticsHandler) GetFollowerHistory(c *fiber.Ctx) error {
	history, err := h.s.FollowerHistory(c.Context(), c.Query("platform"), c.QueryInt("days", 30))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(history)
}

func (h *AnalyticsHandler) GetImpressionsHistory(c *fiber.Ctx) error {
	history, err := h.s.ImpressionsHistory(c.Context(), c.Query("platform"), c.QueryInt("days", 30))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(history)
}

func (h *AnalyticsHandler) AddImpressions(c *fiber.Ctx) error {
	var body transfer.ImpressionsCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		return parseError(c, err)
	}

	err = h.s.AddDailyImpressions(c.Context(), body.Platform, date, body.TotalImpressions, body.TotalEngagements)
	if err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusCreated)
}

// Refresh queues a scraper run for the requested platform.
func (h *AnalyticsHandler) Refresh(c *fiber.Ctx) error {
	var body transfer.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	err := queue.EnqueueScrapeMetrics(h.client, queue.ScrapeMetricsPayload{Platform: body.Platform})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Scrape queued",
	})
}
