package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"

	"github.com/ankitdas13/contentdesk/internal/queue"
	"github.com/ankitdas13/contentdesk/internal/service"
	"github.com/ankitdas13/contentdesk/internal/transfer"
)

type CalendarHandler struct {
	s      service.CalendarService
	client *asynq.Client
}

func NewCalendarHandler(service service.CalendarService, client *asynq.Client) *CalendarHandler {
	return &CalendarHandler{s: service, client: client}
}

func (h *CalendarHandler) CreateItem(c *fiber.Ctx) error {
	var body transfer.CalendarCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	var scheduledDate *time.Time
	if body.ScheduledDate != "" {
		parsed, err := time.Parse("2006-01-02", body.ScheduledDate)
		if err != nil {
			return parseError(c, err)
		}
		scheduledDate = &parsed
	}

	item, err := h.s.AddToCalendar(c.Context(), body.Topic, scheduledDate, body.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

// ListItems supports has_draft=true|false to split drafted from undrafted
// topics; without it every item is returned.
func (h *CalendarHandler) ListItems(c *fiber.Ctx) error {
	var hasDraft *bool
	switch c.Query("has_draft") {
	case "true":
		value := true
		hasDraft = &value
	case "false":
		value := false
		hasDraft = &value
	}

	items, err := h.s.GetItems(c.Context(), hasDraft)
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(items)
}

func (h *CalendarHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.s.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(item)
}

func (h *CalendarHandler) UpdateStatus(c *fiber.Ctx) error {
	var body transfer.CalendarStatusUpdate
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	if err := h.s.UpdateStatus(c.Context(), body.ID, body.Status); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *CalendarHandler) UpdateDraft(c *fiber.Ctx) error {
	var body transfer.CalendarDraftUpdate
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	if err := h.s.UpdateDraft(c.Context(), body.ID, body.Draft); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *CalendarHandler) Schedule(c *fiber.Ctx) error {
	var body transfer.CalendarScheduleUpdate
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	date, err := time.Parse("2006-01-02", body.ScheduledDate)
	if err != nil {
		return parseError(c, err)
	}

	if err := h.s.Schedule(c.Context(), body.ID, date); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}

// GenerateDraft queues background tweet generation for one calendar item.
func (h *CalendarHandler) GenerateDraft(c *fiber.Ctx) error {
	var body transfer.GenerateDraftRequest
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	if _, err := h.s.GetItem(c.Context(), body.ID); err != nil {
		return serviceError(c, err)
	}

	err := queue.EnqueueGenerateDraft(h.client, queue.GenerateDraftPayload{
		ItemID: body.ID,
		Style:  body.Style,
	})
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Draft generation queued",
	})
}

func (h *CalendarHandler) RemoveItem(c *fiber.Ctx) error {
	var body transfer.ItemRemoval
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	if err := h.s.Remove(c.Context(), body.ID); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusOK)
}
