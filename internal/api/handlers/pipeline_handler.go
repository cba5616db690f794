package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitdas13/contentdesk/internal/service"
	"github.com/ankitdas13/contentdesk/internal/transfer"
)

type PipelineHandler struct {
	s service.PipelineService
}

func NewPipelineHandler(service service.PipelineService) *PipelineHandler {
	return &PipelineHandler{s: service}
}

func (h *PipelineHandler) CreateItem(c *fiber.Ctx) error {
	var body transfer.PipelineCreation
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	if err := body.Validate(); err != nil {
		return parseError(c, err)
	}

	item, err := h.s.AddToPipeline(c.Context(), body.Topic, body.OriginalURL, body.Status)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *PipelineHandler) ListItems(c *fiber.Ctx) error {
	items, err := h.s.GetItems(c.Context(), c.Query("status"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(items)
}

func (h *PipelineHandler) GetItem(c *fiber.Ctx) error {
	item, err := h.s.GetItem(c.Context(), c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}

	return c.JSON(item)
}

func (h *PipelineHandler) UpdateStatus(c *fiber.Ctx) error {
	var body transfer.PipelineStatusUpdate
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

func (h *PipelineHandler) UpdateDraft(c *fiber.Ctx) error {
	var body transfer.PipelineDraftUpdate
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

func (h *PipelineHandler) RemoveItem(c *fiber.Ctx) error {
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
