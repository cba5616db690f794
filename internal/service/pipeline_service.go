package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/repository"
)

type PipelineService interface {
	AddToPipeline(ctx context.Context, topic, originalURL, status string) (*models.PipelineItem, error)
	GetItems(ctx context.Context, status string) ([]*models.PipelineItem, error)
	GetItem(ctx context.Context, id string) (*models.PipelineItem, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateDraft(ctx context.Context, id, draft string) error
	Remove(ctx context.Context, id string) error
}

type pipelineService struct {
	pr repository.PipelineRepository
}

func NewPipelineService(pr repository.PipelineRepository) PipelineService {
	return &pipelineService{pr: pr}
}

func (s *pipelineService) AddToPipeline(ctx context.Context, topic, originalURL, status string) (*models.PipelineItem, error) {
	if strings.TrimSpace(topic) == "" {
		err := fmt.Errorf("%w: topic is required", repository.ErrConstraintViolation)
		slog.Info(err.Error())
		return nil, err
	}
	if status == "" {
		status = models.PipelineStatusInspiration
	}
	if !models.IsPipelineStatus(status) {
		err := fmt.Errorf("%w: unknown pipeline status %q", repository.ErrConstraintViolation, status)
		slog.Info(err.Error())
		return nil, err
	}

	item := &models.PipelineItem{
		Topic:  topic,
		Status: status,
	}
	if originalURL != "" {
		item.OriginalURL = &originalURL
	}

	if _, err := s.pr.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *pipelineService) GetItems(ctx context.Context, status string) ([]*models.PipelineItem, error) {
	if status != "" && !models.IsPipelineStatus(status) {
		return nil, fmt.Errorf("%w: unknown pipeline status %q", repository.ErrConstraintViolation, status)
	}
	return s.pr.List(ctx, status)
}

func (s *pipelineService) GetItem(ctx context.Context, id string) (*models.PipelineItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", repository.ErrConstraintViolation, id)
	}

	item, err := s.pr.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

// UpdateStatus accepts any member of the enumeration; transition order is
// deliberately not checked.
func (s *pipelineService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.IsPipelineStatus(status) {
		err := fmt.Errorf("%w: unknown pipeline status %q", repository.ErrConstraintViolation, status)
		slog.Info(err.Error())
		return err
	}

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.pr.UpdateStatus(ctx, item.ID, status)
}

func (s *pipelineService) UpdateDraft(ctx context.Context, id, draft string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.pr.UpdateDraft(ctx, item.ID, draft)
}

func (s *pipelineService) Remove(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.pr.Remove(ctx, item.ID)
}
