package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/repository"
)

type CalendarService interface {
	AddToCalendar(ctx context.Context, topic string, scheduledDate *time.Time, status string) (*models.CalendarItem, error)
	GetItems(ctx context.Context, hasDraft *bool) ([]*models.CalendarItem, error)
	GetItem(ctx context.Context, id string) (*models.CalendarItem, error)
	UpdateStatus(ctx context.Context, id, status string) error
	UpdateDraft(ctx context.Context, id, draft string) error
	Schedule(ctx context.Context, id string, date time.Time) error
	Remove(ctx context.Context, id string) error
}

type calendarService struct {
	cr repository.CalendarRepository
}

func NewCalendarService(cr repository.CalendarRepository) CalendarService {
	return &calendarService{cr: cr}
}

func (s *calendarService) AddToCalendar(ctx context.Context, topic string, scheduledDate *time.Time, status string) (*models.CalendarItem, error) {
	if strings.TrimSpace(topic) == "" {
		err := fmt.Errorf("%w: topic is required", repository.ErrConstraintViolation)
		slog.Info(err.Error())
		return nil, err
	}
	if status == "" {
		status = models.CalendarStatusPending
	}
	if !models.IsCalendarStatus(status) {
		err := fmt.Errorf("%w: unknown calendar status %q", repository.ErrConstraintViolation, status)
		slog.Info(err.Error())
		return nil, err
	}

	item := &models.CalendarItem{
		Topic:         topic,
		ScheduledDate: scheduledDate,
		Status:        status,
	}

	if _, err := s.cr.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *calendarService) GetItems(ctx context.Context, hasDraft *bool) ([]*models.CalendarItem, error) {
	return s.cr.List(ctx, hasDraft)
}

func (s *calendarService) GetItem(ctx context.Context, id string) (*models.CalendarItem, error) {
	itemID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid id %q", repository.ErrConstraintViolation, id)
	}

	item, err := s.cr.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (s *calendarService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.IsCalendarStatus(status) {
		err := fmt.Errorf("%w: unknown calendar status %q", repository.ErrConstraintViolation, status)
		slog.Info(err.Error())
		return err
	}

	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.cr.UpdateStatus(ctx, item.ID, status)
}

// UpdateDraft caps the draft at models.DraftMaxLen runes before storing it.
func (s *calendarService) UpdateDraft(ctx context.Context, id, draft string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if runes := []rune(draft); len(runes) > models.DraftMaxLen {
		draft = string(runes[:models.DraftMaxLen])
	}
	return s.cr.UpdateDraft(ctx, item.ID, draft)
}

func (s *calendarService) Schedule(ctx context.Context, id string, date time.Time) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.cr.UpdateScheduledDate(ctx, item.ID, date)
}

func (s *calendarService) Remove(ctx context.Context, id string) error {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return err
	}
	return s.cr.Remove(ctx, item.ID)
}
