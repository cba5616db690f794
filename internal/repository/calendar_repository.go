package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type CalendarRepository interface {
	Create(ctx context.Context, item *models.CalendarItem) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.CalendarItem, error)
	List(ctx context.Context, hasDraft *bool) ([]*models.CalendarItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateDraft(ctx context.Context, id uuid.UUID, draft string) error
	UpdateScheduledDate(ctx context.Context, id uuid.UUID, date time.Time) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type calendarRepository struct {
	db *sql.DB
}

func NewCalendarRepository(db *sql.DB) CalendarRepository {
	return &calendarRepository{db: db}
}

const calendarColumns = `id, topic, draft, scheduled_date, status, created_at, updated_at`

func (r *calendarRepository) Create(ctx context.Context, item *models.CalendarItem) (uuid.UUID, error) {
	query := `
		INSERT INTO twitter_calendar (topic, scheduled_date, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, item.Topic, item.ScheduledDate, item.Status).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return uuid.Nil, wrapConstraint(err)
	}

	return item.ID, nil
}

func (r *calendarRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.CalendarItem, error) {
	query := `SELECT ` + calendarColumns + ` FROM twitter_calendar WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var item models.CalendarItem
	err := row.Scan(&item.ID, &item.Topic, &item.Draft, &item.ScheduledDate, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &item, nil
}

// List returns calendar items ordered by scheduled date, undated items last.
// hasDraft filters on draft presence: true for items with a non-empty draft,
// false for items without one, nil for everything.
func (r *calendarRepository) List(ctx context.Context, hasDraft *bool) ([]*models.CalendarItem, error) {
	query := `SELECT ` + calendarColumns + ` FROM twitter_calendar`
	if hasDraft != nil {
		if *hasDraft {
			query += ` WHERE draft IS NOT NULL AND draft <> ''`
		} else {
			query += ` WHERE draft IS NULL OR draft = ''`
		}
	}
	query += ` ORDER BY scheduled_date ASC NULLS LAST`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.CalendarItem
	for rows.Next() {
		var item models.CalendarItem
		err := rows.Scan(&item.ID, &item.Topic, &item.Draft, &item.ScheduledDate, &item.Status, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

func (r *calendarRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE twitter_calendar SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		slog.Info(err.Error())
		return wrapConstraint(err)
	}
	return nil
}

func (r *calendarRepository) UpdateDraft(ctx context.Context, id uuid.UUID, draft string) error {
	query := `UPDATE twitter_calendar SET draft = $1, status = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, draft, models.CalendarStatusDrafted, id)
	if err != nil {
		slog.Info(err.Error())
		return wrapConstraint(err)
	}
	return nil
}

func (r *calendarRepository) UpdateScheduledDate(ctx context.Context, id uuid.UUID, date time.Time) error {
	query := `UPDATE twitter_calendar SET scheduled_date = $1, status = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, date, models.CalendarStatusScheduled, id)
	if err != nil {
		slog.Info(err.Error())
		return wrapConstraint(err)
	}
	return nil
}

func (r *calendarRepository) Remove(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM twitter_calendar WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
