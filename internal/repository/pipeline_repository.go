package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type PipelineRepository interface {
	Create(ctx context.Context, item *models.PipelineItem) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.PipelineItem, error)
	List(ctx context.Context, status string) ([]*models.PipelineItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	UpdateDraft(ctx context.Context, id uuid.UUID, draft string) error
	Remove(ctx context.Context, id uuid.UUID) error
}

type pipelineRepository struct {
	db *sql.DB
}

func NewPipelineRepository(db *sql.DB) PipelineRepository {
	return &pipelineRepository{db: db}
}

const pipelineColumns = `id, topic, original_url, status, draft, created_at, updated_at`

func (r *pipelineRepository) Create(ctx context.Context, item *models.PipelineItem) (uuid.UUID, error) {
	query := `
		INSERT INTO content_pipeline (topic, original_url, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRowContext(ctx, query, item.Topic, item.OriginalURL, item.Status).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		slog.Info(err.Error())
		return uuid.Nil, wrapConstraint(err)
	}

	return item.ID, nil
}

func (r *pipelineRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.PipelineItem, error) {
	query := `SELECT ` + pipelineColumns + ` FROM content_pipeline WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id)

	var item models.PipelineItem
	err := row.Scan(&item.ID, &item.Topic, &item.OriginalURL, &item.Status, &item.Draft, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, err
	}

	return &item, nil
}

func (r *pipelineRepository) List(ctx context.Context, status string) ([]*models.PipelineItem, error) {
	query := `SELECT ` + pipelineColumns + ` FROM content_pipeline`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var items []*models.PipelineItem
	for rows.Next() {
		var item models.PipelineItem
		err := rows.Scan(&item.ID, &item.Topic, &item.OriginalURL, &item.Status, &item.Draft, &item.CreatedAt, &item.UpdatedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// UpdateStatus writes only the status column; updated_at is stamped by the
// table trigger inside the same transaction.
func (r *pipelineRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE content_pipeline SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		slog.Info(err.Error())
		return wrapConstraint(err)
	}
	return nil
}

// UpdateDraft stores the draft body and moves the item to Drafted.
func (r *pipelineRepository) UpdateDraft(ctx context.Context, id uuid.UUID, draft string) error {
	query := `UPDATE content_pipeline SET draft = $1, status = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, draft, models.PipelineStatusDrafted, id)
	if err != nil {
		slog.Info(err.Error())
		return wrapConstraint(err)
	}
	return nil
}

func (r *pipelineRepository) Remove(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM content_pipeline WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	return nil
}
