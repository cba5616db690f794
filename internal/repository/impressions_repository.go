package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type ImpressionsRepository interface {
	Create(ctx context.Context, imp *models.DailyImpressions) (int64, error)
	History(ctx context.Context, platform string, since time.Time) ([]*models.DailyImpressions, error)
}

type impressionsRepository struct {
	db *sql.DB
}

func NewImpressionsRepository(db *sql.DB) ImpressionsRepository {
	return &impressionsRepository{db: db}
}

func (r *impressionsRepository) Create(ctx context.Context, imp *models.DailyImpressions) (int64, error) {
	query := `
		INSERT INTO daily_impressions (platform, date, total_impressions, total_engagements)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, imp.Platform, imp.Date, imp.TotalImpressions, imp.TotalEngagements).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, wrapConstraint(err)
	}
	return id, nil
}

func (r *impressionsRepository) History(ctx context.Context, platform string, since time.Time) ([]*models.DailyImpressions, error) {
	query := `
		SELECT id, platform, date, total_impressions, total_engagements, recorded_at
		FROM daily_impressions
		WHERE date >= $1
	`
	args := []any{since}
	if platform != "" {
		query += ` AND platform = $2`
		args = append(args, platform)
	}
	query += ` ORDER BY date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var history []*models.DailyImpressions
	for rows.Next() {
		var imp models.DailyImpressions
		err := rows.Scan(&imp.ID, &imp.Platform, &imp.Date, &imp.TotalImpressions, &imp.TotalEngagements, &imp.RecordedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		history = append(history, &imp)
	}
	return history, rows.Err()
}
