package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type FollowerRepository interface {
	Create(ctx context.Context, snapshot *models.FollowerSnapshot) (int64, error)
	History(ctx context.Context, platform string, since time.Time) ([]*models.FollowerSnapshot, error)
}

type followerRepository struct {
	db *sql.DB
}

func NewFollowerRepository(db *sql.DB) FollowerRepository {
	return &followerRepository{db: db}
}

func (r *followerRepository) Create(ctx context.Context, snapshot *models.FollowerSnapshot) (int64, error) {
	query := `
		INSERT INTO follower_snapshots (platform, follower_count, following_count)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, snapshot.Platform, snapshot.FollowerCount, snapshot.FollowingCount).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, wrapConstraint(err)
	}
	return id, nil
}

// History returns snapshots newest first. An empty platform matches all.
func (r *followerRepository) History(ctx context.Context, platform string, since time.Time) ([]*models.FollowerSnapshot, error) {
	query := `
		SELECT id, platform, follower_count, following_count, recorded_at
		FROM follower_snapshots
		WHERE recorded_at >= $1
	`
	args := []any{since}
	if platform != "" {
		query += ` AND platform = $2`
		args = append(args, platform)
	}
	query += ` ORDER BY recorded_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var snapshots []*models.FollowerSnapshot
	for rows.Next() {
		var s models.FollowerSnapshot
		err := rows.Scan(&s.ID, &s.Platform, &s.FollowerCount, &s.FollowingCount, &s.RecordedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		snapshots = append(snapshots, &s)
	}
	return snapshots, rows.Err()
}
