package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type LinkedInPostRepository interface {
	Upsert(ctx context.Context, post *models.LinkedInPost) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.LinkedInPost, error)
	TopByMetric(ctx context.Context, metric string, limit int) ([]*models.LinkedInPost, error)
	Stats(ctx context.Context) (count int64, totalViews int64, err error)
}

type linkedinPostRepository struct {
	db *sql.DB
}

func NewLinkedInPostRepository(db *sql.DB) LinkedInPostRepository {
	return &linkedinPostRepository{db: db}
}

const linkedinColumns = `id, post_id, url, content, date_posted, views, likes, comments, reposts, scraped_at`

// linkedinMetrics whitelists the columns allowed in ORDER BY for TopByMetric.
var linkedinMetrics = map[string]string{
	"views":    "views",
	"likes":    "likes",
	"comments": "comments",
	"reposts":  "reposts",
}

func (r *linkedinPostRepository) Upsert(ctx context.Context, post *models.LinkedInPost) (int64, error) {
	query := `
		INSERT INTO linkedin_posts (post_id, url, content, date_posted, views, likes, comments, reposts)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (post_id) DO UPDATE SET
			url = EXCLUDED.url,
			content = EXCLUDED.content,
			date_posted = EXCLUDED.date_posted,
			views = EXCLUDED.views,
			likes = EXCLUDED.likes,
			comments = EXCLUDED.comments,
			reposts = EXCLUDED.reposts,
			scraped_at = now()
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		post.PostID, post.URL, post.Content, post.DatePosted,
		post.Views, post.Likes, post.Comments, post.Reposts).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, wrapConstraint(err)
	}
	return id, nil
}

func (r *linkedinPostRepository) ListRecent(ctx context.Context, limit int) ([]*models.LinkedInPost, error) {
	query := `SELECT ` + linkedinColumns + ` FROM linkedin_posts ORDER BY date_posted DESC NULLS LAST LIMIT $1`
	return r.query(ctx, query, limit)
}

func (r *linkedinPostRepository) TopByMetric(ctx context.Context, metric string, limit int) ([]*models.LinkedInPost, error) {
	column, ok := linkedinMetrics[metric]
	if !ok {
		column = "views"
	}
	query := `SELECT ` + linkedinColumns + ` FROM linkedin_posts ORDER BY ` + column + ` DESC LIMIT $1`
	return r.query(ctx, query, limit)
}

func (r *linkedinPostRepository) Stats(ctx context.Context) (int64, int64, error) {
	var count, views int64
	query := `SELECT COUNT(*), COALESCE(SUM(views), 0) FROM linkedin_posts`
	if err := r.db.QueryRowContext(ctx, query).Scan(&count, &views); err != nil {
		slog.Info(err.Error())
		return 0, 0, err
	}
	return count, views, nil
}

func (r *linkedinPostRepository) query(ctx context.Context, query string, limit int) ([]*models.LinkedInPost, error) {
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.LinkedInPost
	for rows.Next() {
		var post models.LinkedInPost
		err := rows.Scan(&post.ID, &post.PostID, &post.URL, &post.Content, &post.DatePosted,
			&post.Views, &post.Likes, &post.Comments, &post.Reposts, &post.ScrapedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}
