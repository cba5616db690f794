package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type TwitterPostRepository interface {
	Upsert(ctx context.Context, post *models.TwitterPost) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*models.TwitterPost, error)
	TopByMetric(ctx context.Context, metric string, limit int) ([]*models.TwitterPost, error)
	Stats(ctx context.Context) (count int64, totalViews int64, err error)
}

type twitterPostRepository struct {
	db *sql.DB
}

func NewTwitterPostRepository(db *sql.DB) TwitterPostRepository {
	return &twitterPostRepository{db: db}
}

const twitterColumns = `id, tweet_id, url, content, date_posted, views, likes, retweets, replies, quotes, scraped_at`

var twitterMetrics = map[string]string{
	"views":    "views",
	"likes":    "likes",
	"retweets": "retweets",
	"replies":  "replies",
	"quotes":   "quotes",
}

func (r *twitterPostRepository) Upsert(ctx context.Context, post *models.TwitterPost) (int64, error) {
	query := `
		INSERT INTO twitter_posts (tweet_id, url, content, date_posted, views, likes, retweets, replies, quotes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (tweet_id) DO UPDATE SET
			url = EXCLUDED.url,
			content = EXCLUDED.content,
			date_posted = EXCLUDED.date_posted,
			views = EXCLUDED.views,
			likes = EXCLUDED.likes,
			retweets = EXCLUDED.retweets,
			replies = EXCLUDED.replies,
			quotes = EXCLUDED.quotes,
			scraped_at = now()
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		post.TweetID, post.URL, post.Content, post.DatePosted,
		post.Views, post.Likes, post.Retweets, post.Replies, post.Quotes).Scan(&id)
	if err != nil {
		slog.Info(err.Error())
		return 0, wrapConstraint(err)
	}
	return id, nil
}

func (r *twitterPostRepository) ListRecent(ctx context.Context, limit int) ([]*models.TwitterPost, error) {
	query := `SELECT ` + twitterColumns + ` FROM twitter_posts ORDER BY date_posted DESC NULLS LAST LIMIT $1`
	return r.query(ctx, query, limit)
}

func (r *twitterPostRepository) TopByMetric(ctx context.Context, metric string, limit int) ([]*models.TwitterPost, error) {
	column, ok := twitterMetrics[metric]
	if !ok {
		column = "views"
	}
	query := `SELECT ` + twitterColumns + ` FROM twitter_posts ORDER BY ` + column + ` DESC LIMIT $1`
	return r.query(ctx, query, limit)
}

func (r *twitterPostRepository) Stats(ctx context.Context) (int64, int64, error) {
	var count, views int64
	query := `SELECT COUNT(*), COALESCE(SUM(views), 0) FROM twitter_posts`
	if err := r.db.QueryRowContext(ctx, query).Scan(&count, &views); err != nil {
		slog.Info(err.Error())
		return 0, 0, err
	}
	return count, views, nil
}

func (r *twitterPostRepository) query(ctx context.Context, query string, limit int) ([]*models.TwitterPost, error) {
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer rows.Close()

	var posts []*models.TwitterPost
	for rows.Next() {
		var post models.TwitterPost
		err := rows.Scan(&post.ID, &post.TweetID, &post.URL, &post.Content, &post.DatePosted,
			&post.Views, &post.Likes, &post.Retweets, &post.Replies, &post.Quotes, &post.ScrapedAt)
		if err != nil {
			slog.Info(err.Error())
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}
