package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ankitdas13/contentdesk/internal/models"
)

func TestLinkedInUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	posted := time.Now().Add(-24 * time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (post_id) DO UPDATE SET`)).
		WithArgs("post-1", "https://linkedin.com/posts/1", "hello", &posted, int64(1200), 40, 5, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	repo := NewLinkedInPostRepository(db)
	id, err := repo.Upsert(context.Background(), &models.LinkedInPost{
		PostID:     "post-1",
		URL:        "https://linkedin.com/posts/1",
		Content:    "hello",
		DatePosted: &posted,
		Views:      1200,
		Likes:      40,
		Comments:   5,
		Reposts:    2,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
}

func TestLinkedInListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "post_id", "url", "content", "date_posted", "views", "likes", "comments", "reposts", "scraped_at"}).
		AddRow(int64(2), "p2", "u2", "newer", now, int64(20), 2, 0, 0, now).
		AddRow(int64(1), "p1", "u1", "older", now.Add(-time.Hour), int64(10), 1, 0, 0, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM linkedin_posts ORDER BY date_posted DESC NULLS LAST LIMIT $1`)).
		WithArgs(5).
		WillReturnRows(rows)

	repo := NewLinkedInPostRepository(db)
	posts, err := repo.ListRecent(context.Background(), 5)
	if err != nil {
		t.Fatalf("list recent: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Content != "newer" {
		t.Fatalf("expected newest first, got %q", posts[0].Content)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLinkedInTopByMetricWhitelist(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	rows := func() *sqlmock.Rows {
		now := time.Now()
		return sqlmock.NewRows([]string{"id", "post_id", "url", "content", "date_posted", "views", "likes", "comments", "reposts", "scraped_at"}).
			AddRow(int64(1), "p1", "u", "c", now, int64(10), 1, 0, 0, now)
	}

	// unknown metric must fall back to views rather than reach the SQL
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY views DESC LIMIT $1`)).WithArgs(5).WillReturnRows(rows())
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY likes DESC LIMIT $1`)).WithArgs(5).WillReturnRows(rows())

	repo := NewLinkedInPostRepository(db)
	if _, err := repo.TopByMetric(context.Background(), "views; DROP TABLE", 5); err != nil {
		t.Fatalf("top by metric: %v", err)
	}
	if _, err := repo.TopByMetric(context.Background(), "likes", 5); err != nil {
		t.Fatalf("top by metric: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}

func TestLinkedInStats(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*), COALESCE(SUM(views), 0) FROM linkedin_posts`)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "sum"}).AddRow(int64(12), int64(34000)))

	repo := NewLinkedInPostRepository(db)
	count, views, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if count != 12 || views != 34000 {
		t.Fatalf("unexpected stats: %d posts, %d views", count, views)
	}
}
