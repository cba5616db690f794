package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/ankitdas13/contentdesk/internal/models"
)

func TestTwitterUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	posted := time.Now().Add(-time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta(`ON CONFLICT (tweet_id) DO UPDATE SET`)).
		WithArgs("123", "https://twitter.com/u/status/123", "hello", &posted, int64(900), 40, 5, 3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	repo := NewTwitterPostRepository(db)
	id, err := repo.Upsert(context.Background(), &models.TwitterPost{
		TweetID:    "123",
		URL:        "https://twitter.com/u/status/123",
		Content:    "hello",
		DatePosted: &posted,
		Views:      900,
		Likes:      40,
		Retweets:   5,
		Replies:    3,
		Quotes:     1,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if id != 4 {
		t.Fatalf("expected id 4, got %d", id)
	}
}

func TestTwitterListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "tweet_id", "url", "content", "date_posted", "views", "likes", "retweets", "replies", "quotes", "scraped_at"}).
		AddRow(int64(2), "t2", "u2", "newer", now, int64(20), 2, 0, 0, 0, now).
		AddRow(int64(1), "t1", "u1", "older", now.Add(-time.Hour), int64(10), 1, 0, 0, 0, now)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM twitter_posts ORDER BY date_posted DESC NULLS LAST LIMIT $1`)).
		WithArgs(5).
		WillReturnRows(rows)

	repo := NewTwitterPostRepository(db)
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
