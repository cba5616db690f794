package service

import (
	"context"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type fakeLinkedInRepo struct {
	posts       []*models.LinkedInPost
	recentLimit int
}

func (f *fakeLinkedInRepo) Upsert(ctx context.Context, post *models.LinkedInPost) (int64, error) {
	f.posts = append(f.posts, post)
	return int64(len(f.posts)), nil
}

func (f *fakeLinkedInRepo) ListRecent(ctx context.Context, limit int) ([]*models.LinkedInPost, error) {
	f.recentLimit = limit
	return f.posts, nil
}

func (f *fakeLinkedInRepo) TopByMetric(ctx context.Context, metric string, limit int) ([]*models.LinkedInPost, error) {
	return f.posts, nil
}

func (f *fakeLinkedInRepo) Stats(ctx context.Context) (int64, int64, error) {
	var views int64
	for _, post := range f.posts {
		views += post.Views
	}
	return int64(len(f.posts)), views, nil
}

type fakeTwitterRepo struct {
	posts       []*models.TwitterPost
	recentLimit int
}

func (f *fakeTwitterRepo) Upsert(ctx context.Context, post *models.TwitterPost) (int64, error) {
	f.posts = append(f.posts, post)
	return int64(len(f.posts)), nil
}

func (f *fakeTwitterRepo) ListRecent(ctx context.Context, limit int) ([]*models.TwitterPost, error) {
	f.recentLimit = limit
	return f.posts, nil
}

func (f *fakeTwitterRepo) TopByMetric(ctx context.Context, metric string, limit int) ([]*models.TwitterPost, error) {
	return f.posts, nil
}

func (f *fakeTwitterRepo) Stats(ctx context.Context) (int64, int64, error) {
	var views int64
	for _, post := range f.posts {
		views += post.Views
	}
	return int64(len(f.posts)), views, nil
}

type fakeFollowerRepo struct {
	snapshots []*models.FollowerSnapshot
}

func (f *fakeFollowerRepo) Create(ctx context.Context, snapshot *models.FollowerSnapshot) (int64, error) {
	f.snapshots = append(f.snapshots, snapshot)
	return int64(len(f.snapshots)), nil
}

func (f *fakeFollowerRepo) History(ctx context.Context, platform string, since time.Time) ([]*models.FollowerSnapshot, error) {
	return f.snapshots, nil
}

type fakeImpressionsRepo struct {
	rows []*models.DailyImpressions
}

func (f *fakeImpressionsRepo) Create(ctx context.Context, imp *models.DailyImpressions) (int64, error) {
	f.rows = append(f.rows, imp)
	return int64(len(f.rows)), nil
}

func (f *fakeImpressionsRepo) History(ctx context.Context, platform string, since time.Time) ([]*models.DailyImpressions, error) {
	return f.rows, nil
}

func newAnalyticsFixture() (AnalyticsService, *fakeLinkedInRepo, *fakeTwitterRepo) {
	lr := &fakeLinkedInRepo{}
	tr := &fakeTwitterRepo{}
	s := NewAnalyticsService(lr, tr, &fakeFollowerRepo{}, &fakeImpressionsRepo{})
	return s, lr, tr
}

func TestRecentPosts(t *testing.T) {
	s, lr, tr := newAnalyticsFixture()

	lr.posts = []*models.LinkedInPost{{PostID: "li-1", Content: "hiring update"}}
	tr.posts = []*models.TwitterPost{{TweetID: "tw-1", Content: "launch thread"}}

	posts, err := s.RecentLinkedInPosts(context.Background(), 0)
	if err != nil {
		t.Fatalf("recent linkedin: %v", err)
	}
	if len(posts) != 1 || posts[0].PostID != "li-1" {
		t.Fatalf("unexpected posts: %+v", posts)
	}
	if lr.recentLimit != 5 {
		t.Fatalf("expected default limit 5, got %d", lr.recentLimit)
	}

	tweets, err := s.RecentTwitterPosts(context.Background(), 3)
	if err != nil {
		t.Fatalf("recent twitter: %v", err)
	}
	if len(tweets) != 1 || tweets[0].TweetID != "tw-1" {
		t.Fatalf("unexpected tweets: %+v", tweets)
	}
	if tr.recentLimit != 3 {
		t.Fatalf("expected limit 3, got %d", tr.recentLimit)
	}
}

func TestCombinedTopPostsOrdering(t *testing.T) {
	s, lr, tr := newAnalyticsFixture()

	lr.posts = []*models.LinkedInPost{
		{PostID: "li-1", Content: "hiring update", Views: 500, Likes: 10, Comments: 2, Reposts: 1},
		{PostID: "li-2", Content: "launch recap", Views: 90},
	}
	tr.posts = []*models.TwitterPost{
		{TweetID: "tw-1", Content: "launch thread", Views: 900, Likes: 40, Retweets: 5, Replies: 3, Quotes: 1},
	}

	got, err := s.CombinedTopPosts(context.Background(), 2)
	if err != nil {
		t.Fatalf("combined: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	if got[0].Platform != "Twitter" || got[0].Views != 900 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if got[0].Engagement != 49 {
		t.Fatalf("expected engagement 49, got %d", got[0].Engagement)
	}
	if got[1].Platform != "LinkedIn" || got[1].Views != 500 {
		t.Fatalf("unexpected runner-up: %+v", got[1])
	}
	if got[1].Engagement != 13 {
		t.Fatalf("expected engagement 13, got %d", got[1].Engagement)
	}
}

func TestCombinedTopPostsTruncatesContent(t *testing.T) {
	s, lr, _ := newAnalyticsFixture()

	lr.posts = []*models.LinkedInPost{
		{PostID: "li-1", Content: strings.Repeat("a", 150), Views: 10},
	}

	got, err := s.CombinedTopPosts(context.Background(), 5)
	if err != nil {
		t.Fatalf("combined: %v", err)
	}
	want := strings.Repeat("a", 100) + "..."
	if got[0].Content != want {
		t.Fatalf("expected truncated content, got %d chars", len(got[0].Content))
	}
}

func TestCombinedTopPostsTruncatesOnRuneBoundary(t *testing.T) {
	s, lr, _ := newAnalyticsFixture()

	lr.posts = []*models.LinkedInPost{
		{PostID: "li-1", Content: strings.Repeat("é", 150), Views: 10},
	}

	got, err := s.CombinedTopPosts(context.Background(), 5)
	if err != nil {
		t.Fatalf("combined: %v", err)
	}
	if !utf8.ValidString(got[0].Content) {
		t.Fatalf("preview is not valid UTF-8: %q", got[0].Content)
	}
	if want := strings.Repeat("é", 100) + "..."; got[0].Content != want {
		t.Fatalf("expected 100-rune preview, got %d runes", len([]rune(got[0].Content)))
	}
}

func TestSummaryTotals(t *testing.T) {
	s, lr, tr := newAnalyticsFixture()

	lr.posts = []*models.LinkedInPost{
		{PostID: "li-1", Views: 100},
		{PostID: "li-2", Views: 250},
	}
	tr.posts = []*models.TwitterPost{
		{TweetID: "tw-1", Views: 1000},
	}

	summary, err := s.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.LinkedInPosts != 2 || summary.TwitterPosts != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
	if summary.TotalPosts != 3 {
		t.Fatalf("expected 3 total posts, got %d", summary.TotalPosts)
	}
	if summary.TotalViews != 1350 {
		t.Fatalf("expected 1350 total views, got %d", summary.TotalViews)
	}
}
