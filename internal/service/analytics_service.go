package service

import (
	"context"
	"sort"
	"time"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/repository"
)

type StatsSummary struct {
	LinkedInPosts      int64 `json:"linkedin_posts"`
	TwitterPosts       int64 `json:"twitter_posts"`
	TotalLinkedInViews int64 `json:"total_linkedin_views"`
	TotalTwitterViews  int64 `json:"total_twitter_views"`
	TotalPosts         int64 `json:"total_posts"`
	TotalViews         int64 `json:"total_views"`
}

// TopPost is a platform-neutral row for the combined leaderboard.
type TopPost struct {
	Platform   string     `json:"platform"`
	Content    string     `json:"content"`
	URL        string     `json:"url"`
	Views      int64      `json:"views"`
	Likes      int        `json:"likes"`
	Date       *time.Time `json:"date"`
	Engagement int        `json:"engagement"`
}

type AnalyticsService interface {
	UpsertLinkedInPost(ctx context.Context, post *models.LinkedInPost) error
	UpsertTwitterPost(ctx context.Context, post *models.TwitterPost) error
	AddFollowerSnapshot(ctx context.Context, platform string, followers, following int) error
	AddDailyImpressions(ctx context.Context, platform string, date time.Time, impressions int64, engagements int) error
	FollowerHistory(ctx context.Context, platform string, days int) ([]*models.FollowerSnapshot, error)
	ImpressionsHistory(ctx context.Context, platform string, days int) ([]*models.DailyImpressions, error)
	RecentLinkedInPosts(ctx context.Context, limit int) ([]*models.LinkedInPost, error)
	RecentTwitterPosts(ctx context.Context, limit int) ([]*models.TwitterPost, error)
	TopLinkedInPosts(ctx context.Context, metric string, limit int) ([]*models.LinkedInPost, error)
	TopTwitterPosts(ctx context.Context, metric string, limit int) ([]*models.TwitterPost, error)
	CombinedTopPosts(ctx context.Context, limit int) ([]*TopPost, error)
	Summary(ctx context.Context) (*StatsSummary, error)
}

type analyticsService struct {
	lr repository.LinkedInPostRepository
	tr repository.TwitterPostRepository
	fr repository.FollowerRepository
	ir repository.ImpressionsRepository
}

func NewAnalyticsService(
	lr repository.LinkedInPostRepository,
	tr repository.TwitterPostRepository,
	fr repository.FollowerRepository,
	ir repository.ImpressionsRepository) AnalyticsService {
	return &analyticsService{
		lr: lr,
		tr: tr,
		fr: fr,
		ir: ir,
	}
}

const (
	defaultTopLimit    = 10
	defaultRecentLimit = 5
)

func (s *analyticsService) UpsertLinkedInPost(ctx context.Context, post *models.LinkedInPost) error {
	_, err := s.lr.Upsert(ctx, post)
	return err
}

func (s *analyticsService) UpsertTwitterPost(ctx context.Context, post *models.TwitterPost) error {
	_, err := s.tr.Upsert(ctx, post)
	return err
}

func (s *analyticsService) AddFollowerSnapshot(ctx context.Context, platform string, followers, following int) error {
	_, err := s.fr.Create(ctx, &models.FollowerSnapshot{
		Platform:       platform,
		FollowerCount:  followers,
		FollowingCount: following,
	})
	return err
}

func (s *analyticsService) AddDailyImpressions(ctx context.Context, platform string, date time.Time, impressions int64, engagements int) error {
	_, err := s.ir.Create(ctx, &models.DailyImpressions{
		Platform:         platform,
		Date:             date,
		TotalImpressions: impressions,
		TotalEngagements: engagements,
	})
	return err
}

func (s *analyticsService) FollowerHistory(ctx context.Context, platform string, days int) ([]*models.FollowerSnapshot, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.fr.History(ctx, platform, since)
}

func (s *analyticsService) ImpressionsHistory(ctx context.Context, platform string, days int) ([]*models.DailyImpressions, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)
	return s.ir.History(ctx, platform, since)
}

func (s *analyticsService) RecentLinkedInPosts(ctx context.Context, limit int) ([]*models.LinkedInPost, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.lr.ListRecent(ctx, limit)
}

func (s *analyticsService) RecentTwitterPosts(ctx context.Context, limit int) ([]*models.TwitterPost, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.tr.ListRecent(ctx, limit)
}

func (s *analyticsService) TopLinkedInPosts(ctx context.Context, metric string, limit int) ([]*models.LinkedInPost, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.lr.TopByMetric(ctx, metric, limit)
}

func (s *analyticsService) TopTwitterPosts(ctx context.Context, metric string, limit int) ([]*models.TwitterPost, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.tr.TopByMetric(ctx, metric, limit)
}

// CombinedTopPosts merges the view leaderboards of both platforms.
func (s *analyticsService) CombinedTopPosts(ctx context.Context, limit int) ([]*TopPost, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}

	linkedin, err := s.lr.TopByMetric(ctx, "views", limit)
	if err != nil {
		return nil, err
	}
	twitter, err := s.tr.TopByMetric(ctx, "views", limit)
	if err != nil {
		return nil, err
	}

	combined := make([]*TopPost, 0, len(linkedin)+len(twitter))
	for _, post := range linkedin {
		combined = append(combined, &TopPost{
			Platform:   "LinkedIn",
			Content:    truncateContent(post.Content),
			URL:        post.URL,
			Views:      post.Views,
			Likes:      post.Likes,
			Date:       post.DatePosted,
			Engagement: post.Likes + post.Comments + post.Reposts,
		})
	}
	for _, post := range twitter {
		combined = append(combined, &TopPost{
			Platform:   "Twitter",
			Content:    truncateContent(post.Content),
			URL:        post.URL,
			Views:      post.Views,
			Likes:      post.Likes,
			Date:       post.DatePosted,
			Engagement: post.Likes + post.Retweets + post.Replies + post.Quotes,
		})
	}

	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Views > combined[j].Views
	})
	if len(combined) > limit {
		combined = combined[:limit]
	}
	return combined, nil
}

func (s *analyticsService) Summary(ctx context.Context) (*StatsSummary, error) {
	linkedinCount, linkedinViews, err := s.lr.Stats(ctx)
	if err != nil {
		return nil, err
	}
	twitterCount, twitterViews, err := s.tr.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsSummary{
		LinkedInPosts:      linkedinCount,
		TwitterPosts:       twitterCount,
		TotalLinkedInViews: linkedinViews,
		TotalTwitterViews:  twitterViews,
		TotalPosts:         linkedinCount + twitterCount,
		TotalViews:         linkedinViews + twitterViews,
	}, nil
}

func truncateContent(content string) string {
	const max = 100
	if runes := []rune(content); len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return content
}
