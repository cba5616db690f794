package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	config "github.com/ankitdas13/contentdesk/configs"
	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/service"
)

const (
	linkedinPostsActor   = "curious_coder~linkedin-post-scraper"
	linkedinProfileActor = "anchor~linkedin-profile-scraper"
)

// LinkedInScraper pulls post metrics and profile stats through Apify and
// stores them via the analytics service.
type LinkedInScraper struct {
	client     *ApifyClient
	profileURL string
	analytics  service.AnalyticsService
}

func NewLinkedInScraper(cfg config.Config, client *ApifyClient, analytics service.AnalyticsService) *LinkedInScraper {
	return &LinkedInScraper{
		client:     client,
		profileURL: cfg.LinkedInProfileURL,
		analytics:  analytics,
	}
}

func (s *LinkedInScraper) ScrapePosts(ctx context.Context, maxPosts int) ([]*models.LinkedInPost, error) {
	if s.profileURL == "" {
		return nil, errors.New("LINKEDIN_PROFILE_URL not configured")
	}

	input := map[string]any{
		"profileUrls":    []string{s.profileURL},
		"maxPosts":       maxPosts,
		"includeMetrics": true,
	}

	items, err := s.client.RunActor(ctx, linkedinPostsActor, input)
	if err != nil {
		return nil, fmt.Errorf("scrape linkedin posts: %w", err)
	}

	posts := make([]*models.LinkedInPost, 0, len(items))
	for _, item := range items {
		posts = append(posts, normalizeLinkedInPost(item))
	}
	return posts, nil
}

func normalizeLinkedInPost(raw map[string]any) *models.LinkedInPost {
	content := stringField(raw, "text", "content")
	postID := stringField(raw, "postId", "id")
	if postID == "" {
		// Some actors omit a stable ID; derive one from the content.
		if runes := []rune(content); len(runes) > 50 {
			postID = string(runes[:50])
		} else {
			postID = content
		}
	}

	return &models.LinkedInPost{
		PostID:     postID,
		URL:        stringField(raw, "postUrl", "url"),
		Content:    content,
		DatePosted: parseDate(stringField(raw, "postedAt", "date"), "2006-01-02T15:04:05Z07:00", "2006-01-02"),
		Views:      intField(raw, "views", "impressions"),
		Likes:      int(intField(raw, "likes", "reactions")),
		Comments:   int(intField(raw, "comments", "commentCount")),
		Reposts:    int(intField(raw, "reposts", "shares")),
	}
}

func (s *LinkedInScraper) ScrapeProfileStats(ctx context.Context) (followers, connections int, err error) {
	input := map[string]any{
		"profileUrls":       []string{s.profileURL},
		"scrapeCompanyData": false,
	}

	items, err := s.client.RunActor(ctx, linkedinProfileActor, input)
	if err != nil {
		return 0, 0, fmt.Errorf("scrape linkedin profile: %w", err)
	}
	if len(items) == 0 {
		return 0, 0, nil
	}

	followers = int(intField(items[0], "followersCount", "followers"))
	connections = int(intField(items[0], "connectionsCount", "connections"))
	return followers, connections, nil
}

// SaveToDatabase scrapes posts and profile stats and persists everything.
// Individual post failures are logged and skipped.
func (s *LinkedInScraper) SaveToDatabase(ctx context.Context) (int, error) {
	posts, err := s.ScrapePosts(ctx, 50)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, post := range posts {
		if err := s.analytics.UpsertLinkedInPost(ctx, post); err != nil {
			slog.Info(err.Error())
			continue
		}
		saved++
	}

	followers, connections, err := s.ScrapeProfileStats(ctx)
	if err != nil {
		slog.Info(err.Error())
		return saved, nil
	}
	if err := s.analytics.AddFollowerSnapshot(ctx, models.PlatformLinkedIn, followers, connections); err != nil {
		slog.Info(err.Error())
	}

	return saved, nil
}
