package scraper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	config "github.com/ankitdas13/contentdesk/configs"
	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/service"
)

const tweetScraperActor = "apidojo~tweet-scraper"

// twitterDateLayouts covers the ISO and classic API formats the actor emits.
var twitterDateLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"Mon Jan 2 15:04:05 -0700 2006",
}

type TwitterScraper struct {
	client    *ApifyClient
	username  string
	analytics service.AnalyticsService
}

func NewTwitterScraper(cfg config.Config, client *ApifyClient, analytics service.AnalyticsService) *TwitterScraper {
	return &TwitterScraper{
		client:    client,
		username:  strings.TrimPrefix(cfg.TwitterUsername, "@"),
		analytics: analytics,
	}
}

func (s *TwitterScraper) ScrapeTweets(ctx context.Context, maxTweets int) ([]*models.TwitterPost, error) {
	if s.username == "" {
		return nil, errors.New("TWITTER_USERNAME not configured")
	}

	input := map[string]any{
		"handles":         []string{s.username},
		"maxTweets":       maxTweets,
		"includeReplies":  false,
		"includeRetweets": false,
	}

	items, err := s.client.RunActor(ctx, tweetScraperActor, input)
	if err != nil {
		return nil, fmt.Errorf("scrape tweets: %w", err)
	}

	tweets := make([]*models.TwitterPost, 0, len(items))
	for _, item := range items {
		tweets = append(tweets, s.normalizeTweet(item))
	}
	return tweets, nil
}

func (s *TwitterScraper) normalizeTweet(raw map[string]any) *models.TwitterPost {
	tweetID := stringField(raw, "id", "tweetId")
	if tweetID == "" {
		if n := intField(raw, "id", "tweetId"); n != 0 {
			tweetID = strconv.FormatInt(n, 10)
		}
	}

	url := stringField(raw, "url")
	if url == "" {
		url = fmt.Sprintf("https://twitter.com/%s/status/%s", s.username, tweetID)
	}

	return &models.TwitterPost{
		TweetID:    tweetID,
		URL:        url,
		Content:    stringField(raw, "text", "fullText"),
		DatePosted: parseDate(stringField(raw, "createdAt", "date"), twitterDateLayouts...),
		Views:      intField(raw, "viewCount", "views"),
		Likes:      int(intField(raw, "likeCount", "favoriteCount")),
		Retweets:   int(intField(raw, "retweetCount", "retweets")),
		Replies:    int(intField(raw, "replyCount", "replies")),
		Quotes:     int(intField(raw, "quoteCount", "quotes")),
	}
}

// ScrapeProfileStats fetches follower counts from the author block of the
// latest tweet.
func (s *TwitterScraper) ScrapeProfileStats(ctx context.Context) (followers, following int, err error) {
	input := map[string]any{
		"handles":   []string{s.username},
		"maxTweets": 1,
	}

	items, err := s.client.RunActor(ctx, tweetScraperActor, input)
	if err != nil {
		return 0, 0, fmt.Errorf("scrape twitter profile: %w", err)
	}
	if len(items) == 0 {
		return 0, 0, nil
	}

	if author, ok := items[0]["author"].(map[string]any); ok {
		followers = int(intField(author, "followers", "followersCount"))
		following = int(intField(author, "following", "followingCount"))
	}
	return followers, following, nil
}

func (s *TwitterScraper) SaveToDatabase(ctx context.Context) (int, error) {
	tweets, err := s.ScrapeTweets(ctx, 50)
	if err != nil {
		return 0, err
	}

	saved := 0
	for _, tweet := range tweets {
		if err := s.analytics.UpsertTwitterPost(ctx, tweet); err != nil {
			slog.Info(err.Error())
			continue
		}
		saved++
	}

	followers, following, err := s.ScrapeProfileStats(ctx)
	if err != nil {
		slog.Info(err.Error())
		return saved, nil
	}
	if err := s.analytics.AddFollowerSnapshot(ctx, models.PlatformTwitter, followers, following); err != nil {
		slog.Info(err.Error())
	}

	return saved, nil
}
