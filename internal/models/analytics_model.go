package models

import "time"

type LinkedInPost struct {
	ID         int64      `db:"id" json:"id"`
	PostID     string     `db:"post_id" json:"post_id"`
	URL        string     `db:"url" json:"url"`
	Content    string     `db:"content" json:"content"`
	DatePosted *time.Time `db:"date_posted" json:"date_posted"`
	Views      int64      `db:"views" json:"views"`
	Likes      int        `db:"likes" json:"likes"`
	Comments   int        `db:"comments" json:"comments"`
	Reposts    int        `db:"reposts" json:"reposts"`
	ScrapedAt  time.Time  `db:"scraped_at" json:"scraped_at"`
}

type TwitterPost struct {
	ID         int64      `db:"id" json:"id"`
	TweetID    string     `db:"tweet_id" json:"tweet_id"`
	URL        string     `db:"url" json:"url"`
	Content    string     `db:"content" json:"content"`
	DatePosted *time.Time `db:"date_posted" json:"date_posted"`
	Views      int64      `db:"views" json:"views"`
	Likes      int        `db:"likes" json:"likes"`
	Retweets   int        `db:"retweets" json:"retweets"`
	Replies    int        `db:"replies" json:"replies"`
	Quotes     int        `db:"quotes" json:"quotes"`
	ScrapedAt  time.Time  `db:"scraped_at" json:"scraped_at"`
}

type FollowerSnapshot struct {
	ID             int64     `db:"id" json:"id"`
	Platform       string    `db:"platform" json:"platform"`
	FollowerCount  int       `db:"follower_count" json:"follower_count"`
	FollowingCount int       `db:"following_count" json:"following_count"`
	RecordedAt     time.Time `db:"recorded_at" json:"recorded_at"`
}

type DailyImpressions struct {
	ID               int64     `db:"id" json:"id"`
	Platform         string    `db:"platform" json:"platform"`
	Date             time.Time `db:"date" json:"date"`
	TotalImpressions int64     `db:"total_impressions" json:"total_impressions"`
	TotalEngagements int       `db:"total_engagements" json:"total_engagements"`
	RecordedAt       time.Time `db:"recorded_at" json:"recorded_at"`
}

const (
	PlatformLinkedIn = "linkedin"
	PlatformTwitter  = "twitter"
)
