package storage

import (
	"database/sql"
	"fmt"
)

// schemaStatements is executed in order on startup. Every statement is
// idempotent so repeated boots against the same database are safe.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS content_pipeline (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		topic TEXT NOT NULL CHECK (topic <> ''),
		original_url TEXT,
		status VARCHAR(50) NOT NULL DEFAULT 'Inspiration'
			CHECK (status IN ('Inspiration', 'Drafted', 'Approved', 'Published')),
		draft TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS twitter_calendar (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		topic TEXT NOT NULL CHECK (topic <> ''),
		draft TEXT,
		scheduled_date DATE,
		status VARCHAR(50) NOT NULL DEFAULT 'Pending'
			CHECK (status IN ('Pending', 'Drafted', 'Scheduled', 'Published')),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_content_pipeline_status ON content_pipeline (status)`,
	`CREATE INDEX IF NOT EXISTS idx_twitter_calendar_status ON twitter_calendar (status)`,
	`CREATE INDEX IF NOT EXISTS idx_twitter_calendar_scheduled_date ON twitter_calendar (scheduled_date)`,

	// Shared hook: stamps updated_at on every UPDATE, overriding whatever the
	// writer supplied. Attached to both tables.
	`CREATE OR REPLACE FUNCTION set_updated_at() RETURNS trigger AS $$
	BEGIN
		NEW.updated_at = now();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql`,

	`DROP TRIGGER IF EXISTS content_pipeline_set_updated_at ON content_pipeline`,
	`CREATE TRIGGER content_pipeline_set_updated_at
		BEFORE UPDATE ON content_pipeline
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,

	`DROP TRIGGER IF EXISTS twitter_calendar_set_updated_at ON twitter_calendar`,
	`CREATE TRIGGER twitter_calendar_set_updated_at
		BEFORE UPDATE ON twitter_calendar
		FOR EACH ROW EXECUTE FUNCTION set_updated_at()`,

	`CREATE TABLE IF NOT EXISTS linkedin_posts (
		id BIGSERIAL PRIMARY KEY,
		post_id VARCHAR(255) NOT NULL UNIQUE,
		url TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		date_posted TIMESTAMPTZ,
		views BIGINT NOT NULL DEFAULT 0,
		likes INTEGER NOT NULL DEFAULT 0,
		comments INTEGER NOT NULL DEFAULT 0,
		reposts INTEGER NOT NULL DEFAULT 0,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS twitter_posts (
		id BIGSERIAL PRIMARY KEY,
		tweet_id VARCHAR(255) NOT NULL UNIQUE,
		url TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		date_posted TIMESTAMPTZ,
		views BIGINT NOT NULL DEFAULT 0,
		likes INTEGER NOT NULL DEFAULT 0,
		retweets INTEGER NOT NULL DEFAULT 0,
		replies INTEGER NOT NULL DEFAULT 0,
		quotes INTEGER NOT NULL DEFAULT 0,
		scraped_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS follower_snapshots (
		id BIGSERIAL PRIMARY KEY,
		platform VARCHAR(50) NOT NULL,
		follower_count INTEGER NOT NULL,
		following_count INTEGER NOT NULL DEFAULT 0,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS daily_impressions (
		id BIGSERIAL PRIMARY KEY,
		platform VARCHAR(50) NOT NULL,
		date TIMESTAMPTZ NOT NULL,
		total_impressions BIGINT NOT NULL DEFAULT 0,
		total_engagements INTEGER NOT NULL DEFAULT 0,
		recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_linkedin_posts_date_posted ON linkedin_posts (date_posted)`,
	`CREATE INDEX IF NOT EXISTS idx_twitter_posts_date_posted ON twitter_posts (date_posted)`,
	`CREATE INDEX IF NOT EXISTS idx_follower_snapshots_platform ON follower_snapshots (platform)`,
	`CREATE INDEX IF NOT EXISTS idx_follower_snapshots_recorded_at ON follower_snapshots (recorded_at)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_impressions_platform ON daily_impressions (platform)`,
	`CREATE INDEX IF NOT EXISTS idx_daily_impressions_date ON daily_impressions (date)`,

	`CREATE TABLE IF NOT EXISTS api_keys (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		api_key VARCHAR(255) NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// InitSchema creates the tables, indexes and triggers if they don't exist.
func InitSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}
