package config

import "os"

type Config struct {
	DatabaseURL        string
	RedisURI           string
	ApifyToken         string
	AnthropicAPIKey    string
	AnthropicModel     string
	LinkedInProfileURL string
	TwitterUsername    string
	SecretKey          string
	CookieName         string
	AdminPassword      string
	FrontendURL        string
}

func LoadConfig() *Config {
	return &Config{
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURI:           getEnv("REDIS_URI", "127.0.0.1:6379"),
		ApifyToken:         getEnv("APIFY_API_TOKEN", ""),
		AnthropicAPIKey:    getEnv("ANTHROPIC_API_KEY", ""),
		AnthropicModel:     getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		LinkedInProfileURL: getEnv("LINKEDIN_PROFILE_URL", ""),
		TwitterUsername:    getEnv("TWITTER_USERNAME", ""),
		SecretKey:          getEnv("SECRET_KEY", ""),
		CookieName:         getEnv("COOKIE_NAME", "contentdesk_session"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", ""),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:5173"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
