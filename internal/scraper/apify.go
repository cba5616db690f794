package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ApifyClient is a thin REST client for running Apify actors synchronously.
type ApifyClient struct {
	http  *resty.Client
	token string
}

func NewApifyClient(token string) *ApifyClient {
	client := resty.New().
		SetBaseURL("https://api.apify.com/v2").
		SetTimeout(5 * time.Minute)

	return &ApifyClient{http: client, token: token}
}

// RunActor starts an actor run, waits for it to finish and returns the
// items of its default dataset. Actor IDs use the username~actor-name form.
func (c *ApifyClient) RunActor(ctx context.Context, actorID string, input any) ([]map[string]any, error) {
	var items []map[string]any
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("token", c.token).
		SetBody(input).
		SetResult(&items).
		Post(fmt.Sprintf("/acts/%s/run-sync-get-dataset-items", actorID))
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("apify actor %s failed: %s, %s", actorID, resp.Status(), resp.String())
	}
	return items, nil
}

// stringField returns the first non-empty string among the aliased keys an
// actor may use for the same field.
func stringField(item map[string]any, keys ...string) string {
	for _, key := range keys {
		if value, ok := item[key].(string); ok && value != "" {
			return value
		}
	}
	return ""
}

// intField reads a numeric field, tolerating the aliases and JSON number
// decoding of the different actors.
func intField(item map[string]any, keys ...string) int64 {
	for _, key := range keys {
		switch value := item[key].(type) {
		case float64:
			return int64(value)
		case int64:
			return value
		case int:
			return int64(value)
		}
	}
	return 0
}

// parseDate tries the given layouts in order. An empty input yields nil; an
// unparseable one falls back to the current time, matching how scraped rows
// were stamped historically.
func parseDate(value string, layouts ...string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed
		}
	}
	now := time.Now().UTC()
	return &now
}
