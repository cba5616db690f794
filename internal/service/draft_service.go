package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	config "github.com/ankitdas13/contentdesk/configs"
)

type DraftService interface {
	GenerateTweet(ctx context.Context, topic, style string) (string, error)
	GenerateVariations(ctx context.Context, topic string, count int) ([]string, error)
}

type draftService struct {
	http   *resty.Client
	apiKey string
	model  string
}

func NewDraftService(cfg config.Config) DraftService {
	client := resty.New().
		SetBaseURL("https://api.anthropic.com").
		SetTimeout(2 * time.Minute)

	return &draftService{
		http:   client,
		apiKey: cfg.AnthropicAPIKey,
		model:  cfg.AnthropicModel,
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (s *draftService) GenerateTweet(ctx context.Context, topic, style string) (string, error) {
	if style == "" {
		style = "professional"
	}

	prompt := fmt.Sprintf(`Write a single tweet about the following topic. The tweet should be:
- Under 280 characters
- %s in tone
- Engaging and shareable
- Include 1-2 relevant hashtags if appropriate

Topic: %s

Respond with ONLY the tweet text, nothing else.`, style, topic)

	text, err := s.complete(ctx, prompt, 200)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

func (s *draftService) GenerateVariations(ctx context.Context, topic string, count int) ([]string, error) {
	if count <= 0 {
		count = 3
	}

	prompt := fmt.Sprintf(`Write %d different tweet variations about the following topic. Each tweet should be:
- Under 280 characters
- Varied in tone (one professional, one casual, one provocative/engaging)
- Shareable and engaging
- Include 1-2 relevant hashtags where appropriate

Topic: %s

Format your response as:
1. [tweet 1]
2. [tweet 2]
3. [tweet 3]`, count, topic)

	text, err := s.complete(ctx, prompt, 500)
	if err != nil {
		return nil, err
	}
	return parseNumberedList(text), nil
}

func (s *draftService) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("anthropic api key is not configured")
	}

	var result messagesResponse
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("x-api-key", s.apiKey).
		SetHeader("anthropic-version", "2023-06-01").
		SetBody(messagesRequest{
			Model:     s.model,
			MaxTokens: maxTokens,
			Messages:  []message{{Role: "user", Content: prompt}},
		}).
		SetResult(&result).
		Post("/v1/messages")
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}
	if resp.IsError() {
		err := fmt.Errorf("anthropic request failed: %s, %s", resp.Status(), resp.String())
		slog.Info(err.Error())
		return "", err
	}
	if len(result.Content) == 0 {
		return "", errors.New("anthropic response has no content")
	}
	return result.Content[0].Text, nil
}

// parseNumberedList extracts the entries of a "1. ..." style response.
func parseNumberedList(text string) []string {
	var entries []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] < '0' || line[0] > '9' {
			continue
		}
		if _, entry, found := strings.Cut(line, "."); found {
			if entry = strings.TrimSpace(entry); entry != "" {
				entries = append(entries, entry)
			}
		}
	}
	return entries
}
