package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/repository"
	"github.com/ankitdas13/contentdesk/pkg/utils"
)

type ApiKeyService interface {
	Create(ctx context.Context, name string) (*models.ApiKey, error)
	List(ctx context.Context) ([]*models.ApiKey, error)
	Exists(ctx context.Context, apiKey string) (bool, error)
	Remove(ctx context.Context, id int64) error
}

type apiKeyService struct {
	k repository.ApiKeyRepository
}

func NewApiKeyService(k repository.ApiKeyRepository) ApiKeyService {
	return &apiKeyService{k: k}
}

const maxApiKeys = 5

func (s *apiKeyService) Create(ctx context.Context, name string) (*models.ApiKey, error) {
	keys, err := s.k.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(keys) >= maxApiKeys {
		err = fmt.Errorf("only %d API keys can be created", maxApiKeys)
		slog.Info(err.Error())
		return nil, err
	}

	key, err := utils.GenerateAPIKey()
	if err != nil {
		slog.Info(err.Error())
		return nil, errors.New("error generating API key")
	}

	apiKey := &models.ApiKey{
		Name:   name,
		ApiKey: key,
	}

	if _, err = s.k.Create(ctx, apiKey); err != nil {
		return nil, errors.New("error saving API key")
	}
	return apiKey, nil
}

func (s *apiKeyService) List(ctx context.Context) ([]*models.ApiKey, error) {
	return s.k.List(ctx)
}

func (s *apiKeyService) Exists(ctx context.Context, apiKey string) (bool, error) {
	return s.k.Exists(ctx, apiKey)
}

func (s *apiKeyService) Remove(ctx context.Context, id int64) error {
	return s.k.Remove(ctx, id)
}
