package service

import (
	"context"
	"strings"
	"testing"

	"github.com/ankitdas13/contentdesk/internal/models"
)

type fakeApiKeyRepo struct {
	keys []*models.ApiKey
}

func (f *fakeApiKeyRepo) Exists(ctx context.Context, apiKey string) (bool, error) {
	for _, key := range f.keys {
		if key.ApiKey == apiKey {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApiKeyRepo) List(ctx context.Context) ([]*models.ApiKey, error) {
	return f.keys, nil
}

func (f *fakeApiKeyRepo) Create(ctx context.Context, apiKey *models.ApiKey) (int64, error) {
	apiKey.ID = int64(len(f.keys) + 1)
	f.keys = append(f.keys, apiKey)
	return apiKey.ID, nil
}

func (f *fakeApiKeyRepo) Remove(ctx context.Context, id int64) error {
	for i, key := range f.keys {
		if key.ID == id {
			f.keys = append(f.keys[:i], f.keys[i+1:]...)
			return nil
		}
	}
	return nil
}

func TestCreateApiKey(t *testing.T) {
	repo := &fakeApiKeyRepo{}
	s := NewApiKeyService(repo)

	key, err := s.Create(context.Background(), "zapier")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if key.Name != "zapier" {
		t.Fatalf("name %q", key.Name)
	}
	if !strings.HasPrefix(key.ApiKey, "cd_") {
		t.Fatalf("key %q missing prefix", key.ApiKey)
	}

	exists, err := s.Exists(context.Background(), key.ApiKey)
	if err != nil || !exists {
		t.Fatalf("expected key to exist, got %v %v", exists, err)
	}
}

func TestCreateApiKeyCap(t *testing.T) {
	repo := &fakeApiKeyRepo{}
	s := NewApiKeyService(repo)

	for i := 0; i < maxApiKeys; i++ {
		if _, err := s.Create(context.Background(), "integration"); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if _, err := s.Create(context.Background(), "one too many"); err == nil {
		t.Fatal("expected error past the key cap")
	}
}
