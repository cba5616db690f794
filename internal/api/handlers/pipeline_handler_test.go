package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ankitdas13/contentdesk/internal/models"
	"github.com/ankitdas13/contentdesk/internal/repository"
)

type fakePipelineService struct {
	items map[string]*models.PipelineItem
}

func newFakePipelineService() *fakePipelineService {
	return &fakePipelineService{items: make(map[string]*models.PipelineItem)}
}

func (f *fakePipelineService) AddToPipeline(ctx context.Context, topic, originalURL, status string) (*models.PipelineItem, error) {
	if status == "" {
		status = models.PipelineStatusInspiration
	}
	if !models.IsPipelineStatus(status) {
		return nil, repository.ErrConstraintViolation
	}
	item := &models.PipelineItem{ID: uuid.New(), Topic: topic, Status: status}
	f.items[item.ID.String()] = item
	return item, nil
}

func (f *fakePipelineService) GetItems(ctx context.Context, status string) ([]*models.PipelineItem, error) {
	var items []*models.PipelineItem
	for _, item := range f.items {
		items = append(items, item)
	}
	return items, nil
}

func (f *fakePipelineService) GetItem(ctx context.Context, id string) (*models.PipelineItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (f *fakePipelineService) UpdateStatus(ctx context.Context, id, status string) error {
	item, err := f.GetItem(ctx, id)
	if err != nil {
		return err
	}
	item.Status = status
	return nil
}

func (f *fakePipelineService) UpdateDraft(ctx context.Context, id, draft string) error {
	item, err := f.GetItem(ctx, id)
	if err != nil {
		return err
	}
	item.Draft = &draft
	return nil
}

func (f *fakePipelineService) Remove(ctx context.Context, id string) error {
	if _, err := f.GetItem(ctx, id); err != nil {
		return err
	}
	delete(f.items, id)
	return nil
}

func newPipelineApp(svc *fakePipelineService) *fiber.App {
	app := fiber.New()
	h := NewPipelineHandler(svc)
	app.Post("/pipeline", h.CreateItem)
	app.Get("/pipeline", h.ListItems)
	app.Get("/pipeline/:id", h.GetItem)
	app.Put("/pipeline/status", h.UpdateStatus)
	app.Delete("/pipeline", h.RemoveItem)
	return app
}

func jsonRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestCreateItem(t *testing.T) {
	app := newPipelineApp(newFakePipelineService())

	resp, err := app.Test(jsonRequest(http.MethodPost, "/pipeline", `{"topic":"AI trends"}`))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var item models.PipelineItem
	if err := json.NewDecoder(resp.Body).Decode(&item); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if item.Status != models.PipelineStatusInspiration {
		t.Fatalf("status %q", item.Status)
	}
	if item.ID == uuid.Nil {
		t.Fatal("missing id")
	}
}

func TestCreateItemValidation(t *testing.T) {
	app := newPipelineApp(newFakePipelineService())

	tests := []struct {
		name string
		body string
	}{
		{"missing topic", `{"status":"Inspiration"}`},
		{"unknown status", `{"topic":"AI trends","status":"Archived"}`},
		{"malformed json", `{"topic":`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/pipeline", tc.body))
			if err != nil {
				t.Fatalf("request: %v", err)
			}
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
		})
	}
}

func TestGetItemNotFound(t *testing.T) {
	app := newPipelineApp(newFakePipelineService())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/pipeline/"+uuid.NewString(), nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	svc := newFakePipelineService()
	app := newPipelineApp(svc)

	item, _ := svc.AddToPipeline(context.Background(), "AI trends", "", "")

	body := `{"id":"` + item.ID.String() + `","status":"Published"}`
	resp, err := app.Test(jsonRequest(http.MethodPut, "/pipeline/status", body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if item.Status != models.PipelineStatusPublished {
		t.Fatalf("status %q", item.Status)
	}
}

func TestRemoveItemEndpoint(t *testing.T) {
	svc := newFakePipelineService()
	app := newPipelineApp(svc)

	item, _ := svc.AddToPipeline(context.Background(), "AI trends", "", "")

	body := `{"id":"` + item.ID.String() + `"}`
	resp, err := app.Test(jsonRequest(http.MethodDelete, "/pipeline", body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if len(svc.items) != 0 {
		t.Fatalf("item not removed")
	}
}
