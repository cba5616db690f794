package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/ankitdas13/contentdesk/internal/models"
)

func (j *Queue) HandleGenerateDraftTask(ctx context.Context, task *asynq.Task) error {
	var payload GenerateDraftPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return j.GenerateDraft(ctx, payload.ItemID, payload.Style)
}

// GenerateDraft writes a generated tweet into the calendar item's draft.
// Items that already carry a draft are left untouched.
func (j *Queue) GenerateDraft(ctx context.Context, itemID, style string) error {
	item, err := j.cs.GetItem(ctx, itemID)
	if err != nil {
		return err
	}
	if item.Draft != nil && *item.Draft != "" {
		log.Printf("Calendar item %s already has a draft, skipping", item.ID)
		return nil
	}

	tweet, err := j.ds.GenerateTweet(ctx, item.Topic, style)
	if err != nil {
		return fmt.Errorf("generate tweet for %s: %w", item.ID, err)
	}

	if err := j.cs.UpdateDraft(ctx, item.ID.String(), tweet); err != nil {
		return err
	}

	log.Printf("Draft saved for calendar item %s", item.ID)
	return nil
}

func (j *Queue) HandleScrapeMetricsTask(ctx context.Context, task *asynq.Task) error {
	var payload ScrapeMetricsPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	var saved int
	var err error
	switch payload.Platform {
	case models.PlatformLinkedIn:
		saved, err = j.li.SaveToDatabase(ctx)
	case models.PlatformTwitter:
		saved, err = j.tw.SaveToDatabase(ctx)
	default:
		return fmt.Errorf("unknown platform %q", payload.Platform)
	}
	if err != nil {
		return err
	}

	log.Printf("Saved %d %s posts", saved, payload.Platform)
	return nil
}
