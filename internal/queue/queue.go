package queue

import (
	"encoding/json"
	"log"

	"github.com/hibiken/asynq"
)

func EnqueueGenerateDraft(asynqClient *asynq.Client, payload GenerateDraftPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeGenerateDraft, taskPayload)

	_, err = asynqClient.Enqueue(task)
	if err != nil {
		return err
	}

	log.Printf("Draft generation task scheduled: %+v", payload)
	return nil
}

func EnqueueScrapeMetrics(asynqClient *asynq.Client, payload ScrapeMetricsPayload) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeScrapeMetrics, taskPayload)

	_, err = asynqClient.Enqueue(task)
	if err != nil {
		return err
	}

	log.Printf("Scrape task scheduled: %+v", payload)
	return nil
}
