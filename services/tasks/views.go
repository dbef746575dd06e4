// File: services/tasks/views.go
package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"pressroom/config"

	"github.com/hibiken/asynq"
)

const (
	// TypeArticleView is the task type for deferred view increments.
	TypeArticleView = "article:view"
	// TypeNewsRefresh is the periodic headline cache warm task.
	TypeNewsRefresh = "news:refresh"
)

// ViewPayload identifies the article whose view counter should move.
type ViewPayload struct {
	ArticleID string `json:"articleId"`
}

// ViewQueue enqueues view increments onto the Redis-backed worker so the
// read path never waits on the counter write.
type ViewQueue struct {
	client *asynq.Client
}

// NewViewQueue builds a queue client from the app configuration.
func NewViewQueue() *ViewQueue {
	return &ViewQueue{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskDB,
		}),
	}
}

// Record enqueues one view increment.
func (q *ViewQueue) Record(ctx context.Context, articleID string) error {
	payload, err := json.Marshal(ViewPayload{ArticleID: articleID})
	if err != nil {
		return fmt.Errorf("failed to encode view payload: %w", err)
	}
	_, err = q.client.EnqueueContext(ctx, asynq.NewTask(TypeArticleView, payload))
	if err != nil {
		return fmt.Errorf("failed to enqueue view task: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (q *ViewQueue) Close() error {
	return q.client.Close()
}
