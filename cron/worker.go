package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"pressroom/config"
	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
	"pressroom/services/feed"
	"pressroom/services/tasks"

	"github.com/hibiken/asynq"
)

// InitWorker runs the async worker in background. It consumes deferred
// view increments and the periodic headline refresh.
func InitWorker(articles articleRepo.ArticleRepository, feedSvc feed.FeedService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeArticleView, handleViewTask(articles))
	mux.HandleFunc(tasks.TypeNewsRefresh, handleNewsRefresh(feedSvc))

	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go scheduleNewsRefresh(redisOpts)
}

func handleViewTask(articles articleRepo.ArticleRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ViewPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[Worker] invalid view payload: %v", err)
			return err
		}
		if err := articles.IncrementViews(ctx, p.ArticleID); err != nil {
			// View counting is best effort; log and drop rather than retry
			// against a deleted article forever.
			log.Printf("[Worker] failed to increment views for %s: %v", p.ArticleID, err)
		}
		return nil
	}
}

func handleNewsRefresh(feedSvc feed.FeedService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		for _, category := range append([]string{models.CategoryAll}, models.Categories...) {
			if _, err := feedSvc.GetFeed(ctx, feed.TabNews, category, ""); err != nil {
				log.Printf("[Worker] news refresh for %s failed: %v", category, err)
			}
		}
		return nil
	}
}

// scheduleNewsRefresh enqueues the periodic headline cache warm.
func scheduleNewsRefresh(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 5m", asynq.NewTask(tasks.TypeNewsRefresh, nil)); err != nil {
		log.Printf("[Worker] failed to register news refresh: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[Worker] scheduler stopped: %v", err)
	}
}
