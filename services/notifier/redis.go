// File: services/notifier/redis.go
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"pressroom/models"
	"pressroom/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisNotifier carries article events over a Redis pub/sub channel.
// Pub/sub is the latency optimization; the poll ticker in Subscribe is the
// guaranteed-correct path when Redis is down or events are lost.
type RedisNotifier struct {
	Client       *redis.Client
	Channel      string
	PollInterval time.Duration
}

// NewRedisNotifier builds a notifier on the given client. A nil client is
// allowed; Publish then degrades to a logged no-op and subscribers rely on
// polling alone.
func NewRedisNotifier(client *redis.Client, pollInterval time.Duration) *RedisNotifier {
	if pollInterval <= 0 {
		pollInterval = 30 * time.Second
	}
	return &RedisNotifier{
		Client:       client,
		Channel:      utils.ArticleEventsChannel,
		PollInterval: pollInterval,
	}
}

// Publish broadcasts an article event. Failures are swallowed and logged;
// the moderation decision that triggered the event has already been
// persisted and must not be rolled back over a broadcast hiccup.
func (n *RedisNotifier) Publish(ctx context.Context, event models.ArticleEvent) {
	logger := utils.GetLogger()
	if n.Client == nil {
		logger.Debug("notifier: no transport configured, skipping publish",
			zap.String("articleId", event.ArticleID))
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		logger.Warn("notifier: failed to encode event", zap.Error(err))
		return
	}
	if err := n.Client.Publish(ctx, n.Channel, payload).Err(); err != nil {
		logger.Warn("notifier: failed to publish event",
			zap.String("articleId", event.ArticleID), zap.Error(err))
	}
}

// Subscribe invokes handler for each received event and on every poll tick
// until ctx is cancelled. Poll ticks deliver a zero-value event; handlers
// are expected to refetch the feed either way.
func (n *RedisNotifier) Subscribe(ctx context.Context, handler func(models.ArticleEvent)) {
	logger := utils.GetLogger()

	events := make(chan models.ArticleEvent)
	if n.Client != nil {
		sub := n.Client.Subscribe(ctx, n.Channel)
		go func() {
			defer sub.Close()
			ch := sub.Channel()
			for {
				select {
				case <-ctx.Done():
					return
				case msg, ok := <-ch:
					if !ok {
						return
					}
					var event models.ArticleEvent
					if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
						logger.Warn("notifier: dropping malformed event", zap.Error(err))
						continue
					}
					select {
					case events <- event:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		ticker := time.NewTicker(n.PollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event := <-events:
				handler(event)
			case <-ticker.C:
				handler(models.ArticleEvent{})
			}
		}
	}()
}
