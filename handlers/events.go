package handlers

import (
	"encoding/json"
	"io"

	"pressroom/models"
	"pressroom/services/notifier"

	"github.com/gin-gonic/gin"
)

// EventsHandler streams article change events to connected clients over
// server-sent events. Clients treat every event, including the periodic
// empty keepalive tick, as a cue to refetch their feed.
type EventsHandler struct {
	Notifier notifier.Notifier
}

func NewEventsHandler(n notifier.Notifier) *EventsHandler {
	return &EventsHandler{Notifier: n}
}

// StreamHandler handles GET /api/events.
func (h *EventsHandler) StreamHandler(c *gin.Context) {
	events := make(chan models.ArticleEvent, 8)

	ctx := c.Request.Context()
	go h.Notifier.Subscribe(ctx, func(event models.ArticleEvent) {
		select {
		case events <- event:
		default:
			// slow client, drop; the next poll tick catches it up
		}
	})

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case event := <-events:
			payload, err := json.Marshal(event)
			if err != nil {
				return true
			}
			c.SSEvent("article", string(payload))
			return true
		case <-ctx.Done():
			return false
		}
	})
}
