package notifier

import (
	"context"

	"pressroom/models"
)

// Notifier propagates article change events to other live clients so
// their feed views refetch. Delivery is best effort: publishing never
// fails the calling operation, and subscribers always keep a periodic
// poll running so correctness does not depend on the transport.
type Notifier interface {
	// Publish broadcasts an article event. Errors are logged and
	// swallowed.
	Publish(ctx context.Context, event models.ArticleEvent)
	// Subscribe invokes handler for every received event, and on a fixed
	// poll interval regardless, until ctx is cancelled. The poll tick
	// passes a zero-value event; handlers refetch rather than patch.
	Subscribe(ctx context.Context, handler func(models.ArticleEvent))
}
