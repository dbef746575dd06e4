package news

import (
	"context"

	"pressroom/models"
)

// NewsSource fetches headlines from the external news collaborator. The
// feed layer treats every failure mode here as degradable: zero items,
// errors and missing optional fields must all leave the user-facing feed
// intact.
type NewsSource interface {
	// FetchHeadlines returns raw headlines for a category; category "all"
	// or "" fetches the unscoped top headlines.
	FetchHeadlines(ctx context.Context, category, language string) ([]models.RawNewsItem, error)
}
