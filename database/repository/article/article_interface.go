package articleRepo

import (
	"context"

	"pressroom/models"
)

// ArticleQuery narrows list queries over the articles collection.
type ArticleQuery struct {
	Status   string
	Category string // empty or "all" means no category filter
	AuthorID string
	Limit    int64
}

// ArticleRepository defines methods for article data access.
type ArticleRepository interface {
	// GetByID retrieves an article by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Article, error)
	// Create inserts a new article record.
	Create(ctx context.Context, article *models.Article) error
	// UpdateSetDocument applies a partial $set update to an article.
	UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error
	// Delete removes an article record by its ID.
	Delete(ctx context.Context, id string) error
	// List returns articles matching the query, newest first by
	// publishedAt with createdAt as the fallback key.
	List(ctx context.Context, q ArticleQuery) ([]models.Article, error)

	// AddLike atomically adds accountID to likedBy and increments likes,
	// guarded so a second concurrent like from the same account is a
	// no-op. Returns true when the like was applied.
	AddLike(ctx context.Context, articleID, accountID string) (bool, error)
	// RemoveLike is the symmetric atomic pull + decrement.
	RemoveLike(ctx context.Context, articleID, accountID string) (bool, error)
	// IncrementViews bumps the view counter.
	IncrementViews(ctx context.Context, articleID string) error
	// AddReport records a distinct reporter and returns the new report
	// count. Re-reports from the same account do not count twice.
	AddReport(ctx context.Context, articleID, reporterID string) (int64, error)
}
