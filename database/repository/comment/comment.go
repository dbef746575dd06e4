package commentRepo

import (
	"context"

	"pressroom/models"
)

// CommentRepository defines methods for comment data access.
type CommentRepository interface {
	// Create inserts a new comment record.
	Create(ctx context.Context, comment *models.Comment) error
	// GetByID retrieves a comment by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Comment, error)
	// ListByArticle returns an article's comments, newest first.
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	// Delete removes a comment record by its ID.
	Delete(ctx context.Context, id string) error
}
