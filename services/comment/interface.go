package comment

import (
	"context"

	articleRepo "pressroom/database/repository/article"
	commentRepo "pressroom/database/repository/comment"
	"pressroom/models"
)

// CommentService owns comment posting and owner-only deletion. Comments
// attach to published articles and are never edited in place.
type CommentService interface {
	Post(ctx context.Context, actor *models.Account, articleID, text string) (*models.Comment, error)
	ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error)
	Delete(ctx context.Context, actor *models.Account, commentID string) error
}

// DefaultCommentService is the production implementation.
type DefaultCommentService struct {
	Repo     commentRepo.CommentRepository
	Articles articleRepo.ArticleRepository
}
