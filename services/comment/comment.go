// File: services/comment/comment.go
package comment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pressroom/models"
	"pressroom/utils"

	"github.com/google/uuid"
)

// Post attaches a comment to a published article.
func (s *DefaultCommentService) Post(ctx context.Context, actor *models.Account, articleID, text string) (*models.Comment, error) {
	if actor == nil {
		return nil, &utils.PermissionError{Action: "post comment"}
	}
	if strings.TrimSpace(text) == "" {
		return nil, utils.NewValidationError("comment text is required")
	}

	a, err := s.Articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "article fetch", Err: err}
	}
	if a == nil {
		return nil, &utils.NotFoundError{Resource: "article", ID: articleID}
	}
	if a.Status != models.StatusPublished {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("comments are only accepted on published articles, not %s", a.Status)}
	}

	c := &models.Comment{
		ID:        uuid.NewString(),
		ArticleID: articleID,
		UserID:    actor.ID,
		UserName:  actor.DisplayName,
		Comment:   strings.TrimSpace(text),
		CreatedAt: time.Now(),
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, &utils.UpstreamError{Op: "comment create", Err: err}
	}
	return c, nil
}

// ListByArticle returns an article's comments, newest first.
func (s *DefaultCommentService) ListByArticle(ctx context.Context, articleID string) ([]models.Comment, error) {
	comments, err := s.Repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "comment list", Err: err}
	}
	return comments, nil
}

// Delete removes a comment; only its own author may do so.
func (s *DefaultCommentService) Delete(ctx context.Context, actor *models.Account, commentID string) error {
	c, err := s.Repo.GetByID(ctx, commentID)
	if err != nil {
		return &utils.UpstreamError{Op: "comment fetch", Err: err}
	}
	if c == nil {
		return &utils.NotFoundError{Resource: "comment", ID: commentID}
	}
	if actor == nil || actor.ID != c.UserID {
		return &utils.PermissionError{Action: "delete comment"}
	}
	if err := s.Repo.Delete(ctx, commentID); err != nil {
		return &utils.UpstreamError{Op: "comment delete", Err: err}
	}
	return nil
}
