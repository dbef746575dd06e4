// File: services/article/lifecycle.go
package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pressroom/models"
	"pressroom/services/authz"
	"pressroom/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create starts a new draft owned by the actor.
func (s *DefaultArticleService) Create(ctx context.Context, actor *models.Account, input ArticleInput) (*models.Article, error) {
	if actor == nil {
		return nil, &utils.PermissionError{Action: "create article"}
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now()
	a := &models.Article{
		ID:            uuid.NewString(),
		AuthorID:      actor.ID,
		AuthorName:    actor.DisplayName,
		Title:         strings.TrimSpace(input.Title),
		Summary:       input.Summary,
		Content:       input.Content,
		Category:      strings.ToLower(input.Category),
		Tags:          input.Tags,
		FeaturedImage: input.FeaturedImage,
		Sources:       input.Sources,
		Status:        models.StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, &utils.UpstreamError{Op: "article create", Err: err}
	}
	return a, nil
}

// SaveDraft persists field edits while the article is still under the
// author's control.
func (s *DefaultArticleService) SaveDraft(ctx context.Context, actor *models.Account, articleID string, input ArticleInput) (*models.Article, error) {
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.ID != a.AuthorID {
		return nil, &utils.PermissionError{Action: "edit article"}
	}
	if a.Status != models.StatusDraft && a.Status != models.StatusRejected {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("article in status %s cannot be edited", a.Status)}
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	update := map[string]any{
		"title":         strings.TrimSpace(input.Title),
		"summary":       input.Summary,
		"content":       input.Content,
		"category":      strings.ToLower(input.Category),
		"tags":          input.Tags,
		"featuredImage": input.FeaturedImage,
		"sources":       input.Sources,
	}
	if err := s.Repo.UpdateSetDocument(ctx, articleID, update); err != nil {
		return nil, &utils.UpstreamError{Op: "article save", Err: err}
	}
	return s.Repo.GetByID(ctx, articleID)
}

// SubmitForReview moves a draft or rejected article into the review queue.
func (s *DefaultArticleService) SubmitForReview(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error) {
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if actor == nil || actor.ID != a.AuthorID {
		return nil, &utils.PermissionError{Action: "submit article for review"}
	}
	if !actor.Verified {
		return nil, &utils.PermissionError{Action: "submit article for review: account is not verified"}
	}
	if a.Status != models.StatusDraft && a.Status != models.StatusRejected {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("article in status %s cannot be submitted", a.Status)}
	}
	if err := s.validateForSubmission(a); err != nil {
		return nil, err
	}

	now := time.Now()
	update := map[string]any{
		"status":          models.StatusPendingReview,
		"submittedAt":     now,
		"rejectionReason": "",
	}
	if err := s.Repo.UpdateSetDocument(ctx, articleID, update); err != nil {
		return nil, &utils.UpstreamError{Op: "article submit", Err: err}
	}
	a.Status = models.StatusPendingReview
	a.SubmittedAt = &now
	a.RejectionReason = ""
	return a, nil
}

// Approve publishes a pending article and notifies live clients.
func (s *DefaultArticleService) Approve(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error) {
	if err := authz.Authorize(actor, authz.ActionReviewArticle); err != nil {
		return nil, err
	}
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusPendingReview {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("article is %s, not pending review", a.Status)}
	}

	now := time.Now()
	update := map[string]any{
		"status":      models.StatusPublished,
		"publishedAt": now,
		"reviewedAt":  now,
		"reviewedBy":  actor.ID,
	}
	if err := s.Repo.UpdateSetDocument(ctx, articleID, update); err != nil {
		return nil, &utils.UpstreamError{Op: "article approve", Err: err}
	}
	a.Status = models.StatusPublished
	a.PublishedAt = &now
	a.ReviewedAt = &now
	a.ReviewedBy = actor.ID

	s.publish(ctx, models.ArticleEvent{
		Type:      models.EventArticlePublished,
		ArticleID: a.ID,
		Status:    a.Status,
	})
	return a, nil
}

// Reject declines a pending article with a reason and notifies live clients.
func (s *DefaultArticleService) Reject(ctx context.Context, actor *models.Account, articleID, reason string) (*models.Article, error) {
	if err := authz.Authorize(actor, authz.ActionReviewArticle); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, utils.NewValidationError("a rejection reason is required")
	}
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if a.Status != models.StatusPendingReview {
		return nil, &utils.ConflictError{Message: fmt.Sprintf("article is %s, not pending review", a.Status)}
	}

	now := time.Now()
	update := map[string]any{
		"status":          models.StatusRejected,
		"reviewedAt":      now,
		"reviewedBy":      actor.ID,
		"rejectionReason": reason,
	}
	if err := s.Repo.UpdateSetDocument(ctx, articleID, update); err != nil {
		return nil, &utils.UpstreamError{Op: "article reject", Err: err}
	}
	a.Status = models.StatusRejected
	a.ReviewedAt = &now
	a.ReviewedBy = actor.ID
	a.RejectionReason = reason

	s.publish(ctx, models.ArticleEvent{
		Type:      models.EventArticleRejected,
		ArticleID: a.ID,
		Status:    a.Status,
	})
	return a, nil
}

// ToggleStatus is the admin override flipping published and pending_review.
func (s *DefaultArticleService) ToggleStatus(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error) {
	if err := authz.Authorize(actor, authz.ActionToggleStatus); err != nil {
		return nil, err
	}
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return nil, err
	}

	var next string
	switch a.Status {
	case models.StatusPublished:
		next = models.StatusPendingReview
	case models.StatusPendingReview:
		next = models.StatusPublished
	default:
		return nil, &utils.ConflictError{Message: fmt.Sprintf("cannot toggle article in status %s", a.Status)}
	}

	update := map[string]any{"status": next}
	if next == models.StatusPublished && a.PublishedAt == nil {
		now := time.Now()
		update["publishedAt"] = now
		a.PublishedAt = &now
	}
	if err := s.Repo.UpdateSetDocument(ctx, articleID, update); err != nil {
		return nil, &utils.UpstreamError{Op: "article toggle status", Err: err}
	}
	a.Status = next

	s.publish(ctx, models.ArticleEvent{
		Type:      models.EventArticleUpdated,
		ArticleID: a.ID,
		Status:    a.Status,
	})
	return a, nil
}

// Delete removes an article. Comments are intentionally left orphaned.
func (s *DefaultArticleService) Delete(ctx context.Context, actor *models.Account, articleID string) error {
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return err
	}

	switch {
	case authz.Can(actor, authz.ActionDeleteAnyArticle):
		// delete-any holders may remove an article in any status
	case actor != nil && actor.ID == a.AuthorID:
		if a.Status != models.StatusDraft && a.Status != models.StatusRejected {
			return &utils.ConflictError{Message: fmt.Sprintf("authors cannot delete an article in status %s", a.Status)}
		}
	default:
		return &utils.PermissionError{Action: "delete article"}
	}

	if err := s.Repo.Delete(ctx, articleID); err != nil {
		return &utils.UpstreamError{Op: "article delete", Err: err}
	}
	s.publish(ctx, models.ArticleEvent{
		Type:      models.EventArticleDeleted,
		ArticleID: articleID,
	})
	return nil
}

// GetByID fetches a single article.
func (s *DefaultArticleService) GetByID(ctx context.Context, articleID string) (*models.Article, error) {
	return s.mustGet(ctx, articleID)
}

// ListByAuthor returns the actor's own articles.
func (s *DefaultArticleService) ListByAuthor(ctx context.Context, actor *models.Account) ([]models.Article, error) {
	if actor == nil {
		return nil, &utils.PermissionError{Action: "list own articles"}
	}
	articles, err := s.Repo.List(ctx, listByAuthorQuery(actor.ID))
	if err != nil {
		return nil, &utils.UpstreamError{Op: "article list", Err: err}
	}
	return articles, nil
}

// ListPending returns the review queue for moderators.
func (s *DefaultArticleService) ListPending(ctx context.Context, actor *models.Account) ([]models.Article, error) {
	if err := authz.Authorize(actor, authz.ActionReviewArticle); err != nil {
		return nil, err
	}
	articles, err := s.Repo.List(ctx, listByStatusQuery(models.StatusPendingReview))
	if err != nil {
		return nil, &utils.UpstreamError{Op: "article list pending", Err: err}
	}
	return articles, nil
}

func (s *DefaultArticleService) mustGet(ctx context.Context, articleID string) (*models.Article, error) {
	a, err := s.Repo.GetByID(ctx, articleID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "article fetch", Err: err}
	}
	if a == nil {
		return nil, &utils.NotFoundError{Resource: "article", ID: articleID}
	}
	return a, nil
}

func (s *DefaultArticleService) publish(ctx context.Context, event models.ArticleEvent) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.Publish(ctx, event)
	utils.GetLogger().Debug("article event published",
		zap.String("type", event.Type), zap.String("articleId", event.ArticleID))
}
