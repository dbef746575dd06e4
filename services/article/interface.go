package article

import (
	"context"

	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
	"pressroom/services/notifier"
)

// ArticleInput carries the author-editable fields of an article.
type ArticleInput struct {
	Title         string          `json:"title"`
	Summary       string          `json:"summary"`
	Content       string          `json:"content"`
	Category      string          `json:"category"`
	Tags          []string        `json:"tags"`
	FeaturedImage string          `json:"featuredImage"`
	Sources       []models.Source `json:"sources"`
}

// ViewRecorder records a view without blocking the reader's request.
// Implementations enqueue onto the background worker.
type ViewRecorder interface {
	Record(ctx context.Context, articleID string) error
}

// ArticleService owns the article status state machine. The acting
// account is an explicit parameter on every call; there is no ambient
// current-user state anywhere in the workflow.
type ArticleService interface {
	// Create starts a new draft. Drafting needs no verification; the
	// verified-author gate sits on SubmitForReview.
	Create(ctx context.Context, actor *models.Account, input ArticleInput) (*models.Article, error)
	// SaveDraft updates an article the author still controls (draft or
	// rejected).
	SaveDraft(ctx context.Context, actor *models.Account, articleID string, input ArticleInput) (*models.Article, error)
	// SubmitForReview moves draft/rejected to pending_review after the
	// submission guards pass. The ValidationError lists every guard that
	// failed, not just the first.
	SubmitForReview(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error)
	// Approve publishes a pending article. Editor role or above.
	Approve(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error)
	// Reject declines a pending article with a reason. Editor role or above.
	Reject(ctx context.Context, actor *models.Account, articleID, reason string) (*models.Article, error)
	// ToggleStatus is the admin override flipping published and
	// pending_review.
	ToggleStatus(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error)
	// Delete removes an article. Author (while draft/rejected) or an
	// account holding the delete-any permission.
	Delete(ctx context.Context, actor *models.Account, articleID string) error
	// Report records a distinct reporter; crossing the threshold flags
	// the article from any status.
	Report(ctx context.Context, actor *models.Account, articleID, reason string) (*models.Article, error)
	// ToggleLike flips the actor's membership in likedBy and keeps the
	// likes counter exactly in step, atomically at the store.
	ToggleLike(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error)
	// RecordView is fire-and-forget; failures are logged, never surfaced.
	RecordView(ctx context.Context, articleID string)

	// GetByID fetches a single article.
	GetByID(ctx context.Context, articleID string) (*models.Article, error)
	// ListByAuthor returns the actor's own articles, all statuses.
	ListByAuthor(ctx context.Context, actor *models.Account) ([]models.Article, error)
	// ListPending returns the review queue. Editor role or above.
	ListPending(ctx context.Context, actor *models.Account) ([]models.Article, error)
}

// DefaultArticleService is the production implementation.
type DefaultArticleService struct {
	Repo     articleRepo.ArticleRepository
	Notifier notifier.Notifier
	Views    ViewRecorder

	// FlagThreshold and MinContentLen default to the configured values;
	// zero means "use config".
	FlagThreshold int64
	MinContentLen int
}
