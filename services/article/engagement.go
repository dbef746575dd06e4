// File: services/article/engagement.go
package article

import (
	"context"
	"time"

	"pressroom/models"
	"pressroom/utils"

	"go.uber.org/zap"
)

// ToggleLike flips the actor's like on an article. The add and remove
// paths are both single atomic store updates, so the likes counter can
// never drift from the likedBy membership even under concurrent toggles.
func (s *DefaultArticleService) ToggleLike(ctx context.Context, actor *models.Account, articleID string) (*models.Article, error) {
	if actor == nil {
		return nil, &utils.PermissionError{Action: "like article"}
	}
	if _, err := s.mustGet(ctx, articleID); err != nil {
		return nil, err
	}

	applied, err := s.Repo.AddLike(ctx, articleID, actor.ID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "article like", Err: err}
	}
	if !applied {
		// Already liked; toggle means remove.
		if _, err := s.Repo.RemoveLike(ctx, articleID, actor.ID); err != nil {
			return nil, &utils.UpstreamError{Op: "article unlike", Err: err}
		}
	}
	return s.mustGet(ctx, articleID)
}

// Report records a distinct reporter. Crossing the configured threshold
// flags the article regardless of its current status.
func (s *DefaultArticleService) Report(ctx context.Context, actor *models.Account, articleID, reason string) (*models.Article, error) {
	if actor == nil {
		return nil, &utils.PermissionError{Action: "report article"}
	}
	a, err := s.mustGet(ctx, articleID)
	if err != nil {
		return nil, err
	}

	count, err := s.Repo.AddReport(ctx, articleID, actor.ID)
	if err != nil {
		return nil, &utils.UpstreamError{Op: "article report", Err: err}
	}

	if count >= s.flagThreshold() && a.Status != models.StatusFlagged {
		now := time.Now()
		update := map[string]any{
			"status":     models.StatusFlagged,
			"flaggedAt":  now,
			"flagReason": reason,
		}
		if err := s.Repo.UpdateSetDocument(ctx, articleID, update); err != nil {
			return nil, &utils.UpstreamError{Op: "article flag", Err: err}
		}
		s.publish(ctx, models.ArticleEvent{
			Type:      models.EventArticleFlagged,
			ArticleID: articleID,
			Status:    models.StatusFlagged,
		})
	}
	return s.mustGet(ctx, articleID)
}

// RecordView counts a view without blocking the caller. The increment is
// handed to the background queue when one is wired; otherwise it runs on a
// detached goroutine. Failures are logged and swallowed either way.
func (s *DefaultArticleService) RecordView(ctx context.Context, articleID string) {
	logger := utils.GetLogger()

	if s.Views != nil {
		if err := s.Views.Record(ctx, articleID); err != nil {
			logger.Warn("failed to enqueue view increment",
				zap.String("articleId", articleID), zap.Error(err))
		}
		return
	}

	go func() {
		if err := s.Repo.IncrementViews(context.Background(), articleID); err != nil {
			logger.Warn("failed to increment views",
				zap.String("articleId", articleID), zap.Error(err))
		}
	}()
}
