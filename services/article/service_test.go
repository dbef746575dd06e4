package article

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
)

// fakeArticleRepo is an in-memory ArticleRepository with the same atomic
// guard semantics as the Mongo implementation.
type fakeArticleRepo struct {
	mu       sync.Mutex
	articles map[string]*models.Article
}

func newFakeArticleRepo() *fakeArticleRepo {
	return &fakeArticleRepo{articles: make(map[string]*models.Article)}
}

func (r *fakeArticleRepo) seed(a models.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := a
	r.articles[a.ID] = &copied
}

func (r *fakeArticleRepo) GetByID(ctx context.Context, id string) (*models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	copied.LikedBy = append([]string(nil), a.LikedBy...)
	copied.ReportedBy = append([]string(nil), a.ReportedBy...)
	return &copied, nil
}

func (r *fakeArticleRepo) Create(ctx context.Context, a *models.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *a
	r.articles[a.ID] = &copied
	return nil
}

func (r *fakeArticleRepo) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[id]
	if !ok {
		return fmt.Errorf("article with id %s not found", id)
	}
	for field, value := range updateDoc {
		switch field {
		case "status":
			a.Status = value.(string)
		case "title":
			a.Title = value.(string)
		case "summary":
			a.Summary = value.(string)
		case "content":
			a.Content = value.(string)
		case "category":
			a.Category = value.(string)
		case "tags":
			a.Tags = value.([]string)
		case "featuredImage":
			a.FeaturedImage = value.(string)
		case "sources":
			a.Sources = value.([]models.Source)
		case "rejectionReason":
			a.RejectionReason = value.(string)
		case "flagReason":
			a.FlagReason = value.(string)
		case "reviewedBy":
			a.ReviewedBy = value.(string)
		case "submittedAt":
			t := value.(time.Time)
			a.SubmittedAt = &t
		case "publishedAt":
			t := value.(time.Time)
			a.PublishedAt = &t
		case "reviewedAt":
			t := value.(time.Time)
			a.ReviewedAt = &t
		case "flaggedAt":
			t := value.(time.Time)
			a.FlaggedAt = &t
		}
	}
	return nil
}

func (r *fakeArticleRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.articles[id]; !ok {
		return fmt.Errorf("article with id %s not found", id)
	}
	delete(r.articles, id)
	return nil
}

func (r *fakeArticleRepo) List(ctx context.Context, q articleRepo.ArticleQuery) ([]models.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []models.Article
	for _, a := range r.articles {
		if q.Status != "" && a.Status != q.Status {
			continue
		}
		if q.AuthorID != "" && a.AuthorID != q.AuthorID {
			continue
		}
		if q.Category != "" && q.Category != models.CategoryAll && a.Category != q.Category {
			continue
		}
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].BestTimestamp().After(out[j].BestTimestamp())
	})
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (r *fakeArticleRepo) AddLike(ctx context.Context, articleID, accountID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[articleID]
	if !ok {
		return false, fmt.Errorf("article with id %s not found", articleID)
	}
	for _, id := range a.LikedBy {
		if id == accountID {
			return false, nil
		}
	}
	a.LikedBy = append(a.LikedBy, accountID)
	a.Likes++
	return true, nil
}

func (r *fakeArticleRepo) RemoveLike(ctx context.Context, articleID, accountID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[articleID]
	if !ok {
		return false, fmt.Errorf("article with id %s not found", articleID)
	}
	for i, id := range a.LikedBy {
		if id == accountID {
			a.LikedBy = append(a.LikedBy[:i], a.LikedBy[i+1:]...)
			a.Likes--
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeArticleRepo) IncrementViews(ctx context.Context, articleID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[articleID]
	if !ok {
		return fmt.Errorf("article with id %s not found", articleID)
	}
	a.Views++
	return nil
}

func (r *fakeArticleRepo) AddReport(ctx context.Context, articleID, reporterID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.articles[articleID]
	if !ok {
		return 0, fmt.Errorf("article with id %s not found", articleID)
	}
	for _, id := range a.ReportedBy {
		if id == reporterID {
			return a.Reports, nil
		}
	}
	a.ReportedBy = append(a.ReportedBy, reporterID)
	a.Reports++
	return a.Reports, nil
}

// recordingNotifier captures published events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	events []models.ArticleEvent
}

func (n *recordingNotifier) Publish(ctx context.Context, event models.ArticleEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *recordingNotifier) Subscribe(ctx context.Context, handler func(models.ArticleEvent)) {}

func (n *recordingNotifier) published() []models.ArticleEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.ArticleEvent(nil), n.events...)
}

func newTestService(repo *fakeArticleRepo) (*DefaultArticleService, *recordingNotifier) {
	n := &recordingNotifier{}
	return &DefaultArticleService{
		Repo:          repo,
		Notifier:      n,
		FlagThreshold: 5,
		MinContentLen: 200,
	}, n
}

func reader(id string) *models.Account {
	return &models.Account{ID: id, DisplayName: "Reader " + id, Role: models.RoleReader}
}

func verifiedJournalist(id string) *models.Account {
	return &models.Account{ID: id, DisplayName: "Journalist " + id, Role: models.RoleJournalist, Verified: true}
}

func editor(id string) *models.Account {
	return &models.Account{ID: id, DisplayName: "Editor " + id, Role: models.RoleEditor}
}

func admin(id string) *models.Account {
	return &models.Account{ID: id, DisplayName: "Admin " + id, Role: models.RoleAdmin}
}

func longContent(n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = 'a'
	}
	return string(buf)
}

func draftArticle(id, authorID string) models.Article {
	now := time.Now()
	return models.Article{
		ID:        id,
		AuthorID:  authorID,
		Title:     "Water shortage hits the east side",
		Category:  "general",
		Content:   longContent(400),
		Sources:   []models.Source{{Name: "County notice", URL: "https://example.org/notice", Type: "document"}},
		Status:    models.StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
