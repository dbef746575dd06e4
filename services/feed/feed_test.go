package feed

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	articleRepo "pressroom/database/repository/article"
	"pressroom/models"
	"pressroom/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubArticleStore serves a fixed list through the repository interface.
// Only List is exercised by the feed layer.
type stubArticleStore struct {
	articles []models.Article
	err      error
}

func (s *stubArticleStore) List(ctx context.Context, q articleRepo.ArticleQuery) ([]models.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []models.Article
	for _, a := range s.articles {
		if q.Status != "" && a.Status != q.Status {
			continue
		}
		if q.Category != "" && q.Category != models.CategoryAll && a.Category != q.Category {
			continue
		}
		out = append(out, a)
	}
	if q.Limit > 0 && int64(len(out)) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

func (s *stubArticleStore) GetByID(ctx context.Context, id string) (*models.Article, error) {
	return nil, nil
}
func (s *stubArticleStore) Create(ctx context.Context, a *models.Article) error { return nil }
func (s *stubArticleStore) UpdateSetDocument(ctx context.Context, id string, updateDoc map[string]any) error {
	return nil
}
func (s *stubArticleStore) Delete(ctx context.Context, id string) error { return nil }
func (s *stubArticleStore) AddLike(ctx context.Context, articleID, accountID string) (bool, error) {
	return false, nil
}
func (s *stubArticleStore) RemoveLike(ctx context.Context, articleID, accountID string) (bool, error) {
	return false, nil
}
func (s *stubArticleStore) IncrementViews(ctx context.Context, articleID string) error { return nil }
func (s *stubArticleStore) AddReport(ctx context.Context, articleID, reporterID string) (int64, error) {
	return 0, nil
}

// stubNewsSource returns canned headlines or a fixed error.
type stubNewsSource struct {
	items []models.RawNewsItem
	err   error
	calls int
}

func (s *stubNewsSource) FetchHeadlines(ctx context.Context, category, language string) ([]models.RawNewsItem, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func publishedAt(t time.Time) *time.Time { return &t }

func publishedArticle(id, category string, likes, views int64, published time.Time) models.Article {
	return models.Article{
		ID:          id,
		Title:       "Article " + id,
		Category:    category,
		Status:      models.StatusPublished,
		Likes:       likes,
		Views:       views,
		CreatedAt:   published,
		PublishedAt: publishedAt(published),
	}
}

func headline(title, publishedAt string) models.RawNewsItem {
	var item models.RawNewsItem
	item.Title = title
	item.PublishedAt = publishedAt
	item.Source.Name = "Wire Service"
	item.URL = "https://news.example.org/" + title
	return item
}

func TestRankOrdersByScoreThenRecency(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// Likes weigh three times views: B beats A despite far fewer views.
	a := publishedArticle("a", "general", 2, 100, base)            // score 106
	b := publishedArticle("b", "general", 40, 0, base.Add(-time.Hour)) // score 120
	c := publishedArticle("c", "general", 40, 0, base)                 // score 120, newer

	ranked := Rank([]models.Article{a, b, c}, 0)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c", ranked[0].ID, "equal scores break on newer publishedAt")
	assert.Equal(t, "b", ranked[1].ID)
	assert.Equal(t, "a", ranked[2].ID)
}

func TestRankIsDeterministicOnFullTies(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	pool := []models.Article{
		publishedArticle("z", "general", 1, 0, base),
		publishedArticle("a", "general", 1, 0, base),
		publishedArticle("m", "general", 1, 0, base),
	}

	first := Rank(pool, 0)
	second := Rank([]models.Article{pool[2], pool[0], pool[1]}, 0)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "rank %d must not depend on input order", i)
	}
	assert.Equal(t, "a", first[0].ID, "full ties break on ID")
}

func TestRankTruncatesToLimit(t *testing.T) {
	base := time.Now()
	var pool []models.Article
	for i := 0; i < 30; i++ {
		pool = append(pool, publishedArticle(fmt.Sprintf("a%02d", i), "general", int64(i), 0, base))
	}

	ranked := Rank(pool, 5)
	require.Len(t, ranked, 5)
	assert.Equal(t, "a29", ranked[0].ID)
}

func TestTrendingTabExcludesHeadlines(t *testing.T) {
	store := &stubArticleStore{articles: []models.Article{
		publishedArticle("a1", "general", 10, 50, time.Now()),
	}}
	news := &stubNewsSource{items: []models.RawNewsItem{headline("External story", "2026-08-01T10:00:00Z")}}
	svc := &DefaultFeedService{Articles: store, News: news, PoolMultiplier: 3}

	got, err := svc.GetFeed(context.Background(), TabTrending, models.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
	assert.Zero(t, news.calls, "trending never consults the external source")
}

func TestRecentMergesNewestFirst(t *testing.T) {
	store := &stubArticleStore{articles: []models.Article{
		publishedArticle("a1", "general", 0, 0, time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)),
	}}
	news := &stubNewsSource{items: []models.RawNewsItem{
		headline("Older wire story", "2026-08-01T10:00:00Z"),
		headline("Newer wire story", "2026-08-03T10:00:00Z"),
	}}
	svc := &DefaultFeedService{Articles: store, News: news}

	got, err := svc.GetFeed(context.Background(), TabRecent, models.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Newer wire story", got[0].Title)
	assert.Equal(t, "a1", got[1].ID)
	assert.Equal(t, "Older wire story", got[2].Title)
	assert.True(t, got[0].External)
}

func TestRecentDegradesWhenNewsFails(t *testing.T) {
	store := &stubArticleStore{articles: []models.Article{
		publishedArticle("a1", "general", 0, 0, time.Now()),
	}}
	news := &stubNewsSource{err: errors.New("upstream 503")}
	svc := &DefaultFeedService{Articles: store, News: news}

	got, err := svc.GetFeed(context.Background(), TabRecent, models.CategoryAll, "")
	require.NoError(t, err, "a failing news source must not fail the feed")
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)
}

func TestNewsTabDegradesToEmptyList(t *testing.T) {
	svc := &DefaultFeedService{
		Articles: &stubArticleStore{},
		News:     &stubNewsSource{err: errors.New("timeout")},
	}

	got, err := svc.GetFeed(context.Background(), TabNews, models.CategoryAll, "")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCancelledContextPropagates(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := &DefaultFeedService{
		Articles: &stubArticleStore{},
		News:     &stubNewsSource{err: context.Canceled},
	}

	_, err := svc.GetFeed(ctx, TabNews, models.CategoryAll, "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCategoryFilterScopesBothHalves(t *testing.T) {
	store := &stubArticleStore{articles: []models.Article{
		publishedArticle("a1", "sports", 0, 0, time.Now()),
		publishedArticle("a2", "politics", 0, 0, time.Now()),
	}}
	news := &stubNewsSource{items: []models.RawNewsItem{headline("Match report", "2026-08-30T10:00:00Z")}}
	svc := &DefaultFeedService{Articles: store, News: news}

	got, err := svc.GetFeed(context.Background(), TabRecent, "sports", "")
	require.NoError(t, err)
	for _, a := range got {
		assert.Equal(t, "sports", a.Category)
	}
}

func TestHeadlinesWithoutTitlesAreDropped(t *testing.T) {
	news := &stubNewsSource{items: []models.RawNewsItem{
		headline("", "2026-08-30T10:00:00Z"),
		headline("Kept story", "2026-08-30T11:00:00Z"),
	}}
	svc := &DefaultFeedService{Articles: &stubArticleStore{}, News: news}

	got, err := svc.GetFeed(context.Background(), TabNews, models.CategoryAll, "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kept story", got[0].Title)
}

func TestUnknownTabIsRejected(t *testing.T) {
	svc := &DefaultFeedService{Articles: &stubArticleStore{}, News: &stubNewsSource{}}

	_, err := svc.GetFeed(context.Background(), "hottest", models.CategoryAll, "")
	var verr *utils.ValidationError
	require.ErrorAs(t, err, &verr)
}
