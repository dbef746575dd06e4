package article

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pressroom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeAddsThenRemoves(t *testing.T) {
	repo := newFakeArticleRepo()
	svc, _ := newTestService(repo)

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPublished
	repo.seed(a)

	liked, err := svc.ToggleLike(context.Background(), reader("r1"), "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), liked.Likes)
	assert.Contains(t, liked.LikedBy, "r1")

	unliked, err := svc.ToggleLike(context.Background(), reader("r1"), "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), unliked.Likes)
	assert.NotContains(t, unliked.LikedBy, "r1")
}

func TestConcurrentTogglesKeepCounterInStep(t *testing.T) {
	repo := newFakeArticleRepo()
	svc, _ := newTestService(repo)

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPublished
	repo.seed(a)

	const actors = 32
	var wg sync.WaitGroup
	for i := 0; i < actors; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			acct := reader(fmt.Sprintf("r%d", n))
			// Odd actors toggle twice and should net out to zero.
			if _, err := svc.ToggleLike(context.Background(), acct, "a1"); err != nil {
				t.Error(err)
			}
			if n%2 == 1 {
				if _, err := svc.ToggleLike(context.Background(), acct, "a1"); err != nil {
					t.Error(err)
				}
			}
		}(i)
	}
	wg.Wait()

	final, err := repo.GetByID(context.Background(), "a1")
	require.NoError(t, err)
	assert.Equal(t, int64(len(final.LikedBy)), final.Likes,
		"likes counter must equal the likedBy membership")
	assert.Equal(t, int64(actors/2), final.Likes)
}

func TestReportBelowThresholdLeavesStatus(t *testing.T) {
	repo := newFakeArticleRepo()
	svc, notif := newTestService(repo)

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPublished
	repo.seed(a)

	var reported *models.Article
	var err error
	for i := 0; i < 4; i++ {
		reported, err = svc.Report(context.Background(), reader(fmt.Sprintf("r%d", i)), "a1", "misleading")
		require.NoError(t, err)
	}
	assert.Equal(t, int64(4), reported.Reports)
	assert.Equal(t, models.StatusPublished, reported.Status)
	assert.Empty(t, notif.published())
}

func TestFifthDistinctReportFlags(t *testing.T) {
	repo := newFakeArticleRepo()
	svc, notif := newTestService(repo)

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPublished
	repo.seed(a)

	var reported *models.Article
	var err error
	for i := 0; i < 5; i++ {
		reported, err = svc.Report(context.Background(), reader(fmt.Sprintf("r%d", i)), "a1", "misleading")
		require.NoError(t, err)
	}
	assert.Equal(t, models.StatusFlagged, reported.Status)
	assert.Equal(t, "misleading", reported.FlagReason)

	events := notif.published()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventArticleFlagged, events[0].Type)
}

func TestRepeatReporterDoesNotInflateCount(t *testing.T) {
	repo := newFakeArticleRepo()
	svc, _ := newTestService(repo)

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPublished
	repo.seed(a)

	acct := reader("r1")
	for i := 0; i < 5; i++ {
		reported, err := svc.Report(context.Background(), acct, "a1", "spam")
		require.NoError(t, err)
		assert.Equal(t, int64(1), reported.Reports)
		assert.Equal(t, models.StatusPublished, reported.Status)
	}
}

func TestReportFlagsFromAnyStatus(t *testing.T) {
	repo := newFakeArticleRepo()
	svc, _ := newTestService(repo)

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPendingReview
	repo.seed(a)

	var reported *models.Article
	var err error
	for i := 0; i < 5; i++ {
		reported, err = svc.Report(context.Background(), reader(fmt.Sprintf("r%d", i)), "a1", "plagiarism")
		require.NoError(t, err)
	}
	assert.Equal(t, models.StatusFlagged, reported.Status)
}

func TestRecordViewFallsBackToDirectIncrement(t *testing.T) {
	repo := newFakeArticleRepo()
	svc := &DefaultArticleService{Repo: repo}

	a := draftArticle("a1", "j1")
	a.Status = models.StatusPublished
	repo.seed(a)

	svc.RecordView(context.Background(), "a1")

	assert.Eventually(t, func() bool {
		current, err := repo.GetByID(context.Background(), "a1")
		return err == nil && current.Views == 1
	}, time.Second, 10*time.Millisecond)
}
