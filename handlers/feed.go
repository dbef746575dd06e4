package handlers

import (
	"net/http"

	"pressroom/models"
	"pressroom/services/feed"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FeedHandler serves the combined reader feed.
type FeedHandler struct {
	Service feed.FeedService
}

func NewFeedHandler(svc feed.FeedService) *FeedHandler {
	return &FeedHandler{Service: svc}
}

// GetFeedHandler handles GET /api/feed. Query params: tab (trending,
// recent, news, articles), category, language.
func (h *FeedHandler) GetFeedHandler(c *gin.Context) {
	tab := c.DefaultQuery("tab", feed.TabRecent)
	category := c.DefaultQuery("category", models.CategoryAll)
	language := c.DefaultQuery("language", "")

	articles, err := h.Service.GetFeed(c.Request.Context(), tab, category, language)
	if err != nil {
		utils.GetLogger().Error("Feed fetch failed",
			zap.String("tab", tab), zap.String("category", category), zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tab":      tab,
		"category": category,
		"articles": articles,
	})
}
