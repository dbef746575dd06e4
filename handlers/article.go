package handlers

import (
	"net/http"

	"pressroom/middleware"
	"pressroom/models"
	"pressroom/services/article"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ArticleHandler exposes the article lifecycle and engagement endpoints.
type ArticleHandler struct {
	Service article.ArticleService
}

func NewArticleHandler(svc article.ArticleService) *ArticleHandler {
	return &ArticleHandler{Service: svc}
}

// CreateHandler handles POST /api/articles.
func (h *ArticleHandler) CreateHandler(c *gin.Context) {
	var input article.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), middleware.CurrentAccount(c), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateHandler handles PUT /api/articles/:id.
func (h *ArticleHandler) UpdateHandler(c *gin.Context) {
	var input article.ArticleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.SaveDraft(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), input)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SubmitHandler handles POST /api/articles/:id/submit.
func (h *ArticleHandler) SubmitHandler(c *gin.Context) {
	submitted, err := h.Service.SubmitForReview(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, submitted)
}

// ApproveHandler handles POST /api/articles/:id/approve.
func (h *ArticleHandler) ApproveHandler(c *gin.Context) {
	approved, err := h.Service.Approve(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, approved)
}

// RejectHandler handles POST /api/articles/:id/reject.
func (h *ArticleHandler) RejectHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rejected, err := h.Service.Reject(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rejected)
}

// ToggleStatusHandler handles POST /api/articles/:id/toggle-status.
func (h *ArticleHandler) ToggleStatusHandler(c *gin.Context) {
	toggled, err := h.Service.ToggleStatus(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toggled)
}

// DeleteHandler handles DELETE /api/articles/:id.
func (h *ArticleHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted"})
}

// ReportHandler handles POST /api/articles/:id/report.
func (h *ArticleHandler) ReportHandler(c *gin.Context) {
	var req struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reported, err := h.Service.Report(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reported)
}

// LikeHandler handles POST /api/articles/:id/like.
func (h *ArticleHandler) LikeHandler(c *gin.Context) {
	liked, err := h.Service.ToggleLike(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, liked)
}

// GetHandler handles GET /api/articles/:id. Reads on published articles
// count as a view.
func (h *ArticleHandler) GetHandler(c *gin.Context) {
	found, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if found.Status == models.StatusPublished {
		h.Service.RecordView(c.Request.Context(), found.ID)
	}
	c.JSON(http.StatusOK, found)
}

// MineHandler handles GET /api/articles/mine.
func (h *ArticleHandler) MineHandler(c *gin.Context) {
	articles, err := h.Service.ListByAuthor(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// PendingHandler handles GET /api/articles/pending.
func (h *ArticleHandler) PendingHandler(c *gin.Context) {
	articles, err := h.Service.ListPending(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.GetLogger().Error("Pending queue fetch failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}
