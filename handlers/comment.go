package handlers

import (
	"net/http"

	"pressroom/middleware"
	"pressroom/services/comment"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
)

// CommentHandler exposes article comments.
type CommentHandler struct {
	Service comment.CommentService
}

func NewCommentHandler(svc comment.CommentService) *CommentHandler {
	return &CommentHandler{Service: svc}
}

// PostHandler handles POST /api/articles/:id/comments.
func (h *CommentHandler) PostHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posted, err := h.Service.Post(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, posted)
}

// ListHandler handles GET /api/articles/:id/comments.
func (h *CommentHandler) ListHandler(c *gin.Context) {
	comments, err := h.Service.ListByArticle(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// DeleteHandler handles DELETE /api/comments/:id.
func (h *CommentHandler) DeleteHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "comment deleted"})
}
