package handlers

import (
	"net/http"

	"pressroom/middleware"
	"pressroom/models"
	"pressroom/services/verification"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
)

// VerificationHandler exposes the account verification workflow.
type VerificationHandler struct {
	Service verification.VerificationService
}

func NewVerificationHandler(svc verification.VerificationService) *VerificationHandler {
	return &VerificationHandler{Service: svc}
}

// SubmitHandler handles POST /api/verification.
func (h *VerificationHandler) SubmitHandler(c *gin.Context) {
	var req struct {
		AccountType string                        `json:"accountType" binding:"required"`
		Documents   []models.VerificationDocument `json:"documents"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	acct := middleware.CurrentAccount(c)
	submission, err := h.Service.SubmitVerification(c.Request.Context(), acct.ID, req.AccountType, req.Documents)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// StatusHandler handles GET /api/verification/status.
func (h *VerificationHandler) StatusHandler(c *gin.Context) {
	acct := middleware.CurrentAccount(c)
	status, err := h.Service.GetVerificationStatus(c.Request.Context(), acct.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// PendingHandler handles GET /api/verification/pending.
func (h *VerificationHandler) PendingHandler(c *gin.Context) {
	pending, err := h.Service.ListPending(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"submissions": pending})
}

// ReviewHandler handles POST /api/verification/:id/review.
func (h *VerificationHandler) ReviewHandler(c *gin.Context) {
	var req struct {
		Approve bool   `json:"approve"`
		Reason  string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviewed, err := h.Service.ReviewVerification(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Approve, req.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewed)
}
