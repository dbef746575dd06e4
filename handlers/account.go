package handlers

import (
	"net/http"

	"pressroom/middleware"
	"pressroom/services/account"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler exposes registration, sign-in and profile endpoints.
type AccountHandler struct {
	Service account.AccountService
}

func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Service: svc}
}

// RegisterHandler handles POST /api/accounts/register.
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var input account.RegistrationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), input)
	if err != nil {
		logger.Error("Registration failed", zap.Error(err))
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/accounts/login.
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// MeHandler handles GET /api/accounts/me.
func (h *AccountHandler) MeHandler(c *gin.Context) {
	acct := middleware.CurrentAccount(c)
	if acct == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	c.JSON(http.StatusOK, acct)
}

// UpdateProfileHandler handles PATCH /api/accounts/me.
func (h *AccountHandler) UpdateProfileHandler(c *gin.Context) {
	var req struct {
		DisplayName string `json:"displayName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.UpdateProfile(c.Request.Context(), middleware.CurrentAccount(c), req.DisplayName)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// LogoutHandler handles DELETE /api/accounts/session.
func (h *AccountHandler) LogoutHandler(c *gin.Context) {
	acct := middleware.CurrentAccount(c)
	if acct == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not signed in"})
		return
	}
	if err := h.Service.RevokeToken(c.Request.Context(), acct.ID); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
