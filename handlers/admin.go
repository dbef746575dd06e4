package handlers

import (
	"net/http"

	"pressroom/middleware"
	"pressroom/services/account"
	"pressroom/services/admin"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes account administration and the legal documents.
type AdminHandler struct {
	Accounts account.AccountService
	Legal    admin.AdminService
}

func NewAdminHandler(accounts account.AccountService, legal admin.AdminService) *AdminHandler {
	return &AdminHandler{Accounts: accounts, Legal: legal}
}

// ListAccountsHandler handles GET /api/admin/accounts.
func (h *AdminHandler) ListAccountsHandler(c *gin.Context) {
	accounts, err := h.Accounts.GetAll(c.Request.Context(), middleware.CurrentAccount(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": accounts})
}

// SetRoleHandler handles POST /api/admin/accounts/:id/role.
func (h *AdminHandler) SetRoleHandler(c *gin.Context) {
	var req struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Accounts.SetRole(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id"), req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteAccountHandler handles DELETE /api/admin/accounts/:id.
func (h *AdminHandler) DeleteAccountHandler(c *gin.Context) {
	if err := h.Accounts.Delete(c.Request.Context(), middleware.CurrentAccount(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}

// LegalHandler handles GET /api/legal. Optionally scoped with
// ?audience=.
func (h *AdminHandler) LegalHandler(c *gin.Context) {
	audience := c.Query("audience")
	if audience == "" {
		c.JSON(http.StatusOK, gin.H{"sections": h.Legal.GetLegalSections()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": h.Legal.GetLegalSectionsFor(audience)})
}
