package middleware

import (
	"net/http"
	"strings"

	accountRepo "pressroom/database/repository/account"
	"pressroom/models"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
)

// ContextAccountKey is the gin context key holding the resolved account.
const ContextAccountKey = "account"

// AuthMiddleware resolves the current account from the Authorization
// header and stores it in the request context. Downstream code always
// receives the actor as an explicit value, never from ambient state.
// When optional is true an anonymous request proceeds with no account set;
// otherwise it is rejected.
func AuthMiddleware(accounts accountRepo.AccountRepository, optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		acct := resolveAccount(c, accounts, tokenString)
		if acct == nil {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		c.Set(ContextAccountKey, acct)
		c.Next()
	}
}

// resolveAccount tries the built-in session token first, then a Firebase
// ID token when the managed-auth collaborator is configured.
func resolveAccount(c *gin.Context, accounts accountRepo.AccountRepository, tokenString string) *models.Account {
	ctx := c.Request.Context()

	if accountID, err := utils.ExtractIDFromToken(tokenString); err == nil && accountID != "" {
		cached, err := utils.GetAuthCacheClient().Get(ctx, utils.AuthCachePrefix+accountID).Result()
		if err == nil && cached == utils.HashToken(tokenString) {
			acct, err := accounts.GetByID(ctx, accountID)
			if err == nil && acct != nil {
				return acct
			}
		}
	}

	if utils.FirebaseAuthClient != nil {
		uid, err := utils.VerifyFirebaseIDToken(ctx, tokenString)
		if err == nil && uid != "" {
			acct, err := accounts.GetByFirebaseUID(ctx, uid)
			if err == nil && acct != nil {
				return acct
			}
		}
	}
	return nil
}

// CurrentAccount returns the account the auth middleware resolved, or nil
// for anonymous requests on optional routes.
func CurrentAccount(c *gin.Context) *models.Account {
	value, ok := c.Get(ContextAccountKey)
	if !ok {
		return nil
	}
	acct, ok := value.(*models.Account)
	if !ok {
		return nil
	}
	return acct
}
