package routes

import (
	"net/http"
	"time"

	"pressroom/handlers"
	"pressroom/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAccountRoutes registers registration, sign-in and profile
// endpoints.
func RegisterAccountRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/accounts")
	{
		api.POST("/register", hb.Accounts.RegisterHandler)
		api.POST("/login", hb.Accounts.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		api.GET("/me", hb.Accounts.MeHandler)
		api.PATCH("/me", hb.Accounts.UpdateProfileHandler)
		api.DELETE("/session", hb.Accounts.LogoutHandler)
	}
}

// RegisterArticleRoutes registers the article lifecycle, engagement and
// comment endpoints.
func RegisterArticleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/articles")
	{
		// Public reads; a valid token still resolves the reader.
		public := api.Group("")
		public.Use(middleware.AuthMiddleware(hb.AccountRepo, true))
		public.GET("/id/:id", hb.Articles.GetHandler)
		public.GET("/id/:id/comments", hb.Comments.ListHandler)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		protected.POST("", hb.Articles.CreateHandler)
		protected.GET("/mine", hb.Articles.MineHandler)
		protected.GET("/pending", hb.Articles.PendingHandler)
		protected.PUT("/id/:id", hb.Articles.UpdateHandler)
		protected.DELETE("/id/:id", hb.Articles.DeleteHandler)
		protected.POST("/id/:id/submit", hb.Articles.SubmitHandler)
		protected.POST("/id/:id/approve", hb.Articles.ApproveHandler)
		protected.POST("/id/:id/reject", hb.Articles.RejectHandler)
		protected.POST("/id/:id/toggle-status", hb.Articles.ToggleStatusHandler)
		protected.POST("/id/:id/like", hb.Articles.LikeHandler)
		protected.POST("/id/:id/report", hb.Articles.ReportHandler)
		protected.POST("/id/:id/comments", hb.Comments.PostHandler)
	}

	comments := r.Group("/api/comments")
	{
		comments.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		comments.DELETE("/id/:id", hb.Comments.DeleteHandler)
	}
}

// RegisterFeedRoutes registers the combined feed and the live event
// stream.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/feed", middleware.AuthMiddleware(hb.AccountRepo, true), hb.Feed.GetFeedHandler)
		api.GET("/events", hb.Events.StreamHandler)
	}
}

// RegisterVerificationRoutes registers the verification workflow.
func RegisterVerificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/verification")
	{
		api.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		api.POST("", hb.Verification.SubmitHandler)
		api.GET("/status", hb.Verification.StatusHandler)
		api.GET("/pending", hb.Verification.PendingHandler)
		api.POST("/id/:id/review", hb.Verification.ReviewHandler)
	}
}

// RegisterGrievanceRoutes registers the grievance desk.
func RegisterGrievanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/grievances")
	{
		api.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		api.POST("", hb.Grievances.SubmitHandler)
		api.GET("", hb.Grievances.QueueHandler)
		api.GET("/mine", hb.Grievances.MineHandler)
		api.GET("/id/:id", hb.Grievances.GetHandler)
		api.POST("/id/:id/transition", hb.Grievances.TransitionHandler)
		api.POST("/id/:id/notes", hb.Grievances.NoteHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		api.POST("/:type/:bucket", hb.Storage.UploadFileHandler)
		api.GET("/:type/:publicId/url", hb.Storage.SignedURLHandler)
		api.DELETE("/:publicId", hb.Storage.DeleteFileHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AuthMiddleware(hb.AccountRepo, false))
		adminGroup.GET("/accounts", hb.Admin.ListAccountsHandler)
		adminGroup.POST("/accounts/:id/role", hb.Admin.SetRoleHandler)
		adminGroup.DELETE("/accounts/:id", hb.Admin.DeleteAccountHandler)
	}
}

// RegisterLegalRoutes registers the public legal documents.
func RegisterLegalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/legal", hb.Admin.LegalHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Pressroom"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAccountRoutes(r, hb)
	RegisterArticleRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterVerificationRoutes(r, hb)
	RegisterGrievanceRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterLegalRoutes(r, hb)
	RegisterHealthRoute(r)
}
