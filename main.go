// File: pressroom/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pressroom/config"
	"pressroom/cron"
	"pressroom/database"
	accountRepoPkg "pressroom/database/repository/account"
	articleRepoPkg "pressroom/database/repository/article"
	commentRepoPkg "pressroom/database/repository/comment"
	grievanceRepoPkg "pressroom/database/repository/grievance"
	verificationRepoPkg "pressroom/database/repository/verification"
	"pressroom/handlers"
	"pressroom/middleware"
	"pressroom/routes"
	"pressroom/services/account"
	"pressroom/services/admin"
	"pressroom/services/article"
	"pressroom/services/comment"
	"pressroom/services/feed"
	"pressroom/services/grievance"
	"pressroom/services/news"
	"pressroom/services/notifier"
	"pressroom/services/tasks"
	"pressroom/services/verification"
	"pressroom/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	accountRepo := accountRepoPkg.NewMongoAccountRepo()
	articleRepo := articleRepoPkg.NewMongoArticleRepo()
	commentRepo := commentRepoPkg.NewMongoCommentRepo()
	grievanceRepo := grievanceRepoPkg.NewMongoGrievanceRepo()
	verificationRepo := verificationRepoPkg.NewMongoVerificationRepo()

	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := articleRepo.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Warnf("main: failed to ensure article indexes: %v", err)
		}
		cancel()
	}

	// services.
	eventNotifier := notifier.NewRedisNotifier(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.NotifierPollSeconds)*time.Second,
	)

	viewQueue := tasks.NewViewQueue()
	defer viewQueue.Close()

	articleService := &article.DefaultArticleService{
		Repo:     articleRepo,
		Notifier: eventNotifier,
		Views:    viewQueue,
	}

	feedService := &feed.DefaultFeedService{
		Articles: articleRepo,
		News:     news.NewHTTPNewsSource(),
		Cache:    utils.GetCacheClient(),
	}

	verificationService := &verification.DefaultVerificationService{
		Repo:        verificationRepo,
		Accounts:    accountRepo,
		AutoApprove: config.AppConfig.VerificationAutoApprove,
	}

	grievanceService := &grievance.DefaultGrievanceService{
		Repo: grievanceRepo,
	}

	commentService := &comment.DefaultCommentService{
		Repo:     commentRepo,
		Articles: articleRepo,
	}

	accountService := &account.DefaultAccountService{
		Repo: accountRepo,
	}

	adminService := &admin.DefaultAdminService{}

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		AccountRepo:  accountRepo,
		Accounts:     handlers.NewAccountHandler(accountService),
		Articles:     handlers.NewArticleHandler(articleService),
		Feed:         handlers.NewFeedHandler(feedService),
		Verification: handlers.NewVerificationHandler(verificationService),
		Grievances:   handlers.NewGrievanceHandler(grievanceService),
		Comments:     handlers.NewCommentHandler(commentService),
		Admin:        handlers.NewAdminHandler(accountService, adminService),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService),
		Events:       handlers.NewEventsHandler(eventNotifier),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker for view increments and headline refresh.
	cron.InitWorker(articleRepo, feedService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
