package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ankit1439/mess-portal/internal/api/handler"
	"github.com/ankit1439/mess-portal/internal/api/middleware"
	"github.com/ankit1439/mess-portal/internal/core/service"
	mongodb "github.com/ankit1439/mess-portal/internal/infrastructure/db/mongo"
	redisdb "github.com/ankit1439/mess-portal/internal/infrastructure/db/redis"
	"github.com/ankit1439/mess-portal/internal/pkg/config"
	"github.com/ankit1439/mess-portal/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("messportal"))

	// --- Repositories ---
	voteRepo := mongodb.NewVoteRepository(db)
	feedbackRepo := mongodb.NewFeedbackRepository(db)
	complaintRepo := mongodb.NewComplaintRepository(db)
	suggestionRepo := mongodb.NewSuggestionRepository(db)
	adminRepo := mongodb.NewAdminRepository(db)
	sessionRepo := mongodb.NewSessionRepository(db)
	menuRepo := mongodb.NewMenuRepository(db)

	// --- Services ---
	var marker service.VoteMarker
	if rdb != nil {
		marker = redisdb.NewVoteMarker(rdb)
	}
	voteService := service.NewVoteService(voteRepo, marker, logger.Component("votes"))
	authService := service.NewAuthService(adminRepo, sessionRepo, cfg.SessionTTL, logger.Component("auth"))
	submissionService := service.NewSubmissionService(feedbackRepo, complaintRepo, suggestionRepo, logger.Component("submissions"))
	reportService := service.NewReportService(voteRepo, feedbackRepo, complaintRepo, suggestionRepo, logger.Component("reports"))
	menuService := service.NewMenuService(menuRepo, cfg.UploadDir, logger.Component("menu"))

	// --- Handlers ---
	voteHandler := handler.NewVoteHandler(voteService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)
	authHandler := handler.NewAuthHandler(authService)
	reportHandler := handler.NewReportHandler(reportService, submissionService)
	exportHandler := handler.NewExportHandler(reportService)
	menuHandler := handler.NewMenuHandler(menuService)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Public routes ---
	e.POST("/api/vote", voteHandler.Submit)
	e.POST("/api/check-vote", voteHandler.Check)
	e.POST("/api/feedback", submissionHandler.Feedback)
	e.POST("/api/complaint", submissionHandler.Complaint)
	e.POST("/api/menu-suggestion", submissionHandler.Suggestion)
	e.GET("/api/public/current-menu-pdf", menuHandler.Current)
	e.GET("/api/uploads/:filename", menuHandler.Serve)

	e.POST("/api/admin/login", authHandler.Login)
	e.POST("/api/admin/verify-token", authHandler.VerifyToken)

	// --- Admin routes (bearer session required) ---
	admin := e.Group("/api/admin", middleware.Auth(authService))
	admin.POST("/logout", authHandler.Logout)
	admin.GET("/profile", authHandler.Profile)
	admin.POST("/change-password", authHandler.ChangePassword)

	admin.GET("/votes", reportHandler.Votes)
	admin.GET("/feedback", reportHandler.Feedback)
	admin.GET("/complaints", reportHandler.Complaints)
	admin.GET("/menu-suggestions", reportHandler.Suggestions)
	admin.GET("/dashboard", reportHandler.Dashboard)
	admin.PUT("/complaints/:id/status", reportHandler.UpdateComplaintStatus)

	admin.GET("/export/csv", exportHandler.CSV)
	admin.GET("/export/excel", exportHandler.Excel)

	admin.POST("/menu/upload", menuHandler.Upload)
	admin.GET("/menu/current", menuHandler.Current)

	return e
}
