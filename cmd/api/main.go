package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"safelogist/internal/config"
	"safelogist/internal/database"
	"safelogist/internal/middleware"
	"safelogist/internal/modules/admin"
	"safelogist/internal/modules/attachment"
	"safelogist/internal/modules/auth"
	"safelogist/internal/modules/claim"
	"safelogist/internal/modules/company"
	"safelogist/internal/modules/landing"
	"safelogist/internal/modules/review"
	"safelogist/internal/modules/reviewrequest"
	"safelogist/internal/modules/sitemap"
	"safelogist/internal/notify"
	jwtsvc "safelogist/internal/pkg/jwt"
	"safelogist/internal/pkg/logger"
	"safelogist/internal/registry"
	"safelogist/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg.DatabaseDSN)
	if err != nil {
		zlog.Fatalw("database connect failed", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	requestRepo := repository.NewReviewRequestRepository(db)
	claimRepo := repository.NewClaimRepository(db)
	landingRepo := repository.NewLandingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)
	files := attachment.NewService(cfg.UploadDir)
	notifier := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID, zlog)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	requestService := reviewrequest.NewService(requestRepo, userRepo, reviewRepo, companyRepo, files, notifier)
	requestHandler := reviewrequest.NewHandler(requestService)

	claimService := claim.NewService(claimRepo, userRepo, companyRepo, reviewRepo, files, notifier)
	claimHandler := claim.NewHandler(claimService)

	companyService := company.NewService(companyRepo)
	companyHandler := company.NewHandler(companyService)

	reviewService := review.NewService(reviewRepo)
	reviewHandler := review.NewHandler(reviewService)

	adminService := admin.NewService(userRepo)
	adminHandler := admin.NewHandler(adminService)

	landingService := landing.NewService(landingRepo)
	landingHandler := landing.NewHandler(landingService)

	sitemapService := sitemap.NewService(companyRepo, cfg.BaseURL)
	sitemapHandler := sitemap.NewHandler(sitemapService)

	registryHandler := registry.NewHandler(
		registry.NewRussiaClient("", ""),
		registry.NewPortugalClient("", ""),
		registry.NewBelarusClient(""),
		registry.NewMoldovaClient(""),
		zlog.Desugar(),
	)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.Logger(zlog))
	r.Use(middleware.CORS())

	r.Static("/static", cfg.UploadDir)
	sitemapHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		landingHandler.RegisterPublicRoutes(v1)
		registryHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))

		adminGroup := protected.Group("/admin")
		adminGroup.Use(middleware.AdminOnly())

		authHandler.RegisterProtectedRoutes(protected)
		companyHandler.RegisterRoutes(v1, protected)
		requestHandler.RegisterRoutes(protected, adminGroup)
		claimHandler.RegisterRoutes(v1, adminGroup)
		adminHandler.RegisterRoutes(adminGroup)
		landingHandler.RegisterAdminRoutes(adminGroup)
	}

	zlog.Infow("starting api", "addr", cfg.ListenAddr, "env", cfg.AppEnv)
	if err := r.Run(cfg.ListenAddr); err != nil {
		zlog.Fatalw("server stopped", "error", err)
	}
}
