package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coachbook/internal/config"
	"coachbook/internal/database"
	"coachbook/internal/middleware"
	"coachbook/internal/modules/auth"
	"coachbook/internal/modules/booking"
	"coachbook/internal/modules/branch"
	"coachbook/internal/modules/dashboard"
	"coachbook/internal/modules/schedule"
	jwtsvc "coachbook/internal/pkg/jwt"
	"coachbook/internal/pkg/logger"
	"coachbook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl := logger.New(cfg.AppEnv)
	defer zl.Sync()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zl.Fatal("connect database", zap.Error(err))
	}

	// SQLite (local dev) gets its schema from AutoMigrate; PostgreSQL is
	// migrated by cmd/migrate ahead of deploy.
	if !database.IsPostgres(cfg.DatabaseURL) {
		if err := repository.AutoMigrate(db); err != nil {
			zl.Fatal("auto-migrate", zap.Error(err))
		}
	}

	userRepo := repository.NewUserRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	branchService := branch.NewService(branchRepo)
	branchHandler := branch.NewHandler(branchService)

	scheduleService := schedule.NewService(blockRepo, bookingRepo, branchRepo, cfg.SessionMinutes, cfg.StepMinutes)
	scheduleHandler := schedule.NewHandler(scheduleService)

	bookingService := booking.NewService(bookingRepo, branchRepo, cfg.SessionMinutes)
	bookingHandler := booking.NewHandler(bookingService)

	dashboardService := dashboard.NewService(bookingRepo, blockRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	v1 := r.Group("/api/v1")
	{
		// public: auth, branch list, slot/block reads
		authHandler.RegisterRoutes(v1)
		branchHandler.RegisterRoutes(v1)
		scheduleHandler.RegisterRoutes(v1)

		// authenticated: bookings and profile
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
		}

		// admin: block/branch management and dashboard
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			branchHandler.RegisterAdminRoutes(admin)
			scheduleHandler.RegisterAdminRoutes(admin)
			dashboardHandler.RegisterAdminRoutes(admin)
		}
	}

	zl.Info("starting api", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
