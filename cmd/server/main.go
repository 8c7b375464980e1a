package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"urban_access/internal/cache"
	"urban_access/internal/config"
	"urban_access/internal/controllers"
	"urban_access/internal/logger"
	"urban_access/internal/middleware"
	"urban_access/internal/repositories"
	"urban_access/internal/routes"
	"urban_access/internal/seed"
	"urban_access/internal/services"
	"urban_access/internal/validation"
)

// @title UrbanAccess API
// @version 1.0
// @description Accessibility incident reporting and peer validation.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log, accessOut := logger.Setup(cfg.LogLevel, cfg.LogFile)
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := config.RunMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	db, err := config.OpenDB(cfg, log)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql.DB: %v", err)
	}
	defer sqlDB.Close()
	log.Info("Successfully connected to PostgreSQL")

	// the category cache is optional; a nil interface sends every read to the database
	var categoryCache services.CategoryCache
	if cfg.RedisAddr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		categoryCache = cache.NewCategoryCache(redisClient)
		log.Info("Successfully connected to Redis")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(sqlDB, "urban_access"),
	)

	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	incidentRepo := repositories.NewIncidentRepository(db)

	hasher := services.NewBcryptHasher(cfg.BcryptCost)
	tokens := middleware.NewTokenManager(cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.JWTTTL)

	identityService := services.NewIdentityService(userRepo, hasher, tokens, log)
	profileService := services.NewProfileService(userRepo, identityService, log)
	categoryService := services.NewCategoryService(categoryRepo, categoryCache, cfg.CategoryCacheTTL, log)
	incidentService := services.NewIncidentService(incidentRepo, log, services.NewWorkflowMetrics(reg))

	if err := seed.NewSeeder(db, hasher, log).Run(ctx, cfg.SeedDemoData); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	if err := validation.RegisterWithGin(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	router := routes.SetupRouter(routes.Dependencies{
		Auth:        controllers.NewAuthController(identityService, log),
		Categories:  controllers.NewCategoryController(categoryService, log),
		Incidents:   controllers.NewIncidentController(incidentService, log),
		Users:       controllers.NewUserController(profileService, log),
		Health:      controllers.NewHealthController(sqlDB, log),
		Tokens:      identityService,
		HTTPMetrics: middleware.NewHTTPMetrics(reg),
		Gatherer:    reg,
		AccessLog:   accessOut,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           middleware.EnableCORS(cfg.CORSOrigins, router),
		ReadTimeout:       cfg.HTTPReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.HTTPWriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Info("Server exiting")
}
