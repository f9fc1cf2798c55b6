package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weekplanner/config"
	"weekplanner/handler"
	"weekplanner/logger"
	"weekplanner/middleware"
	"weekplanner/storage"
	"weekplanner/usecase"
	"weekplanner/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(
	store storage.Store,
	backups *storage.BackupManager,
) *gin.Engine {
	weekService := usecase.NewWeekService(store)
	taskService := usecase.NewTaskService(store)
	mealService := usecase.NewMealService(store)
	dailyDataService := usecase.NewDailyDataService(store)
	analyticsService := usecase.NewAnalyticsService(store)

	weekHandler := handler.NewWeekHandler(weekService)
	taskHandler := handler.NewTaskHandler(taskService)
	mealHandler := handler.NewMealHandler(mealService)
	dailyDataHandler := handler.NewDailyDataHandler(dailyDataService)
	backupHandler := handler.NewBackupHandler(backups)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.CORSMiddleware())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	{
		weeks := api.Group("/weeks")
		{
			weeks.GET("/current", weekHandler.GetCurrent)
			weeks.POST("/archive", weekHandler.Archive)
			weeks.GET("/archived", weekHandler.GetArchived)
			weeks.PUT("/:weekId/summary", weekHandler.UpdateSummary)
			weeks.GET("/:weekId/stats", weekHandler.GetStats)

			days := weeks.Group("/:weekId/days/:dayIndex")
			{
				days.POST("/tasks", taskHandler.Create)
				days.POST("/meals", mealHandler.Create)
				days.GET("/calories", mealHandler.GetDayCalories)
				days.GET("/daily-data", dailyDataHandler.Get)
				days.PUT("/daily-data", dailyDataHandler.Update)
			}
		}

		tasks := api.Group("/tasks")
		{
			tasks.PUT("/reorder", taskHandler.Reorder)
			tasks.PUT("/:id", taskHandler.Update)
			tasks.POST("/:id/toggle", taskHandler.Toggle)
			tasks.DELETE("/:id", taskHandler.Delete)
		}

		templates := api.Group("/task-templates")
		{
			templates.GET("", taskHandler.ListTemplates)
			templates.POST("", taskHandler.CreateTemplate)
			templates.DELETE("/:id", taskHandler.DeleteTemplate)
		}

		meals := api.Group("/meals")
		{
			meals.PUT("/:id", mealHandler.Update)
			meals.DELETE("/:id", mealHandler.Delete)
		}

		backupRoutes := api.Group("/backups")
		{
			backupRoutes.GET("", backupHandler.List)
			backupRoutes.POST("", backupHandler.Create)
			backupRoutes.POST("/:name/restore", backupHandler.Restore)
		}

		analytics := api.Group("/analytics")
		{
			analytics.GET("/weeks/:weekId", analyticsHandler.WeekReport)
			analytics.GET("/weeks/:weekId/productivity", analyticsHandler.ProductivityScore)
			analytics.GET("/weeks/:weekId/insights", analyticsHandler.Insights)
			analytics.GET("/month", analyticsHandler.MonthReport)
			analytics.GET("/trends", analyticsHandler.CompletionTrends)
		}
	}

	return router
}

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Log)
	utils.InitValidator()

	store := storage.NewFileStore(cfg.DataPath)
	if err := store.Initialize(); err != nil {
		slog.Error("failed to initialize storage", "error", err)
		os.Exit(1)
	}

	backups := storage.NewBackupManager(store, cfg.BackupDir, cfg.MaxBackups)
	if err := backups.Initialize(); err != nil {
		slog.Error("failed to initialize backups", "error", err)
		os.Exit(1)
	}

	// Data that cannot be migrated must not be served.
	runner := storage.NewMigrationRunner(store, backups)
	result, err := runner.Run()
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
	if result.Migrated {
		slog.Info("data migrated", "from", result.From, "to", result.To)
	}

	if _, err := backups.CreateBackup(); err != nil {
		slog.Warn("startup backup failed", "error", err)
	}

	router := setupRouter(store, backups)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Periodic backups run until shutdown.
	stopBackups := make(chan struct{})
	go func() {
		ticker := time.NewTicker(cfg.BackupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if _, err := backups.CreateBackup(); err != nil {
					slog.Warn("scheduled backup failed", "error", err)
				}
			case <-stopBackups:
				return
			}
		}
	}()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	close(stopBackups)
	if _, err := backups.CreateBackup(); err != nil {
		slog.Warn("final backup failed", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
