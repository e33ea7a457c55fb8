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

	"github.com/LarzzCode/LarGarage/config"
	"github.com/LarzzCode/LarGarage/controllers"
	"github.com/LarzzCode/LarGarage/metrics"
	"github.com/LarzzCode/LarGarage/realtime"
	"github.com/LarzzCode/LarGarage/router"
	"github.com/LarzzCode/LarGarage/utils"
)

const shutdownTimeout = 10 * time.Second

func init() {
	utils.InitLogger()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.ErrorLogger.Fatalf("Invalid configuration: %v", err)
	}
	utils.SetLogLevel(cfg.LogLevel)

	utils.SetJWTSecret(cfg.JWTSecret)
	if cfg.UsesDefaultSecret() {
		utils.ErrorLogger.Println("Warning: JWT_SECRET not set, using development secret")
	}

	// Set gin mode
	if cfg.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize DB
	db, err := config.InitDB(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to connect to database: %v", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		utils.ErrorLogger.Fatalf("Failed to AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")

	ctx := context.Background()
	w := controllers.NewWorkshop(db, realtime.NewHub(), cfg)

	created, err := w.Users.EnsureAdmin(ctx, cfg.AdminName, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to seed admin user: %v", err)
	}
	if created {
		utils.InfoLogger.Printf("Default admin created: %s", cfg.AdminEmail)
	}

	metrics.Register()
	if err := w.RefreshBoard(ctx); err != nil {
		utils.ErrorLogger.Printf("Initial board load failed: %v", err)
	}

	monitor, err := w.StartSync(ctx)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to start change monitor: %v", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router.SetupRouter(w),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		utils.InfoLogger.Printf("Listening on port %d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.ErrorLogger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	utils.InfoLogger.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.ErrorLogger.Printf("Server forced to shutdown: %v", err)
	}

	monitor.Stop()
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
