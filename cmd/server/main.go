package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bbdap/backend/internal/api/controller"
	"bbdap/backend/internal/api/repository"
	"bbdap/backend/internal/api/service"
	"bbdap/backend/internal/auth"
	"bbdap/backend/internal/config"
	"bbdap/backend/internal/db"
	"bbdap/backend/internal/logger"
	"bbdap/backend/internal/server"
	"bbdap/backend/internal/telemetry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize telemetry
	shutdown, err := telemetry.InitOtel(cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("failed to initialize telemetry: %v", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			log.Printf("Error shutting down telemetry: %v", err)
		}
	}()

	logger.Init()

	// Initialize SQLite DB
	pool, err := db.Connect(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.InitializeSchema(pool); err != nil {
		log.Fatalf("failed to initialize sqlite schema: %v", err)
	}
	if cfg.SeedDemo {
		if err := db.SeedDemoData(pool); err != nil {
			log.Fatalf("failed to seed demo data: %v", err)
		}
	}

	// Token manager (secret is immutable for the life of the process)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	// Create repositories
	userRepo := repository.NewUserRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	taskRepo := repository.NewTaskRepository(pool)

	// Create services
	userService := service.NewUserService(userRepo, tokens)
	reportService := service.NewReportService(reportRepo)
	taskService := service.NewTaskService(taskRepo)

	// Create controllers
	userController := controller.NewUserController(userService)
	reportController := controller.NewReportController(reportService)
	taskController := controller.NewTaskController(taskService)

	// Create the Gin-based server
	srv := server.NewServer(tokens, userController, reportController, taskController)

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	go func() {
		log.Printf("http server started on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
