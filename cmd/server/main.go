package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ministerios/internal/ministerio/config"
	"ministerios/internal/ministerio/handler"
	"ministerios/internal/ministerio/metrics"
	"ministerios/internal/ministerio/repository"
	"ministerios/internal/ministerio/router"
	"ministerios/internal/ministerio/service"
	"ministerios/internal/ministerio/util"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	// 0. Init Logger
	util.InitLogger()
	logger := util.GetLogger()

	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	util.InitLoggerWithLevel(cfg.LogLevel)
	logger = util.GetLogger()

	// 2. Open the named storage connection
	var repo repository.MinisterioRepository
	var client *mongo.Client

	switch cfg.Connection {
	case config.ConnectionMongo:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI).SetTimeout(cfg.MongoTimeout))
		cancel()
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		repo = repository.NewMongoRepository(client.Database(cfg.DBName), cfg.MinisteriosCollection)
	case config.ConnectionMemory:
		logger.Warn("Using in-memory storage; data is lost on exit")
		repo = repository.NewMemoryRepository()
	}

	// Reachability is reported by /health; startup does not block on it.
	pingCtx, pingCancel := context.WithTimeout(context.Background(), cfg.MongoTimeout)
	if err := repo.Ping(pingCtx); err != nil {
		logger.Warn("Storage ping failed", "connection", cfg.Connection, "error", err)
	}
	pingCancel()

	// 3. Init Layers
	svc := service.NewService(repo)
	h := handler.NewMinisterioHandler(svc)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)

	// 4. Init Echo & Routes
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"request_id", v.RequestID,
			)
			return nil
		},
	}))

	router.RegisterRoutes(e, h, cfg.Connection, reg)

	// 5. Start Server with Graceful Shutdown
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("Starting server", "port", cfg.Port, "connection", cfg.Connection, "collection", cfg.MinisteriosCollection)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("shutting down the server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server Shutdown Failed", "error", err)
	}

	if client != nil {
		if err := client.Disconnect(ctx); err != nil {
			logger.Error("Failed to disconnect DB", "error", err)
		}
	}

	logger.Info("Server exited properly")
}
