package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	billingapp "github.com/atelier/backend/internal/application/billing"
	bookingapp "github.com/atelier/backend/internal/application/booking"
	clientapp "github.com/atelier/backend/internal/application/client"
	galleryapp "github.com/atelier/backend/internal/application/gallery"
	measurementapp "github.com/atelier/backend/internal/application/measurement"
	orderapp "github.com/atelier/backend/internal/application/order"
	settingsapp "github.com/atelier/backend/internal/application/settings"
	"github.com/atelier/backend/internal/infrastructure/config"
	"github.com/atelier/backend/internal/infrastructure/logger"
	"github.com/atelier/backend/internal/infrastructure/persistence/memory"
	settingsstore "github.com/atelier/backend/internal/infrastructure/settings"
	"github.com/atelier/backend/internal/interfaces/http/handler"
	"github.com/atelier/backend/internal/interfaces/http/middleware"
	"github.com/atelier/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting atelier backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Repositories
	clientRepo := memory.NewClientRepository()
	orderRepo := memory.NewOrderRepository()
	bookingRepo := memory.NewBookingRepository()
	templateRepo := memory.NewTemplateRepository()
	measurementRepo := memory.NewMeasurementRepository()
	galleryRepo := memory.NewGalleryRepository()
	invoiceRepo := memory.NewInvoiceRepository()
	paymentRepo := memory.NewPaymentRepository()
	settingsStore := settingsstore.NewFileStore(cfg.Settings.FilePath, log)

	// Application services
	clientService := clientapp.NewService(clientRepo, log)
	orderService := orderapp.NewService(orderRepo, clientRepo, log)
	orderProvider := orderapp.NewProvider(orderRepo)
	bookingService := bookingapp.NewService(bookingRepo, clientRepo, orderRepo, log)
	templateService := measurementapp.NewTemplateService(templateRepo, log)
	measurementService := measurementapp.NewService(measurementRepo, orderRepo, log)
	galleryService := galleryapp.NewService(galleryRepo, clientRepo, orderRepo, log)
	reconciler := billingapp.NewReconciler(invoiceRepo, paymentRepo, log)
	invoiceService := billingapp.NewInvoiceService(invoiceRepo, paymentRepo, orderProvider, reconciler, log)
	paymentService := billingapp.NewPaymentService(paymentRepo, invoiceRepo, reconciler, log)
	settingsService := settingsapp.NewService(settingsStore, log)

	// HTTP engine and middleware. Requests are serialized because the
	// in-memory stores are not safe for concurrent use.
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.Serialize(),
	)

	// Routes
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Register(handler.NewSystemHandler(cfg.App.Name)).
		Register(handler.NewClientHandler(clientService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewBookingHandler(bookingService)).
		Register(handler.NewMeasurementHandler(templateService, measurementService)).
		Register(handler.NewGalleryHandler(galleryService)).
		Register(handler.NewInvoiceHandler(invoiceService)).
		Register(handler.NewPaymentHandler(paymentService)).
		Register(handler.NewSettingsHandler(settingsService))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
