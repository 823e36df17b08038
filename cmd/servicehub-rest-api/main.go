// cmd/servicehub-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/MGTheTrain/servicehub/internal/api/rest/v1"
	"github.com/MGTheTrain/servicehub/internal/app"
	"github.com/MGTheTrain/servicehub/internal/domain/notifications"
	"github.com/MGTheTrain/servicehub/internal/domain/users"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/connector"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/messaging"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/pdf"
	"github.com/MGTheTrain/servicehub/internal/infrastructure/persistence"
	"github.com/MGTheTrain/servicehub/internal/pkg/config"
	"github.com/MGTheTrain/servicehub/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application dependencies
	deps, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	if err := bootstrapSuperAdmin(ctx, restConfig, deps.services.Auth, log); err != nil {
		return err
	}

	group, groupCtx := errgroup.WithContext(ctx)

	if restConfig.Notifications.Queue == config.QueueKafka && restConfig.Notifications.Kafka.InlineWorker {
		worker := messaging.NewWorker(&restConfig.Notifications.Kafka, deps.senders, log)
		group.Go(func() error {
			return worker.Run(groupCtx)
		})
	}

	group.Go(func() error {
		return startServerWithGracefulShutdown(groupCtx, restConfig, deps.services, log)
	})

	return group.Wait()
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	services *v1.Services
	senders  []notifications.Sender
	notifier notifications.Notifier
}

func (d *appDependencies) close(log logger.Logger) {
	if closer, ok := d.notifier.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Warn("failed to close notifier", "error", err)
		}
	}
	if err := persistence.CloseDB(d.db); err != nil {
		log.Warn("failed to close database", "error", err)
	}
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrateAll(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	repos, err := persistence.NewRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize connectors
	blobConnector, err := connector.NewBlobConnector(ctx, &cfg.BlobConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create blob connector: %w", err)
	}

	verifier, err := connector.NewVerifier(&cfg.Identity, cfg.Environment, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity verifier: %w", err)
	}

	assistant, err := connector.NewAssistant(ctx, &cfg.Assistant, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create audit assistant: %w", err)
	}

	senders := connector.NewSenders(&cfg.Notifications)
	notifier, err := messaging.NewNotifier(&cfg.Notifications, senders, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create notifier: %w", err)
	}

	aesProcessor, err := cryptography.NewAESProcessor(log)
	if err != nil {
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}

	renderer := pdf.NewRenderer()
	log.Info("Connectors initialized successfully", "blob_provider", cfg.BlobConnector.CloudProvider, "queue", cfg.Notifications.Queue)

	// Initialize services
	services := &v1.Services{}

	if services.Auth, err = app.NewAuthService(repos.UserRepo, repos.SessionRepo, &cfg.Auth, log); err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	if services.Registration, err = app.NewRegistrationService(repos.Transactor, repos.UserRepo, repos.DealerRepo, repos.TechnicianRepo, repos.TerritoryRepo, verifier, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create registration service: %w", err)
	}
	if services.Dealers, err = app.NewDealerService(repos.Transactor, repos.DealerRepo, repos.UserRepo, repos.SessionRepo, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create dealer service: %w", err)
	}
	if services.Technicians, err = app.NewTechnicianService(repos.Transactor, repos.TechnicianRepo, repos.DealerRepo, repos.UserRepo, repos.SessionRepo, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create technician service: %w", err)
	}
	if services.Bookings, err = app.NewBookingService(repos.Transactor, repos.BookingRepo, repos.DealerRepo, repos.TechnicianRepo, repos.UserRepo, renderer, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create booking service: %w", err)
	}
	if services.Complaints, err = app.NewComplaintService(repos.ComplaintRepo, repos.BookingRepo, repos.UserRepo, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create complaint service: %w", err)
	}
	if services.Trust, err = app.NewTrustService(repos.Transactor, repos.TrustRepo, repos.DealerRepo, repos.TechnicianRepo, repos.BookingRepo, repos.ComplaintRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create trust service: %w", err)
	}
	if services.Sellers, err = app.NewSellerService(repos.SellerRepo, repos.ProductRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create seller service: %w", err)
	}
	if services.Products, err = app.NewProductService(repos.ProductRepo, repos.SellerRepo, blobConnector, log); err != nil {
		return nil, fmt.Errorf("failed to create product service: %w", err)
	}
	if services.Orders, err = app.NewOrderService(repos.Transactor, repos.OrderRepo, repos.ProductRepo, repos.UserRepo, renderer, notifier, log); err != nil {
		return nil, fmt.Errorf("failed to create order service: %w", err)
	}
	if services.Marketing, err = app.NewContentService(repos.ContentRepo, blobConnector, log); err != nil {
		return nil, fmt.Errorf("failed to create content service: %w", err)
	}
	if services.Territories, err = app.NewTerritoryService(repos.TerritoryRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create territory service: %w", err)
	}
	if services.Documents, err = app.NewDocumentService(repos.Transactor, repos.DocumentRepo, repos.DealerRepo, repos.TechnicianRepo, blobConnector, aesProcessor, &cfg.Documents, log); err != nil {
		return nil, fmt.Errorf("failed to create document service: %w", err)
	}
	if services.Audits, err = app.NewAuditService(repos.AuditRepo, repos.DealerRepo, repos.TechnicianRepo, repos.TrustRepo, repos.BookingRepo, repos.ComplaintRepo, assistant, renderer, log); err != nil {
		return nil, fmt.Errorf("failed to create audit service: %w", err)
	}
	if services.Dashboard, err = app.NewDashboardService(repos.DealerRepo, repos.TechnicianRepo, repos.BookingRepo, repos.ComplaintRepo, repos.OrderRepo, log); err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appDependencies{
		db:       db,
		services: services,
		senders:  senders,
		notifier: notifier,
	}, nil
}

// bootstrapSuperAdmin creates the configured super admin when the database has none
func bootstrapSuperAdmin(ctx context.Context, cfg *config.RestConfig, authService users.AuthService, log logger.Logger) error {
	settings := cfg.Auth.BootstrapAdmin
	if !settings.Enabled() {
		return nil
	}

	user, err := authService.BootstrapSuperAdmin(ctx, &users.CreateAdminInput{
		Name:     settings.Name,
		Email:    settings.Email,
		Phone:    settings.Phone,
		Password: settings.Password,
		Super:    true,
	})
	if err != nil {
		return fmt.Errorf("failed to bootstrap super admin: %w", err)
	}
	if user != nil {
		log.Info("Bootstrapped super admin", "user_id", user.ID)
	}
	return nil
}

// startServerWithGracefulShutdown starts the HTTP server and shuts it down once ctx is done
func startServerWithGracefulShutdown(ctx context.Context, cfg *config.RestConfig, services *v1.Services, log logger.Logger) error {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup router
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(v1.ErrorReporting(log, cfg.IsDevelopment()))
	r.MaxMultipartMemory = cfg.Documents.MaxFileSize()

	// Setup API routes
	v1.SetupRoutes(r, services)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		log.Info("Shutdown requested, initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
