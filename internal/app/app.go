package app

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"agenthub_backend/internal/auth"
	"agenthub_backend/internal/config"
	"agenthub_backend/internal/events"
	"agenthub_backend/internal/handlers"
	"agenthub_backend/internal/logger"
	"agenthub_backend/internal/middleware"
	"agenthub_backend/internal/models"
	"agenthub_backend/internal/payment"
	"agenthub_backend/internal/repositories"
	"agenthub_backend/internal/routes"
	"agenthub_backend/internal/services"
	"agenthub_backend/internal/storage"
	"agenthub_backend/internal/validator"
	"agenthub_backend/ws"
)

// Run wires the whole application and blocks serving HTTP.
func Run() error {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := seedFirstAdmin(db, cfg); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	engine, err := SetupRouter(cfg, db)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server starting", "addr", addr, "env", cfg.Server.Env)
	return engine.Run(addr)
}

// SetupRouter wires services, handlers and middleware into a gin
// engine. Tests call it against their own database handle.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	hub := ws.NewHub()
	go hub.Run()

	container, err := initializeServices(db, cfg, hub)
	if err != nil {
		return nil, err
	}

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(cfg.CORS.AllowedOrigins),
	)

	appHandlers := handlers.NewAppHandlers(container, validator.New())
	wsHandler := ws.NewHandler(hub)

	routes.RegisterRoutes(engine, appHandlers, wsHandler, cfg)
	return engine, nil
}

func openDatabase(cfg *config.Config) (*gorm.DB, error) {
	// TranslateError turns unique-constraint violations into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
}

// Migrate creates and updates the schema.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults need the extension present.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.AgentProfile{},
		&models.EmployerProfile{},
		&models.Job{},
		&models.Application{},
		&models.Notification{},
		&models.PaymentOrder{},
	)
}

// initializeServices builds repositories, services and the event
// wiring that connects the application workflow to notifications.
func initializeServices(db *gorm.DB, cfg *config.Config, hub *ws.Hub) (*services.ServiceContainer, error) {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)

	store, err := storage.NewStorage(storage.Config{
		Type:     cfg.Storage.Type,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	bus := events.NewBus()
	dispatcher := services.NewNotificationDispatcher(notificationRepo, hub)
	dispatcher.Register(bus)

	gateway := payment.NewRazorpayClient(payment.Config{
		KeyID:     cfg.Payment.KeyID,
		KeySecret: cfg.Payment.KeySecret,
		BaseURL:   cfg.Payment.BaseURL,
	})

	applicationService := services.NewApplicationService(applicationRepo, jobRepo, userRepo, bus)

	return &services.ServiceContainer{
		Auth:         services.NewAuthService(userRepo),
		Profile:      services.NewProfileService(userRepo, profileRepo),
		Job:          services.NewJobService(jobRepo),
		Application:  applicationService,
		Notification: services.NewNotificationService(notificationRepo),
		Payment:      services.NewPaymentService(gateway, paymentRepo, applicationService, cfg.Payment.Currency),
		Upload:       services.NewUploadService(store, cfg.Upload.MaxSize),
	}, nil
}

// seedFirstAdmin creates the configured admin account once.
func seedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.FirstAdminEmail == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	userRepo := repositories.NewUserRepository(db)
	if _, err := userRepo.FindByEmail(cfg.FirstAdminEmail); err == nil {
		return nil
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        cfg.FirstAdminEmail,
		Name:         "Administrator",
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("seeded first admin", "email", cfg.FirstAdminEmail)
	return nil
}
