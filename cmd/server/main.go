package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "orghub-backend/internal/api/http"
	"orghub-backend/internal/config"
	"orghub-backend/internal/domain"
	"orghub-backend/internal/events"
	"orghub-backend/internal/logger"
	"orghub-backend/internal/mail"
	"orghub-backend/internal/repository/postgres"
	"orghub-backend/internal/security"
	"orghub-backend/internal/service"
	"orghub-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting OrgHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Storage
	files, err := storage.NewLocalStorage(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
	if err != nil {
		logger.Error("Failed to initialize local storage", "error", err)
		log.Fatalf("Failed to initialize local storage: %v", err)
	}
	logger.Info("Local storage ready", "upload_dir", cfg.Storage.UploadDir)

	// Initialize Mail Queue
	var sender mail.Sender
	if cfg.Mail.SendGridAPIKey != "" {
		sender = mail.NewSendGridSender(cfg.Mail.SendGridAPIKey, cfg.Mail.From, cfg.Mail.FromName)
	} else {
		logger.Warn("No SendGrid API key configured, outbound mail will only be logged")
		sender = &mail.LogSender{}
	}
	queue := mail.NewQueue(sender, cfg.Mail.Workers, cfg.Mail.QueueSize, cfg.Mail.MaxRetries)
	queue.Start(context.Background())

	// Initialize Event Dispatcher
	dispatcher := events.NewDispatcher()
	mail.NewNotifier(queue).Register(dispatcher)

	// Initialize Services
	orgSvc := service.NewOrganizationService(store.OrganizationRepository, files, dispatcher)
	userSvc := service.NewUserService(store.UserRepository)
	requestSvc := service.NewRequestService(store.RequestRepository, store.UserRepository, orgSvc, userSvc, dispatcher)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	appSvc := service.NewApplicationService(store.ApplicationRepository)
	nomSvc := service.NewNomenclatureService(store.NomenclatureRepository)

	// A CUI change invalidates the organization's financial data; the
	// nightly sync picks it up again.
	dispatcher.Subscribe(domain.CUIChanged{}.EventName(), func(ctx context.Context, e domain.Event) {
		changed, ok := e.(domain.CUIChanged)
		if !ok {
			return
		}
		if err := orgSvc.MarkFinancialOutOfSync(ctx, changed.OrganizationID); err != nil {
			logger.Error("Failed to mark financial data out of sync", "org_id", changed.OrganizationID, "error", err)
		}
	})

	// Initialize HTTP handlers
	handlers := httpapi.Handlers{
		Auth:          httpapi.NewAuthHandler(authSvc),
		Requests:      httpapi.NewRequestHandler(requestSvc),
		Organizations: httpapi.NewOrganizationHandler(orgSvc, userSvc),
		Users:         httpapi.NewUserHandler(userSvc),
		Applications:  httpapi.NewApplicationHandler(appSvc),
		Nomenclatures: httpapi.NewNomenclatureHandler(nomSvc),
		Files:         httpapi.NewFileHandler(files, cfg.Storage.MaxFileSize),
	}

	router := httpapi.NewRouter(handlers, tokenManager)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
