package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"gyomutime/internal/adapter/api"
	"gyomutime/internal/adapter/api/handler"
	apimiddleware "gyomutime/internal/adapter/api/middleware"
	"gyomutime/internal/adapter/api/router"
	"gyomutime/internal/adapter/repository"
	"gyomutime/internal/domain/service"
	"gyomutime/internal/infrastructure/email"
	"gyomutime/internal/infrastructure/firebase"
	"gyomutime/internal/infrastructure/optimizer"
	"gyomutime/internal/infrastructure/storage"
	"gyomutime/internal/usecase"
	"gyomutime/pkg/config"
	"gyomutime/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	// Credentials come from the environment in production and from a file
	// in local development.
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		logger.Info("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	} else {
		logger.Info("Using application default credentials")
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewAuthClient(fbAuth)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, cfg.UploadURLTTL, cfg.DownloadURLTTL, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	submissionRepo := repository.NewFirestoreSubmissionRepository(firestoreClient)
	templateRepo := repository.NewFirestoreTemplateRepository(firestoreClient)
	adminRepo := repository.NewFirestoreAdminRepository(firestoreClient)
	electivesRepo := repository.NewFirestoreElectivesRepository(firestoreClient)

	var emailService service.EmailService
	if cfg.SendGridKey != "" {
		emailService = email.NewSendgridService(cfg.SendGridKey, cfg.EmailFrom)
	} else {
		logger.Warn("SENDGRID_API_KEY not set, notifications are logged only")
		emailService = email.NewConsoleService()
	}

	var optimizerClient *optimizer.Client
	if cfg.OptimizerURL != "" {
		optimizerClient = optimizer.NewClient(cfg.OptimizerURL)
	}

	submissionUseCase := usecase.NewSubmissionUseCase(submissionRepo, storageClient, cfg.MaxUploadBytes)
	storageUseCase := usecase.NewStorageUseCase(submissionRepo, storageClient, cfg.MaxUploadBytes, cfg.DownloadURLTTL)
	templateUseCase := usecase.NewTemplateUseCase(templateRepo, storageClient, cfg.MaxUploadBytes, cfg.DownloadURLTTL)
	adminUseCase := usecase.NewAdminUseCase(authClient, adminRepo, cfg.SuperAdminEmail)
	electivesUseCase := usecase.NewElectivesUseCase(electivesRepo)
	notifyUseCase := usecase.NewNotifyUseCase(emailService)

	handler.Setup(
		submissionUseCase,
		storageUseCase,
		templateUseCase,
		adminUseCase,
		electivesUseCase,
		notifyUseCase,
		optimizerClient,
		cfg.Environment,
	)

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(apimiddleware.Secure(cfg.AllowedOrigins))

	rateLimiter := apimiddleware.NewRateLimiter(cfg.RateLimitMax, cfg.RateLimitWindow)
	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	adminMiddleware := apimiddleware.NewAdminMiddleware()

	router.Setup(e, rateLimiter, authMiddleware, adminMiddleware)

	logger.Info("Starting server on port %s (env: %s)", cfg.ServerPort, cfg.Environment)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
