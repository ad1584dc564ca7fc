package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"vialidades/internal/adapter/api"
	"vialidades/internal/adapter/api/handler"
	apimiddleware "vialidades/internal/adapter/api/middleware"
	"vialidades/internal/adapter/api/router"
	"vialidades/internal/adapter/repository"
	"vialidades/internal/infrastructure/firebase"
	"vialidades/internal/infrastructure/ratelimit"
	"vialidades/internal/usecase"
	"vialidades/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opt option.ClientOption

	// Service account from environment variable (production) or file
	// path (local development)
	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		opt = option.WithCredentialsJSON([]byte(serviceAccountJSON))
	} else {
		serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")
		if serviceAccountPath == "" {
			serviceAccountPath = "./service-account.json"
		}

		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}

		opt = option.WithCredentialsFile(serviceAccountPath)
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opt)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opt)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	userRepo := repository.NewFirestoreUserRepository(firestoreClient)
	reportRepo := repository.NewFirestoreReportRepository(firestoreClient)
	notificationRepo := repository.NewFirestoreNotificationRepository(firestoreClient)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient, cfg.FirebaseApiKey)

	authUseCase := usecase.NewAuthUseCase(userRepo, firebaseAuthClient)
	reportUseCase := usecase.NewReportUseCase(reportRepo, userRepo)
	moderationUseCase := usecase.NewModerationUseCase(reportRepo, userRepo)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo)

	handler.Setup(authUseCase, reportUseCase, moderationUseCase, notificationUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	moderatorMiddleware := apimiddleware.NewModeratorMiddleware(userRepo)
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, authMiddleware, moderatorMiddleware, rateLimitMiddleware)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
