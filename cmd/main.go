package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"petitions-backend/internal/handlers"
	"petitions-backend/internal/logger"
	"petitions-backend/internal/middlewares"
	"petitions-backend/internal/repositories"
	"petitions-backend/internal/services"
	"petitions-backend/internal/storage"
	"petitions-backend/internal/token"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title petitions-backend API
// @version 1.0.0
// @description Service for creating, browsing and signing petitions
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name X-Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, categoryCacheExpSecond,
		kafkaBroker, kafkaTopic,
		storageType, storagePath, s3Bucket, s3Region, awsAccessKey, awsSecretKey,
		tokenSecret, tokenExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, categoryCacheExpSecond,
		kafkaBroker, kafkaTopic,
		storageType, storagePath, s3Bucket, s3Region, awsAccessKey, awsSecretKey,
		tokenSecret, tokenExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, storage, logging, and token
// configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, categoryCacheExpSecond int,
	kafkaBroker, kafkaTopic string,
	storageType, storagePath, s3Bucket, s3Region, awsAccessKey, awsSecretKey string,
	tokenSecret string, tokenExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "petitions")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if categoryCacheExpSecond, err = strconv.Atoi(getEnv("CATEGORY_CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config; an empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "petition-signatures")

	// Photo storage config
	storageType = getEnv("STORAGE_TYPE", "local")
	storagePath = getEnv("STORAGE_PATH", "./storage/photos")
	s3Bucket = getEnv("S3_BUCKET", "")
	s3Region = getEnv("S3_REGION", "us-east-1")
	awsAccessKey = getEnv("AWS_ACCESS_KEY_ID", "")
	awsSecretKey = getEnv("AWS_SECRET_ACCESS_KEY", "")

	// Session token config
	tokenSecret = getEnv("TOKEN_SECRET_KEY", "my_super_secret_key")
	if tokenExpSecond, err = strconv.Atoi(getEnv("TOKEN_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, photo storage, and
// HTTP server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, categoryCacheExpSecond int,
	kafkaBroker, kafkaTopic string,
	storageType, storagePath, s3Bucket, s3Region, awsAccessKey, awsSecretKey string,
	tokenSecret string, tokenExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for signature events
	var kafkaWriter *kafka.Writer
	if kafkaBroker != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		logger.Log.Infof("Kafka writer initialized for topic %s at %s", kafkaTopic, kafkaBroker)
	} else {
		logger.Log.Info("Kafka broker not configured, signature events disabled")
	}

	// Photo storage
	blobs, err := storage.New(storage.Config{
		Type:         storage.Type(storageType),
		LocalPath:    storagePath,
		S3Bucket:     s3Bucket,
		S3Region:     s3Region,
		AWSAccessKey: awsAccessKey,
		AWSSecretKey: awsSecretKey,
	})
	if err != nil {
		logger.Log.Fatal("Photo storage initialization error:", err)
	}
	photos := storage.NewPhotos(blobs)

	// Initialize token service
	tokenSvc := token.New(tokenSecret, time.Duration(tokenExpSecond)*time.Second)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	categoryReadRepo := repositories.NewCategoryReadRepository(db)
	categoryCacheRepo := repositories.NewCategoryCacheRepository(rdb, time.Duration(categoryCacheExpSecond)*time.Second)
	petitionReadRepo := repositories.NewPetitionReadRepository(db)
	petitionWriteRepo := repositories.NewPetitionWriteRepository(db)
	signatureReadRepo := repositories.NewSignatureReadRepository(db)
	signatureWriteRepo := repositories.NewSignatureWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSvc)
	petitionService := services.NewPetitionService(petitionReadRepo, petitionWriteRepo, categoryReadRepo, categoryCacheRepo)
	var signatureService *services.SignatureService
	if kafkaWriter != nil {
		signatureService = services.NewSignatureService(petitionReadRepo, signatureReadRepo, signatureWriteRepo, kafkaWriter)
	} else {
		signatureService = services.NewSignatureService(petitionReadRepo, signatureReadRepo, signatureWriteRepo, nil)
	}
	photoService := services.NewPhotoService(photos, userReadRepo, petitionReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	logoutHandler := handlers.NewLogoutHandler(authService)
	userGetHandler := handlers.NewUserGetHandler(authService)
	userUpdateHandler := handlers.NewUserUpdateHandler(authService)
	userPhotoGetHandler := handlers.NewUserPhotoGetHandler(photoService)
	userPhotoPutHandler := handlers.NewUserPhotoPutHandler(photoService)
	userPhotoDeleteHandler := handlers.NewUserPhotoDeleteHandler(photoService)
	petitionsListHandler := handlers.NewPetitionsListHandler(petitionService)
	petitionGetHandler := handlers.NewPetitionGetHandler(petitionService)
	petitionCreateHandler := handlers.NewPetitionCreateHandler(petitionService)
	petitionUpdateHandler := handlers.NewPetitionUpdateHandler(petitionService)
	petitionDeleteHandler := handlers.NewPetitionDeleteHandler(petitionService)
	petitionPhotoGetHandler := handlers.NewPetitionPhotoGetHandler(photoService)
	petitionPhotoPutHandler := handlers.NewPetitionPhotoPutHandler(photoService)
	categoriesHandler := handlers.NewCategoriesHandler(petitionService)
	signaturesListHandler := handlers.NewSignaturesListHandler(signatureService)
	signHandler := handlers.NewSignHandler(signatureService)
	unsignHandler := handlers.NewUnsignHandler(signatureService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	authMiddleware := middlewares.AuthMiddleware(tokenSvc, authService)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/users/register", registerHandler)
		r.Post("/users/login", loginHandler)
		r.Get("/users/{id}", userGetHandler)
		r.Get("/users/{id}/photo", userPhotoGetHandler)

		r.Get("/petitions", petitionsListHandler)
		r.Get("/petitions/categories", categoriesHandler)
		r.Get("/petitions/{id}", petitionGetHandler)
		r.Get("/petitions/{id}/photo", petitionPhotoGetHandler)
		r.Get("/petitions/{id}/signatures", signaturesListHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(txMiddleware)

			r.Post("/users/logout", logoutHandler)
			r.Patch("/users/{id}", userUpdateHandler)
			r.Put("/users/{id}/photo", userPhotoPutHandler)
			r.Delete("/users/{id}/photo", userPhotoDeleteHandler)

			r.Post("/petitions", petitionCreateHandler)
			r.Patch("/petitions/{id}", petitionUpdateHandler)
			r.Delete("/petitions/{id}", petitionDeleteHandler)
			r.Put("/petitions/{id}/photo", petitionPhotoPutHandler)

			r.Post("/petitions/{id}/signatures", signHandler)
			r.Delete("/petitions/{id}/signatures", unsignHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
