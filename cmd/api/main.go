package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	handlerHttp "github.com/mikiasgoitom/Quill/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Quill/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Quill/internal/infrastructure/database"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/logger"
	passwordservice "github.com/mikiasgoitom/Quill/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/Quill/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/store"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Quill/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.Env)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = mongoClient.Disconnect() }()
	db := mongoClient.Database(cfg.MongoDBName)

	indexCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		cancel()
		appLogger.Fatalf("Failed to create indexes: %v", err)
	}
	cancel()

	// Register custom validators
	validator.RegisterCustomValidators()

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL()))
	randomGenerator := randomgenerator.NewRandomGenerator()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()

	mailService, err := external_services.NewMailer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUsername,
		cfg.EmailAppPassword, cfg.EmailFrom, cfg.IsProduction(), appLogger)
	if err != nil {
		appLogger.Fatalf("Failed to configure mail: %v", err)
	}

	// Dependency Injection: Repositories and usecases
	postRepo := mongodb.NewPostRepository(db)
	postUsecase := usecase.NewPostUsecase(postRepo, uuidGenerator, appLogger, appValidator)
	commentUsecase := usecase.NewCommentUsecase(postRepo, uuidGenerator, appLogger)
	categoryUsecase := usecase.NewCategoryUsecase(mongodb.NewCategoryRepository(db), uuidGenerator, appLogger, appValidator)

	principalUsecases := make([]usecasecontract.IPrincipalUseCase, 0, len(entity.Roles))
	var superAdmins *usecase.PrincipalUsecase
	for _, role := range entity.Roles {
		uc := usecase.NewPrincipalUsecase(role, mongodb.NewPrincipalRepositoryForRole(db, role), postRepo,
			hasher, jwtService, mailService, appLogger, cfg, appValidator, uuidGenerator, randomGenerator)
		if role == entity.RoleSuperAdmin {
			superAdmins = uc
		}
		principalUsecases = append(principalUsecases, uc)
	}

	// Optional Dependency Injection: Redis cache
	if cfg.RedisURL != "" {
		if rdb := redisclient.NewRedisFromURL(context.Background(), cfg.RedisURL, appLogger); rdb != nil {
			defer redisclient.Close(rdb)
			listCache := store.NewListCacheStore(rdb)
			postUsecase.SetListCache(listCache)
			commentUsecase.SetListCache(listCache)
			categoryUsecase.SetListCache(listCache)
		}
	}

	if cfg.HasSuperAdminSeed() {
		created, err := superAdmins.Bootstrap(context.Background(), cfg.SuperAdminSeed())
		if err != nil {
			appLogger.Fatalf("Failed to bootstrap super admin: %v", err)
		}
		if created {
			appLogger.Infof("Created the first super admin")
		}
	}

	permissions := entity.DefaultPermissionTable()
	if cfg.ElevateReaders {
		appLogger.Warnf("ELEVATE_READERS is on: readers get admin permissions")
		permissions = permissions.WithElevatedReaders()
	}

	// Initialize Gin router
	router := gin.Default()

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		principalUsecases, postUsecase, commentUsecase, categoryUsecase,
		jwtService, appLogger, permissions,
		handlerHttp.RouterOptions{
			AllowedOrigins:     cfg.Origins(),
			RateLimitPerSecond: cfg.RateLimitPerSecond,
			Cookie: handlerHttp.CookieOptions{
				MaxAge: cfg.CookieMaxAgeSeconds,
				Secure: cfg.CookieSecure,
			},
		},
	)
	appRouter.SetupRoutes(router)

	// Start the server
	appLogger.Infof("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		appLogger.Fatalf("Failed to start server: %v", err)
	}
}
