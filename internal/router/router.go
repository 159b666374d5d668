package router

import (
	"log"

	"github.com/BUCT-CS2201/HandheldMuseum/internal/handlers"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/middleware"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/models"
	"github.com/BUCT-CS2201/HandheldMuseum/internal/repositories"
	"github.com/BUCT-CS2201/HandheldMuseum/pkg/config"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RateLimiter(eMiddleware.NewRateLimiterMemoryStore(rate.Limit(50))))
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, pgdb *gorm.DB, mgClient *mongo.Client, cfg *config.Config) {
	// AutoMigrate PostgreSQL models
	err := pgdb.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.CommentLike{},
		&models.Like{},
		&models.Favorite{},
		&models.Image{},
		&models.Relic{},
		&models.RelicImage{},
		&models.Museum{},
		&models.MuseumImage{},
		&models.Notice{},
		&models.Moment{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("PostgreSQL auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// Placeholder assets for unreviewed/rejected images
	e.Static("/api/static", cfg.StaticDir)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	subjectRepo := repositories.NewPostgresSubjectRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	favoriteRepo := repositories.NewPostgresFavoriteRepository(pgdb)
	imageRepo := repositories.NewPostgresImageRepository(pgdb)
	relicRepo := repositories.NewPostgresRelicRepository(pgdb)
	museumRepo := repositories.NewPostgresMuseumRepository(pgdb)
	momentRepo := repositories.NewPostgresMomentRepository(pgdb)
	historyRepo := repositories.NewMongoHistoryRepository(mgClient.Database("handheldmuseum"))

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public API routes (identity arrives as request parameters) ---
	api := e.Group("/api/v1")

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)
	log.Println("User routes configured.")

	relicHandler := handlers.NewRelicHandler(relicRepo)
	relicHandler.RegisterRelicRoutes(api)
	log.Println("Relic routes configured.")

	museumHandler := handlers.NewMuseumHandler(museumRepo)
	museumHandler.RegisterMuseumRoutes(api)
	log.Println("Museum routes configured.")

	commentHandler := handlers.NewCommentHandler(commentRepo, subjectRepo, userRepo, imageRepo)
	commentHandler.RegisterCommentRoutes(api)
	log.Println("Comment routes configured.")

	engagementHandler := handlers.NewEngagementHandler(likeRepo, favoriteRepo, subjectRepo)
	engagementHandler.RegisterEngagementRoutes(api)
	log.Println("Engagement routes configured.")

	momentHandler := handlers.NewMomentHandler(momentRepo, userRepo, imageRepo)
	momentHandler.RegisterMomentRoutes(api)
	log.Println("Moment routes configured.")

	imageHandler := handlers.NewImageHandler(imageRepo, userRepo, cfg.MediaDir)
	imageHandler.RegisterImageRoutes(api)
	log.Println("Image routes configured.")

	historyHandler := handlers.NewHistoryHandler(historyRepo, subjectRepo)
	historyHandler.RegisterHistoryRoutes(api)
	log.Println("History routes configured.")

	// --- Admin routes (require JWT with admin role) ---
	admin := e.Group("/api/v1/admin")
	admin.Use(middleware.JWTAuthMiddleware())
	admin.Use(middleware.AdminRequired())

	moderationHandler := handlers.NewModerationHandler(commentRepo, momentRepo, imageRepo)
	moderationHandler.RegisterModerationRoutes(admin)
	log.Println("Moderation routes configured.")

	log.Println("All routes configured.")
}
