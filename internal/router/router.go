package router

import (
	"time"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/rahat92/postpulse/backend/internal/handlers"
	"github.com/rahat92/postpulse/backend/internal/middleware"
	"github.com/rahat92/postpulse/backend/internal/models"
	"github.com/rahat92/postpulse/backend/internal/recommend"
	"github.com/rahat92/postpulse/backend/internal/repositories"
	"github.com/rahat92/postpulse/backend/pkg/config"
	"github.com/rahat92/postpulse/backend/pkg/metrics"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo, log zerolog.Logger) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.RequestLoggerWithConfig(eMiddleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v eMiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	log.Info().Msg("global middleware configured")
}

// engineStore adapts the post/like/comment/user repositories to the
// recommendation engine's read surface.
type engineStore struct {
	users    repositories.UserRepository
	posts    repositories.PostRepository
	likes    repositories.LikeRepository
	comments repositories.CommentRepository
}

func (s *engineStore) FindUser(id uint) (*models.User, error) {
	return s.users.GetUserByID(id)
}

func (s *engineStore) FindPostsLikedBy(userID uint) ([]models.Post, error) {
	return s.posts.FindPostsLikedBy(userID)
}

func (s *engineStore) FindPostsCommentedBy(userID uint) ([]models.Post, error) {
	return s.posts.FindPostsCommentedBy(userID)
}

func (s *engineStore) FindLikedPostIDs(userID uint) ([]uint, error) {
	return s.likes.GetLikedPostIDs(userID)
}

func (s *engineStore) FindCommentedPostIDs(userID uint) ([]uint, error) {
	return s.comments.GetCommentedPostIDs(userID)
}

func (s *engineStore) FindPostsExcluding(excludedIDs []uint, limit int) ([]models.Post, error) {
	return s.posts.FindPostsExcluding(excludedIDs, limit)
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) error {
	// AutoMigrate PostgreSQL models
	err := db.AutoMigrate(
		&models.User{},
		&models.Tag{},
		&models.Post{},
		&models.Like{},
		&models.Comment{},
	)
	if err != nil {
		return err
	}
	log.Info().Msg("PostgreSQL auto-migrations completed for all models")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	tagRepo := repositories.NewPostgresTagRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)

	// --- Recommendation engine ---
	engine := recommend.NewEngine(&engineStore{
		users:    userRepo,
		posts:    postRepo,
		likes:    likeRepo,
		comments: commentRepo,
	}, recommend.EngineConfig{
		CandidateWindow: cfg.FeedCandidateWindow,
		DefaultLimit:    cfg.FeedDefaultLimit,
		Now:             time.Now,
	})

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Info().Msg("auth routes configured")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo, postRepo)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(postRepo, tagRepo)
	postHandler.RegisterPostRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, postRepo)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentRepo, postRepo)
	commentHandler.RegisterCommentRoutes(api)

	feedHandler := handlers.NewFeedHandler(engine, m)
	feedHandler.RegisterFeedRoutes(api)

	analyticsHandler := handlers.NewAnalyticsHandler(tagRepo)
	analyticsHandler.RegisterAnalyticsRoutes(api)

	log.Info().Msg("all routes configured")
	return nil
}
