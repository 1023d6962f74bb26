package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ojonugwa/igala-names/backend/config"
	"github.com/ojonugwa/igala-names/backend/internal/api"
	"github.com/ojonugwa/igala-names/backend/internal/catalog"
	"github.com/ojonugwa/igala-names/backend/internal/middleware"
	"github.com/ojonugwa/igala-names/backend/internal/service"
)

// Server wires the catalog, services and HTTP handlers together.
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
	cfg    *config.Config
}

// New builds the full application server. The Redis client and S3 config
// are optional; without Redis the submission rate limiter and stats cache
// are disabled, and without S3 the image upload route is not registered.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	data := catalog.MustLoad()

	authService := service.NewAuthService(db, cfg.JWTSecret)
	roleService := service.NewRoleService(db)
	actionService := service.NewNameActionService(db)
	submissionService := service.NewSubmissionService(db, service.NewEmailService())

	rateLimiter := middleware.NewRateLimiter(redisClient, middleware.RateLimitConfig{
		Window:    time.Hour,
		Limit:     10,
		KeyPrefix: "ratelimit:submissions",
	})

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var mediaService *service.MediaService
	if s3Config != nil {
		mediaService = service.NewMediaService(db, s3Config)
	}

	v1 := router.Group("/api/v1")
	api.NewAuthHandler(authService).RegisterRoutes(v1)
	api.NewNameHandler(data, mediaService).RegisterRoutes(v1)
	api.NewActionHandler(actionService, authService).RegisterRoutes(v1)
	api.NewSubmissionHandler(submissionService, authService, rateLimiter).RegisterRoutes(v1)
	api.NewAdminHandler(db, submissionService, authService, roleService, redisClient, data).RegisterRoutes(v1)
	if mediaService != nil {
		api.NewMediaHandler(mediaService, authService, roleService).RegisterRoutes(v1)
	}

	return &Server{
		router: router,
		db:     db,
		cfg:    cfg,
	}
}

// Router exposes the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called or the listener fails.
func (s *Server) Start() error {
	s.http = &http.Server{
		Addr:    s.cfg.ServerHost + ":" + s.cfg.ServerPort,
		Handler: s.router,
	}
	log.Printf("listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
