package server

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/api"
	"github.com/bobfit/backend/internal/llm"
	"github.com/bobfit/backend/internal/middleware"
	"github.com/bobfit/backend/internal/rank"
	"github.com/bobfit/backend/internal/restriction"
	"github.com/bobfit/backend/internal/router"
	"github.com/bobfit/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// Options carries the dependencies the server wires together.
type Options struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Generator llm.TextGenerator
	JWTSecret string
}

// NewServer creates a new server instance
func NewServer(opts Options) *Server {
	sessions := service.NewSessionService(opts.DB, opts.JWTSecret)
	profiles := service.NewProfileService(opts.DB)
	recipes := service.NewRecipeService(opts.DB, opts.Generator)
	votes := service.NewVoteService(opts.DB)
	rewards := service.NewRewardService(opts.DB)

	expander := restriction.NewExpander(restriction.DefaultTable())
	ranker := rank.New(rank.DefaultTopN)
	planner := service.NewPlannerService(opts.Generator, opts.Redis)
	recommender := service.NewRecommendationService(opts.DB, expander, ranker, planner)

	var limiter *middleware.RateLimiter
	if opts.Redis != nil {
		limiter = middleware.NewRecommendationRateLimiter(opts.Redis)
	}

	engine := router.SetupRouter(
		api.NewProfileHandler(profiles, sessions),
		api.NewRecipeHandler(recipes),
		api.NewRecommendHandler(recommender),
		api.NewVoteHandler(votes),
		api.NewRewardHandler(rewards),
		sessions,
		limiter,
	)

	return &Server{router: engine}
}

// Router exposes the configured engine, used by tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Handler returns the handler chain the server listens with.
func (s *Server) Handler() http.Handler {
	return middleware.ErrorHandler(s.router)
}

// Start runs the server until an interrupt arrives, then shuts down
// gracefully.
func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.Handler(),
	}

	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.http.Shutdown(ctx)
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	if s.http != nil {
		return s.http.Shutdown(ctx)
	}
	return nil
}
