package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bobfit/backend/internal/api"
	"github.com/bobfit/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	profileHandler *api.ProfileHandler,
	recipeHandler *api.RecipeHandler,
	recommendHandler *api.RecommendHandler,
	voteHandler *api.VoteHandler,
	rewardHandler *api.RewardHandler,
	validator middleware.TokenValidator,
	recommendLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Profile and session routes
	users := v1.Group("/users")
	{
		users.POST("", profileHandler.Register)
		users.GET("", profileHandler.ListProfiles)
		users.GET("/:id", profileHandler.GetProfile)
	}
	v1.POST("/session", profileHandler.OpenSession)

	// Catalog routes
	recipes := v1.Group("/recipes")
	{
		recipes.GET("", recipeHandler.ListRecipes)
		recipes.GET("/:sno", recipeHandler.GetRecipe)
	}

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		recommend := protected.Group("/recommendations")
		if recommendLimiter != nil {
			recommend.POST("", recommendLimiter.RateLimitMiddleware(), recommendHandler.Recommend)
			recommend.GET("/limit", recommendLimiter.QuotaHandler())
		} else {
			recommend.POST("", recommendHandler.Recommend)
		}

		// Step generation spends a model call, so it sits behind the
		// session token like the other generation surfaces.
		protected.GET("/recipes/:sno/steps", recipeHandler.GetRecipeSteps)
		protected.POST("/recipes/:sno/vote", voteHandler.CastVote)
		protected.GET("/votes", voteHandler.ListVotes)

		rewards := protected.Group("/rewards")
		{
			rewards.GET("", rewardHandler.GetReward)
			rewards.PUT("", rewardHandler.SetReward)
		}
	}

	return router
}
