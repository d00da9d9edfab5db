package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/bobfit/backend/internal/models"
	"github.com/bobfit/backend/internal/rank"
	"github.com/bobfit/backend/internal/restriction"
	"github.com/bobfit/backend/internal/service"
	"github.com/bobfit/backend/internal/testdb"
)

// fakeAuth stands in for the session middleware, binding every request
// to the given profile.
func fakeAuth(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type cannedGenerator struct {
	text string
	err  error
}

func (g *cannedGenerator) GenerateText(context.Context, string) (string, error) {
	return g.text, g.err
}

func (g *cannedGenerator) Close() error { return nil }

type fixture struct {
	db     *gorm.DB
	engine *gin.Engine
}

func newFixture(t *testing.T, generator *cannedGenerator, userID uint) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testdb.Open(t)
	profiles := service.NewProfileService(db)
	sessions := service.NewSessionService(db, "test-secret")
	recipes := service.NewRecipeService(db, generator)
	votes := service.NewVoteService(db)
	rewards := service.NewRewardService(db)
	planner := service.NewPlannerService(generator, nil)
	recommender := service.NewRecommendationService(
		db,
		restriction.NewExpander(restriction.DefaultTable()),
		rank.New(rank.DefaultTopN),
		planner,
	)

	profileHandler := NewProfileHandler(profiles, sessions)
	recipeHandler := NewRecipeHandler(recipes)
	recommendHandler := NewRecommendHandler(recommender)
	voteHandler := NewVoteHandler(votes)
	rewardHandler := NewRewardHandler(rewards)

	engine := gin.New()
	engine.POST("/users", profileHandler.Register)
	engine.GET("/users", profileHandler.ListProfiles)
	engine.GET("/users/:id", profileHandler.GetProfile)
	engine.POST("/session", profileHandler.OpenSession)
	engine.GET("/recipes", recipeHandler.ListRecipes)
	engine.GET("/recipes/:sno", recipeHandler.GetRecipe)

	authed := engine.Group("", fakeAuth(userID))
	authed.GET("/recipes/:sno/steps", recipeHandler.GetRecipeSteps)
	authed.POST("/recommendations", recommendHandler.Recommend)
	authed.POST("/recipes/:sno/vote", voteHandler.CastVote)
	authed.GET("/votes", voteHandler.ListVotes)
	authed.GET("/rewards", rewardHandler.GetReward)
	authed.PUT("/rewards", rewardHandler.SetReward)

	return &fixture{db: db, engine: engine}
}

func (f *fixture) request(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func (f *fixture) seedUser(t *testing.T, user models.User) models.User {
	t.Helper()
	require.NoError(t, f.db.Create(&user).Error)
	return user
}

func (f *fixture) seedRecipe(t *testing.T, recipe models.Recipe) models.Recipe {
	t.Helper()
	require.NoError(t, f.db.Create(&recipe).Error)
	return recipe
}

func decode(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
