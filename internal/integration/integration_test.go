// Package integration exercises the full HTTP surface against a real
// PostgreSQL instance. These tests need Docker; run with -short to
// skip them.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobfit/backend/internal/models"
	"github.com/bobfit/backend/internal/server"
	"github.com/bobfit/backend/internal/testdb"
)

type cannedGenerator struct {
	text  string
	calls int
}

func (g *cannedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	g.calls++
	return g.text, nil
}

func (g *cannedGenerator) Close() error { return nil }

func catalog() []models.Recipe {
	return []models.Recipe{
		{RecipeSNO: 101, Title: "두부조림", Name: "두부조림", IngredientsJSON: `{"두부": "1모", "간장": "2큰술", "대파": "1대"}`, CookingMethod: "조림", TimeCategory: models.TimeWithin30, Servings: "2인분"},
		{RecipeSNO: 102, Title: "꽃게탕", Name: "꽃게탕", IngredientsJSON: `{"꽃게": "2마리", "무": "반개"}`, CookingMethod: "끓이기", TimeCategory: models.TimeWithin60, Servings: "2인분"},
		{RecipeSNO: 103, Title: "감자샐러드", Name: "감자샐러드", IngredientsJSON: `{"감자": "3개", "마요네즈": "2큰술"}`, CookingMethod: "무침", TimeCategory: models.TimeWithin15, Servings: "2인분"},
	}
}

func TestRecommendationFlowAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	td := testdb.SetupPostgres(t)
	require.NoError(t, td.DB.Create(catalog()).Error)

	generator := &cannedGenerator{text: "1. [두부조림]: (1인분 약 250kcal) 담백한 단백질 위주 식단"}
	srv := server.NewServer(server.Options{
		DB:        td.DB,
		Generator: generator,
		JWTSecret: "integration-secret",
	})
	router := srv.Router()

	do := func(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
		t.Helper()
		var body bytes.Buffer
		if payload != nil {
			require.NoError(t, json.NewEncoder(&body).Encode(payload))
		}
		req := httptest.NewRequest(method, path, &body)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	// Register a profile with a crab allergy.
	w := do("POST", "/api/v1/users", "", map[string]interface{}{
		"username":               "김다이어트",
		"preferences":            "한식, 채소",
		"restrictions_allergies": "게",
		"goals":                  "다이어트",
		"budget":                 15000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		User models.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = do("POST", "/api/v1/session", "", map[string]uint{"user_id": created.User.UserID})
	require.Equal(t, http.StatusOK, w.Code)
	var session struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))

	// Title search goes through the quoted catalog columns, which only
	// PostgreSQL treats case-sensitively.
	w = do("GET", "/api/v1/recipes?q=두부", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Recipes []models.Recipe `json:"recipes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed.Recipes, 1)
	assert.Equal(t, uint(101), listed.Recipes[0].RecipeSNO)

	w = do("POST", "/api/v1/recommendations", session.Token, map[string]string{"mood": "피곤함"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rec struct {
		PlanText   string          `json:"plan_text"`
		Candidates []models.Recipe `json:"candidates"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
	assert.Equal(t, generator.text, rec.PlanText)
	assert.Equal(t, 1, generator.calls)
	for _, candidate := range rec.Candidates {
		assert.NotEqual(t, uint(102), candidate.RecipeSNO, "crab recipe must be filtered out")
	}

	// Vote on a recommended recipe, then re-vote; the second write
	// must replace the first row.
	for _, voteType := range []string{models.VoteLike, models.VoteDislike} {
		w = do("POST", "/api/v1/recipes/101/vote", session.Token, map[string]string{"vote_type": voteType})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}
	var voteCount int64
	require.NoError(t, td.DB.Model(&models.Vote{}).Where("user_id = ?", created.User.UserID).Count(&voteCount).Error)
	assert.Equal(t, int64(1), voteCount)

	w = do("PUT", "/api/v1/rewards", session.Token, map[string]int{"checked_count": models.RewardDays})
	require.Equal(t, http.StatusOK, w.Code)
	var reward struct {
		Reward models.Reward `json:"reward"`
		Earned bool          `json:"earned"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reward))
	assert.True(t, reward.Earned)
	assert.Equal(t, models.RewardDays, reward.Reward.CheckedCount)
}

func TestCatalogUpsertAgainstPostgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	td := testdb.SetupPostgres(t)
	require.NoError(t, td.DB.Create(catalog()).Error)

	// Re-ingesting the same serial number must update in place.
	updated := catalog()[0]
	updated.Title = "매콤 두부조림"
	require.NoError(t, td.DB.Save(&updated).Error)

	var stored models.Recipe
	require.NoError(t, td.DB.First(&stored, `"RCP_SNO" = ?`, 101).Error)
	assert.Equal(t, "매콤 두부조림", stored.Title)

	var count int64
	require.NoError(t, td.DB.Model(&models.Recipe{}).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}
