package api

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobfit/backend/internal/models"
)

func TestRegisterProfile(t *testing.T) {
	f := newFixture(t, &cannedGenerator{}, 1)

	w := f.request(t, "POST", "/users", map[string]interface{}{
		"username":               "김다이어트",
		"preferences":            "샐러드",
		"restrictions_allergies": "게, 새우",
		"goals":                  "다이어트",
		"budget":                 10000,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	decode(t, w, &resp)
	assert.NotZero(t, resp.User.UserID)
	assert.Equal(t, "게, 새우", resp.User.RestrictionsAllergies)
	// Omitted fields come back as the none marker.
	assert.Equal(t, models.None, resp.User.RestrictionsOther)
}

func TestRegisterProfileValidation(t *testing.T) {
	f := newFixture(t, &cannedGenerator{}, 1)

	w := f.request(t, "POST", "/users", map[string]interface{}{"preferences": "샐러드"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.request(t, "POST", "/users", map[string]interface{}{"username": "김다이어트", "budget": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProfileEndpoints(t *testing.T) {
	f := newFixture(t, &cannedGenerator{}, 1)
	user := f.seedUser(t, models.User{Username: "이채식", Preferences: models.None, RestrictionsAllergies: models.None, RestrictionsOther: "채식", Goals: models.None})

	w := f.request(t, "GET", "/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Users []models.User `json:"users"`
	}
	decode(t, w, &list)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "이채식", list.Users[0].Username)

	w = f.request(t, "GET", "/users/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var loaded models.User
	decode(t, w, &loaded)
	assert.Equal(t, user.Username, loaded.Username)

	assert.Equal(t, http.StatusNotFound, f.request(t, "GET", "/users/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, f.request(t, "GET", "/users/abc", nil).Code)
}

func TestOpenSessionEndpoint(t *testing.T) {
	f := newFixture(t, &cannedGenerator{}, 1)
	user := f.seedUser(t, models.User{Username: "박벌크업", Preferences: models.None, RestrictionsAllergies: models.None, RestrictionsOther: models.None, Goals: models.None})

	w := f.request(t, "POST", "/session", map[string]uint{"user_id": user.UserID})
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)

	assert.Equal(t, http.StatusNotFound, f.request(t, "POST", "/session", map[string]uint{"user_id": 99}).Code)
	assert.Equal(t, http.StatusBadRequest, f.request(t, "POST", "/session", map[string]string{}).Code)
}
