package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobfit/backend/internal/models"
	"github.com/bobfit/backend/internal/testdb"
)

func TestOpenSessionAndValidate(t *testing.T) {
	db := testdb.Open(t)
	sessions := NewSessionService(db, "test-secret")

	user := models.User{Username: "김다이어트", Preferences: models.None, RestrictionsAllergies: models.None, RestrictionsOther: models.None, Goals: models.None}
	require.NoError(t, db.Create(&user).Error)

	token, err := sessions.OpenSession(user.UserID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := sessions.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, claims.UserID)
	assert.Equal(t, "김다이어트", claims.Username)
}

func TestOpenSessionUnknownUser(t *testing.T) {
	db := testdb.Open(t)
	sessions := NewSessionService(db, "test-secret")

	_, err := sessions.OpenSession(999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	sessions := NewSessionService(testdb.Open(t), "test-secret")

	_, err := sessions.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	db := testdb.Open(t)

	user := models.User{Username: "박벌크업", Preferences: models.None, RestrictionsAllergies: models.None, RestrictionsOther: models.None, Goals: models.None}
	require.NoError(t, db.Create(&user).Error)

	token, err := NewSessionService(db, "secret-a").OpenSession(user.UserID)
	require.NoError(t, err)

	_, err = NewSessionService(db, "secret-b").ValidateToken(token)
	assert.Error(t, err)
}
