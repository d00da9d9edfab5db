package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobfit/backend/internal/models"
	"github.com/bobfit/backend/internal/testdb"
)

func TestMigrateCreatesSchema(t *testing.T) {
	db := testdb.Open(t)

	for _, table := range []string{"users", "recipes", "votes", "rewards"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestSchemaAcceptsCatalogRows(t *testing.T) {
	db := testdb.Open(t)

	user := models.User{
		Username:              "김다이어트",
		Preferences:           "샐러드, 저칼로리",
		RestrictionsAllergies: models.None,
		RestrictionsOther:     "조리시간 30분 이내",
		Goals:                 "다이어트",
		Budget:                10000,
	}
	require.NoError(t, db.Create(&user).Error)
	assert.NotZero(t, user.UserID)

	recipe := models.Recipe{
		RecipeSNO:       128671,
		Title:           "두부조림",
		Name:            "두부조림",
		IngredientsJSON: `{"두부": "1모", "간장": "2큰술"}`,
		CookingMethod:   "조림",
		TimeCategory:    models.TimeWithin30,
		Servings:        "2인분",
	}
	require.NoError(t, db.Create(&recipe).Error)

	var loaded models.Recipe
	require.NoError(t, db.First(&loaded, `"RCP_SNO" = ?`, uint(128671)).Error)
	assert.Equal(t, "두부조림", loaded.Title)
}
