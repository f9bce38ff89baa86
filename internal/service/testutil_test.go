package service

import (
	"context"
	"fmt"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/database"
	"github.com/foodgram/backend/internal/models"
)

// setupTestDB opens an isolated in-memory SQLite database with the full
// schema. A single connection keeps every query on the same in-memory
// store.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewSQLite(":memory:")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func createTestIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	ingredient := models.Ingredient{Name: name, Unit: unit}
	require.NoError(t, db.Create(&ingredient).Error)
	return &ingredient
}

func createTestTag(t *testing.T, db *gorm.DB, slug string) *models.Tag {
	t.Helper()
	tag := models.Tag{
		Name:  slug,
		Slug:  slug,
		Color: fmt.Sprintf("#%06x", crc32.ChecksumIEEE([]byte(slug))&0xffffff),
	}
	require.NoError(t, db.Create(&tag).Error)
	return &tag
}

func createTestRecipe(t *testing.T, db *gorm.DB, svc *RecipeService, authorID uint, name string, specs []IngredientSpec, tagIDs []uint) *RecipeDetail {
	t.Helper()
	detail, err := svc.Create(context.Background(), authorID, RecipeInput{
		Name:        name,
		Description: "test recipe",
		CookingTime: 10,
		TagIDs:      tagIDs,
		Ingredients: specs,
	})
	require.NoError(t, err)
	return detail
}
