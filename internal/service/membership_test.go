package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodgram/backend/internal/models"
)

func TestFavoriteRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	flour := createTestIngredient(t, db, "flour", "g")
	dinner := createTestTag(t, db, "dinner")

	created := createTestRecipe(t, db, recipes, alice.ID, "Bread",
		[]IngredientSpec{{IngredientID: flour.ID, Amount: 100}}, []uint{dinner.ID})

	summary, err := members.AddFavorite(context.Background(), bob.ID, created.Recipe.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Recipe.ID, summary.ID)
	assert.Equal(t, "Bread", summary.Name)

	detail, err := recipes.Get(context.Background(), created.Recipe.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorited)
	assert.False(t, detail.IsInBasket)

	require.NoError(t, members.RemoveFavorite(context.Background(), bob.ID, created.Recipe.ID))

	err = members.RemoveFavorite(context.Background(), bob.ID, created.Recipe.ID)
	assert.ErrorIs(t, err, ErrNotInFavorites)
}

func TestAddFavoriteTwiceConflicts(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")
	flour := createTestIngredient(t, db, "flour", "g")
	dinner := createTestTag(t, db, "dinner")

	created := createTestRecipe(t, db, recipes, alice.ID, "Bread",
		[]IngredientSpec{{IngredientID: flour.ID, Amount: 100}}, []uint{dinner.ID})

	_, err := members.AddFavorite(context.Background(), alice.ID, created.Recipe.ID)
	require.NoError(t, err)

	_, err = members.AddFavorite(context.Background(), alice.ID, created.Recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyFavorited)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBasketMembership(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")
	flour := createTestIngredient(t, db, "flour", "g")
	dinner := createTestTag(t, db, "dinner")

	created := createTestRecipe(t, db, recipes, alice.ID, "Bread",
		[]IngredientSpec{{IngredientID: flour.ID, Amount: 100}}, []uint{dinner.ID})

	_, err := members.AddToBasket(context.Background(), alice.ID, created.Recipe.ID)
	require.NoError(t, err)

	_, err = members.AddToBasket(context.Background(), alice.ID, created.Recipe.ID)
	assert.ErrorIs(t, err, ErrAlreadyInBasket)

	detail, err := recipes.Get(context.Background(), created.Recipe.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsInBasket)
	assert.False(t, detail.IsFavorited)

	require.NoError(t, members.RemoveFromBasket(context.Background(), alice.ID, created.Recipe.ID))
	err = members.RemoveFromBasket(context.Background(), alice.ID, created.Recipe.ID)
	assert.ErrorIs(t, err, ErrNotInBasket)
}

func TestAddMembershipUnknownRecipe(t *testing.T) {
	db := setupTestDB(t)
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")

	_, err := members.AddFavorite(context.Background(), alice.ID, 9999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	_, err = members.AddToBasket(context.Background(), alice.ID, 9999)
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestMembershipsAreIndependentPerUser(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	flour := createTestIngredient(t, db, "flour", "g")
	dinner := createTestTag(t, db, "dinner")

	created := createTestRecipe(t, db, recipes, alice.ID, "Bread",
		[]IngredientSpec{{IngredientID: flour.ID, Amount: 100}}, []uint{dinner.ID})

	_, err := members.AddFavorite(context.Background(), alice.ID, created.Recipe.ID)
	require.NoError(t, err)
	_, err = members.AddFavorite(context.Background(), bob.ID, created.Recipe.ID)
	require.NoError(t, err)

	err = members.RemoveFavorite(context.Background(), bob.ID, created.Recipe.ID)
	require.NoError(t, err)

	detail, err := recipes.Get(context.Background(), created.Recipe.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, detail.IsFavorited)
}
