package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/models"
	"github.com/foodgram/backend/internal/service"
	"github.com/foodgram/backend/internal/testhelpers"
)

func seedRecipe(t *testing.T, db *gorm.DB) (uint, uint) {
	t.Helper()

	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	ingredient := models.Ingredient{Name: "flour", Unit: "g"}
	require.NoError(t, db.Create(&ingredient).Error)

	tag := models.Tag{Name: "Dinner", Slug: "dinner", Color: "#00ff00"}
	require.NoError(t, db.Create(&tag).Error)

	recipes := service.NewRecipeService(db, service.RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	detail, err := recipes.Create(context.Background(), user.ID, service.RecipeInput{
		Name:        "Bread",
		CookingTime: 60,
		TagIDs:      []uint{tag.ID},
		Ingredients: []service.IngredientSpec{{IngredientID: ingredient.ID, Amount: 100}},
	})
	require.NoError(t, err)

	return user.ID, detail.Recipe.ID
}

func TestConcurrentFavoriteAddsExactlyOnce(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	members := service.NewMembershipService(db)

	userID, recipeID := seedRecipe(t, db)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = members.AddFavorite(context.Background(), userID, recipeID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, service.ErrAlreadyFavorited)
	}
	assert.Equal(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestConcurrentFollowAddsExactlyOnce(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	follows := service.NewFollowService(db)

	alice := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "x"}
	bob := models.User{Username: "bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&alice).Error)
	require.NoError(t, db.Create(&bob).Error)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = follows.Follow(context.Background(), alice.ID, bob.ID)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, service.ErrAlreadyFollowing)
	}
	assert.Equal(t, 1, successes)
}

func TestShoppingAggregationOnPostgres(t *testing.T) {
	db := testhelpers.SetupTestDatabase(t)
	members := service.NewMembershipService(db)
	recipes := service.NewRecipeService(db, service.RecipeServiceConfig{MinIngredients: 1, MinTags: 1})

	userID, firstRecipe := seedRecipe(t, db)

	var flour models.Ingredient
	require.NoError(t, db.First(&flour, "name = ?", "flour").Error)
	var tag models.Tag
	require.NoError(t, db.First(&tag, "slug = ?", "dinner").Error)

	second, err := recipes.Create(context.Background(), userID, service.RecipeInput{
		Name:        "Pancakes",
		CookingTime: 20,
		TagIDs:      []uint{tag.ID},
		Ingredients: []service.IngredientSpec{{IngredientID: flour.ID, Amount: 250}},
	})
	require.NoError(t, err)

	for _, id := range []uint{firstRecipe, second.Recipe.ID} {
		_, err := members.AddToBasket(context.Background(), userID, id)
		require.NoError(t, err)
	}

	items, err := members.ShoppingList(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, service.ShoppingItem{Name: "flour", Unit: "g", Amount: 350}, items[0])
}
