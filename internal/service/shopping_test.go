package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingListMergesByIngredientIdentity(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")
	flour := createTestIngredient(t, db, "flour", "g")
	milk := createTestIngredient(t, db, "milk", "ml")
	dinner := createTestTag(t, db, "dinner")

	pancakes := createTestRecipe(t, db, recipes, alice.ID, "Pancakes",
		[]IngredientSpec{
			{IngredientID: flour.ID, Amount: 200},
			{IngredientID: milk.ID, Amount: 300},
		},
		[]uint{dinner.ID})
	bread := createTestRecipe(t, db, recipes, alice.ID, "Bread",
		[]IngredientSpec{{IngredientID: flour.ID, Amount: 300}},
		[]uint{dinner.ID})

	for _, r := range []uint{pancakes.Recipe.ID, bread.Recipe.ID} {
		_, err := members.AddToBasket(context.Background(), alice.ID, r)
		require.NoError(t, err)
	}

	items, err := members.ShoppingList(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, ShoppingItem{Name: "flour", Unit: "g", Amount: 500}, items[0])
	assert.Equal(t, ShoppingItem{Name: "milk", Unit: "ml", Amount: 300}, items[1])
}

func TestShoppingListScopedToUser(t *testing.T) {
	db := setupTestDB(t)
	recipes := NewRecipeService(db, RecipeServiceConfig{MinIngredients: 1, MinTags: 1})
	members := NewMembershipService(db)

	alice := createTestUser(t, db, "alice")
	bob := createTestUser(t, db, "bob")
	flour := createTestIngredient(t, db, "flour", "g")
	dinner := createTestTag(t, db, "dinner")

	bread := createTestRecipe(t, db, recipes, alice.ID, "Bread",
		[]IngredientSpec{{IngredientID: flour.ID, Amount: 300}},
		[]uint{dinner.ID})
	_, err := members.AddToBasket(context.Background(), bob.ID, bread.Recipe.ID)
	require.NoError(t, err)

	items, err := members.ShoppingList(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRenderShoppingList(t *testing.T) {
	items := []ShoppingItem{
		{Name: "flour", Unit: "g", Amount: 500},
		{Name: "milk", Unit: "ml", Amount: 300},
	}
	out := RenderShoppingList(items)
	assert.Equal(t, "Shopping list:\nflour - 500, g\nmilk - 300, ml", out)
}

func TestRenderShoppingListEmptyBasket(t *testing.T) {
	assert.Equal(t, "Shopping list:", RenderShoppingList(nil))
}
