package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/foodgram/backend/internal/models"
)

// ShoppingItem is one aggregated line of a shopping list: the total
// amount of an ingredient across every recipe in the basket.
type ShoppingItem struct {
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Amount int    `json:"amount"`
}

// shoppingListHeader opens the rendered report.
const shoppingListHeader = "Shopping list:"

// ShoppingList aggregates the user's basket into one line per ingredient
// identity (name, unit), summing amounts across recipes. Two recipes
// needing "flour, 200 g" and "flour, 300 g" collapse into a single
// "flour, 500 g" item. Items come back sorted by ingredient name.
func (s *MembershipService) ShoppingList(ctx context.Context, userID uint) ([]ShoppingItem, error) {
	var items []ShoppingItem
	err := s.db.WithContext(ctx).Model(&models.RecipeIngredient{}).
		Select("ingredients.name AS name, ingredients.unit AS unit, SUM(recipe_ingredients.amount) AS amount").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Joins("JOIN basket_items ON basket_items.recipe_id = recipe_ingredients.recipe_id").
		Where("basket_items.user_id = ?", userID).
		Group("ingredients.name, ingredients.unit").
		Order("ingredients.name").
		Scan(&items).Error
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []ShoppingItem{}
	}
	return items, nil
}

// RenderShoppingList formats aggregated items as the downloadable plain
// text report: a header line, then one line per item. An empty basket
// yields just the header.
func RenderShoppingList(items []ShoppingItem) string {
	var b strings.Builder
	b.WriteString(shoppingListHeader)
	for _, item := range items {
		fmt.Fprintf(&b, "\n%s - %d, %s", item.Name, item.Amount, item.Unit)
	}
	return b.String()
}
