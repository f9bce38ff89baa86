package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/models"
)

// IngredientLine is one ingredient of a composed recipe, flattened with
// its catalog name and unit.
type IngredientLine struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Unit   string `json:"unit"`
	Amount int    `json:"amount"`
}

// RecipeDetail is a fully composed recipe as the read paths return it.
// The handler layer maps it onto the wire shape.
type RecipeDetail struct {
	Recipe      models.Recipe
	Author      models.User
	Tags        []models.Tag
	Ingredients []IngredientLine
	IsFavorited bool
	IsInBasket  bool
}

// RecipeSummary is the minimal recipe projection used by membership
// results and follow listings.
type RecipeSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	CookingTime int    `json:"cooking_time"`
	Image       string `json:"image"`
}

func summaryOf(r models.Recipe) RecipeSummary {
	return RecipeSummary{ID: r.ID, Name: r.Name, CookingTime: r.CookingTime, Image: r.Image}
}

// details resolves the composition of a batch of recipes with a fixed
// number of queries regardless of batch size.
func (s *RecipeService) details(ctx context.Context, recipes []models.Recipe, requesterID uint) ([]RecipeDetail, error) {
	if len(recipes) == 0 {
		return []RecipeDetail{}, nil
	}

	recipeIDs := make([]uint, 0, len(recipes))
	authorIDs := make([]uint, 0, len(recipes))
	for _, r := range recipes {
		recipeIDs = append(recipeIDs, r.ID)
		authorIDs = append(authorIDs, r.AuthorID)
	}

	db := s.db.WithContext(ctx)

	var authors []models.User
	if err := db.Where("id IN ?", authorIDs).Find(&authors).Error; err != nil {
		return nil, err
	}
	authorByID := make(map[uint]models.User, len(authors))
	for _, a := range authors {
		authorByID[a.ID] = a
	}

	var tagRows []models.RecipeTag
	if err := db.Preload("Tag").Where("recipe_id IN ?", recipeIDs).Find(&tagRows).Error; err != nil {
		return nil, err
	}
	tagsByRecipe := make(map[uint][]models.Tag)
	for _, row := range tagRows {
		tagsByRecipe[row.RecipeID] = append(tagsByRecipe[row.RecipeID], row.Tag)
	}

	var lineRows []models.RecipeIngredient
	if err := db.Preload("Ingredient").Where("recipe_id IN ?", recipeIDs).
		Order("id").Find(&lineRows).Error; err != nil {
		return nil, err
	}
	linesByRecipe := make(map[uint][]IngredientLine)
	for _, row := range lineRows {
		linesByRecipe[row.RecipeID] = append(linesByRecipe[row.RecipeID], IngredientLine{
			ID:     row.IngredientID,
			Name:   row.Ingredient.Name,
			Unit:   row.Ingredient.Unit,
			Amount: row.Amount,
		})
	}

	favorited := make(map[uint]bool)
	inBasket := make(map[uint]bool)
	if requesterID != 0 {
		if err := membershipSet(db, &models.Favorite{}, requesterID, recipeIDs, favorited); err != nil {
			return nil, err
		}
		if err := membershipSet(db, &models.BasketItem{}, requesterID, recipeIDs, inBasket); err != nil {
			return nil, err
		}
	}

	details := make([]RecipeDetail, 0, len(recipes))
	for _, r := range recipes {
		tags := tagsByRecipe[r.ID]
		if tags == nil {
			tags = []models.Tag{}
		}
		lines := linesByRecipe[r.ID]
		if lines == nil {
			lines = []IngredientLine{}
		}
		details = append(details, RecipeDetail{
			Recipe:      r,
			Author:      authorByID[r.AuthorID],
			Tags:        tags,
			Ingredients: lines,
			IsFavorited: favorited[r.ID],
			IsInBasket:  inBasket[r.ID],
		})
	}
	return details, nil
}

// membershipSet marks which of recipeIDs appear in the given join table
// for userID.
func membershipSet(db *gorm.DB, model interface{}, userID uint, recipeIDs []uint, out map[uint]bool) error {
	var ids []uint
	if err := db.Model(model).Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error; err != nil {
		return err
	}
	for _, id := range ids {
		out[id] = true
	}
	return nil
}
