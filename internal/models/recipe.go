package models

import (
	"time"
)

// Recipe is owned by exactly one author. Its ingredient composition and
// tag set are materialized through RecipeIngredient and RecipeTag rows,
// never stored on the recipe itself. Deleting a recipe cascades to both
// join tables and to any Favorite/BasketItem that references it.
type Recipe struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `gorm:"size:200;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Image       string    `gorm:"size:255" json:"image"`
	CookingTime int       `gorm:"not null;check:cooking_time >= 1" json:"cooking_time"`
	AuthorID    uint      `gorm:"not null;index" json:"author_id"`
	Author      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

// RecipeIngredient associates an ingredient with a recipe and the amount
// the recipe needs. An ingredient may appear at most once per recipe.
type RecipeIngredient struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	IngredientID uint       `gorm:"not null;uniqueIndex:ux_recipe_ingredient" json:"ingredient_id"`
	Ingredient   Ingredient `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RecipeID     uint       `gorm:"not null;uniqueIndex:ux_recipe_ingredient" json:"recipe_id"`
	Recipe       Recipe     `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Amount       int        `gorm:"not null;check:amount >= 1" json:"amount"`
}

// RecipeTag attaches a tag to a recipe, at most once per pair.
type RecipeTag struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	TagID    uint   `gorm:"not null;uniqueIndex:ux_recipe_tag" json:"tag_id"`
	Tag      Tag    `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RecipeID uint   `gorm:"not null;uniqueIndex:ux_recipe_tag" json:"recipe_id"`
	Recipe   Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
