package api

import (
	"github.com/foodgram/backend/internal/models"
	"github.com/foodgram/backend/internal/service"
)

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// IngredientSpecRequest references a catalog ingredient with an amount.
type IngredientSpecRequest struct {
	ID     uint `json:"id"`
	Amount int  `json:"amount"`
}

// RecipeRequest is the recipe create/update payload. The image is either
// a base64 data URI or a previously returned reference.
type RecipeRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	Image       string                  `json:"image"`
	CookingTime int                     `json:"cooking_time"`
	Tags        []uint                  `json:"tags"`
	Ingredients []IngredientSpecRequest `json:"ingredients"`
}

// UserResponse is the public user projection.
type UserResponse struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// RecipeResponse is the full recipe projection.
type RecipeResponse struct {
	ID          uint                     `json:"id"`
	Author      UserResponse             `json:"author"`
	Name        string                   `json:"name"`
	Image       string                   `json:"image"`
	Description string                   `json:"description"`
	Ingredients []service.IngredientLine `json:"ingredients"`
	Tags        []models.Tag             `json:"tags"`
	CookingTime int                      `json:"cooking_time"`
	IsFavorited bool                     `json:"is_favorited"`
	IsInBasket  bool                     `json:"is_in_basket"`
}

// FollowedAuthorResponse is one entry of the follow listing.
type FollowedAuthorResponse struct {
	UserResponse
	Recipes      []service.RecipeSummary `json:"recipes"`
	RecipesCount int64                   `json:"recipes_count"`
}

func newUserResponse(u models.User, isSubscribed bool) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		IsSubscribed: isSubscribed,
	}
}

func newRecipeResponse(d *service.RecipeDetail, authorSubscribed bool) RecipeResponse {
	return RecipeResponse{
		ID:          d.Recipe.ID,
		Author:      newUserResponse(d.Author, authorSubscribed),
		Name:        d.Recipe.Name,
		Image:       d.Recipe.Image,
		Description: d.Recipe.Description,
		Ingredients: d.Ingredients,
		Tags:        d.Tags,
		CookingTime: d.Recipe.CookingTime,
		IsFavorited: d.IsFavorited,
		IsInBasket:  d.IsInBasket,
	}
}

func newFollowedAuthorResponse(a *service.FollowedAuthor) FollowedAuthorResponse {
	return FollowedAuthorResponse{
		UserResponse: newUserResponse(a.User, a.IsSubscribed),
		Recipes:      a.Recipes,
		RecipesCount: a.RecipesCount,
	}
}

func toRecipeInput(req RecipeRequest) service.RecipeInput {
	specs := make([]service.IngredientSpec, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		specs = append(specs, service.IngredientSpec{IngredientID: ing.ID, Amount: ing.Amount})
	}
	return service.RecipeInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		CookingTime: req.CookingTime,
		TagIDs:      req.Tags,
		Ingredients: specs,
	}
}
