package service

import (
	"context"

	"github.com/foodgram/backend/internal/models"
	"github.com/foodgram/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, username, email, firstName, lastName, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
	GenerateToken(claims *types.TokenClaims) (string, error)
	Logout(ctx context.Context, token string) error
	GetUserByID(ctx context.Context, userID uint) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
}

// IRecipeService defines the interface for recipe composition and reads
type IRecipeService interface {
	Create(ctx context.Context, authorID uint, in RecipeInput) (*RecipeDetail, error)
	Update(ctx context.Context, recipeID, requesterID uint, in RecipeInput) (*RecipeDetail, error)
	Delete(ctx context.Context, recipeID, requesterID uint) error
	Get(ctx context.Context, recipeID, requesterID uint) (*RecipeDetail, error)
	List(ctx context.Context, f RecipeFilter) ([]RecipeDetail, int64, error)
}

// IMembershipService defines the shared favorite/basket contract plus
// the basket aggregation.
type IMembershipService interface {
	AddFavorite(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uint) error
	AddToBasket(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error)
	RemoveFromBasket(ctx context.Context, userID, recipeID uint) error
	ShoppingList(ctx context.Context, userID uint) ([]ShoppingItem, error)
}

// IFollowService defines the interface for follow operations
type IFollowService interface {
	Follow(ctx context.Context, userID, targetID uint) (*FollowedAuthor, error)
	Unfollow(ctx context.Context, userID, targetID uint) error
	IsSubscribed(ctx context.Context, userID, targetID uint) (bool, error)
	ListFollowing(ctx context.Context, userID uint, recipesLimit int) ([]FollowedAuthor, error)
}

// IImageService defines the interface for image storage
type IImageService interface {
	Store(ctx context.Context, payload string) (string, error)
}
