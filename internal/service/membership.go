package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/models"
)

// MembershipService implements the shared add/remove semantics of
// favorites and basket items. Both target tables have the same shape, so
// one generic pair of helpers serves both instead of per-table copies.
//
// Uniqueness is enforced by the store: when two adds for the same
// (user, recipe) pair race, one insert loses with a constraint violation
// and is reported as a conflict, never as a silent duplicate. Removal is
// deliberately not idempotent; removing an absent row is an error so
// client bugs surface.
type MembershipService struct {
	db *gorm.DB
}

// NewMembershipService creates a new MembershipService instance
func NewMembershipService(db *gorm.DB) *MembershipService {
	return &MembershipService{db: db}
}

// AddFavorite marks the recipe as favorited by the user.
func (s *MembershipService) AddFavorite(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error) {
	return addMembership(ctx, s.db, recipeID,
		&models.Favorite{UserID: userID, RecipeID: recipeID}, ErrAlreadyFavorited)
}

// RemoveFavorite deletes the favorite mark.
func (s *MembershipService) RemoveFavorite(ctx context.Context, userID, recipeID uint) error {
	return removeMembership[models.Favorite](ctx, s.db, userID, recipeID, ErrNotInFavorites)
}

// AddToBasket queues the recipe in the user's shopping basket.
func (s *MembershipService) AddToBasket(ctx context.Context, userID, recipeID uint) (*RecipeSummary, error) {
	return addMembership(ctx, s.db, recipeID,
		&models.BasketItem{UserID: userID, RecipeID: recipeID}, ErrAlreadyInBasket)
}

// RemoveFromBasket takes the recipe out of the basket.
func (s *MembershipService) RemoveFromBasket(ctx context.Context, userID, recipeID uint) error {
	return removeMembership[models.BasketItem](ctx, s.db, userID, recipeID, ErrNotInBasket)
}

// addMembership inserts row after confirming the recipe exists. The
// caller receives the minimal recipe projection; the join row itself is
// an implementation detail.
func addMembership(ctx context.Context, db *gorm.DB, recipeID uint, row interface{}, errConflict error) (*RecipeSummary, error) {
	var recipe models.Recipe
	if err := db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	if err := db.WithContext(ctx).Create(row).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, errConflict
		}
		return nil, err
	}

	summary := summaryOf(recipe)
	return &summary, nil
}

// removeMembership deletes the (user, recipe) row of the target table,
// failing with errMissing when no such row exists.
func removeMembership[T any](ctx context.Context, db *gorm.DB, userID, recipeID uint, errMissing error) error {
	res := db.WithContext(ctx).Where("user_id = ? AND recipe_id = ?", userID, recipeID).Delete(new(T))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errMissing
	}
	return nil
}
