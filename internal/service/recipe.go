package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/models"
)

// IngredientSpec is one submitted ingredient reference with its amount.
type IngredientSpec struct {
	IngredientID uint
	Amount       int
}

// RecipeInput carries the full composition of a recipe for create and
// update. Update is replace-all: the submitted tag and ingredient sets
// fully supersede whatever the recipe had before.
type RecipeInput struct {
	Name        string
	Description string
	Image       string
	CookingTime int
	TagIDs      []uint
	Ingredients []IngredientSpec
}

// RecipeServiceConfig holds composition policy knobs. Zero values accept
// empty tag and ingredient sets.
type RecipeServiceConfig struct {
	MinIngredients int
	MinTags        int
}

// RecipeService owns recipe composition and the recipe read paths.
type RecipeService struct {
	db  *gorm.DB
	cfg RecipeServiceConfig
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB, cfg RecipeServiceConfig) *RecipeService {
	return &RecipeService{db: db, cfg: cfg}
}

// validateInput runs the pre-transaction checks. Nothing is written when
// any of them fails.
func (s *RecipeService) validateInput(ctx context.Context, in *RecipeInput) error {
	if in.CookingTime < 1 {
		return ErrInvalidCookingTime
	}
	if len(in.Ingredients) < s.cfg.MinIngredients {
		return ErrNoIngredients
	}
	if len(in.TagIDs) < s.cfg.MinTags {
		return ErrNoTags
	}

	seen := make(map[uint]bool, len(in.Ingredients))
	ids := make([]uint, 0, len(in.Ingredients))
	for _, spec := range in.Ingredients {
		if spec.Amount < 1 {
			return ErrInvalidAmount
		}
		if seen[spec.IngredientID] {
			return ErrDuplicateIngredient
		}
		seen[spec.IngredientID] = true
		ids = append(ids, spec.IngredientID)
	}

	if len(ids) > 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Ingredient{}).
			Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return ErrIngredientNotFound
		}
	}

	if len(in.TagIDs) > 0 {
		var count int64
		if err := s.db.WithContext(ctx).Model(&models.Tag{}).
			Where("id IN ?", in.TagIDs).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(in.TagIDs)) {
			return ErrTagNotFound
		}
	}

	return nil
}

// composeLinks writes the join rows for a recipe inside tx. Ingredient
// lines go in as a single bulk insert.
func composeLinks(tx *gorm.DB, recipeID uint, in *RecipeInput) error {
	if len(in.TagIDs) > 0 {
		tagRows := make([]models.RecipeTag, 0, len(in.TagIDs))
		for _, tagID := range in.TagIDs {
			tagRows = append(tagRows, models.RecipeTag{TagID: tagID, RecipeID: recipeID})
		}
		if err := tx.Create(&tagRows).Error; err != nil {
			return err
		}
	}

	if len(in.Ingredients) > 0 {
		lines := make([]models.RecipeIngredient, 0, len(in.Ingredients))
		for _, spec := range in.Ingredients {
			lines = append(lines, models.RecipeIngredient{
				IngredientID: spec.IngredientID,
				RecipeID:     recipeID,
				Amount:       spec.Amount,
			})
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
	}

	return nil
}

// Create validates the payload and persists the recipe together with its
// tag links and ingredient lines in one transaction, so no partially
// composed recipe is ever observable.
func (s *RecipeService) Create(ctx context.Context, authorID uint, in RecipeInput) (*RecipeDetail, error) {
	if err := s.validateInput(ctx, &in); err != nil {
		return nil, err
	}

	recipe := models.Recipe{
		Name:        in.Name,
		Description: in.Description,
		Image:       in.Image,
		CookingTime: in.CookingTime,
		AuthorID:    authorID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		return composeLinks(tx, recipe.ID, &in)
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, recipe.ID, authorID)
}

// Update re-runs the create validation, then replaces the recipe's
// composition: all existing tag links and ingredient lines are deleted
// and rebuilt from the payload, and the scalar fields are updated, all in
// one transaction. Submitting a partial ingredient list drops the
// omitted ingredients.
func (s *RecipeService) Update(ctx context.Context, recipeID, requesterID uint, in RecipeInput) (*RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	if recipe.AuthorID != requesterID {
		return nil, ErrNotRecipeAuthor
	}

	if err := s.validateInput(ctx, &in); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := composeLinks(tx, recipeID, &in); err != nil {
			return err
		}

		updates := map[string]interface{}{
			"name":         in.Name,
			"description":  in.Description,
			"cooking_time": in.CookingTime,
		}
		if in.Image != "" {
			updates["image"] = in.Image
		}
		return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.Get(ctx, recipeID, requesterID)
}

// Delete removes a recipe; join rows, favorites and basket items follow
// via the cascade constraints.
func (s *RecipeService) Delete(ctx context.Context, recipeID, requesterID uint) error {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecipeNotFound
		}
		return err
	}
	if recipe.AuthorID != requesterID {
		return ErrNotRecipeAuthor
	}
	return s.db.WithContext(ctx).Delete(&models.Recipe{}, recipeID).Error
}

// Get retrieves one fully composed recipe. requesterID is zero for
// anonymous callers, which pins is_favorited and is_in_basket to false.
func (s *RecipeService) Get(ctx context.Context, recipeID, requesterID uint) (*RecipeDetail, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}

	details, err := s.details(ctx, []models.Recipe{recipe}, requesterID)
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// RecipeFilter narrows the recipe listing. Zero values disable a filter.
type RecipeFilter struct {
	TagSlugs    []string
	AuthorID    uint
	Favorited   bool
	InBasket    bool
	RequesterID uint
	Page        int
	PageSize    int
}

// List returns recipes newest first, filtered and paginated, plus the
// total match count before pagination.
func (s *RecipeService) List(ctx context.Context, f RecipeFilter) ([]RecipeDetail, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Recipe{})

	if len(f.TagSlugs) > 0 {
		// A membership subquery instead of a join keeps Count and
		// pagination valid when a recipe matches several slugs.
		tagged := s.db.Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", f.TagSlugs)
		query = query.Where("recipes.id IN (?)", tagged)
	}
	if f.AuthorID != 0 {
		query = query.Where("recipes.author_id = ?", f.AuthorID)
	}
	if f.Favorited && f.RequesterID != 0 {
		query = query.
			Joins("JOIN favorites ON favorites.recipe_id = recipes.id").
			Where("favorites.user_id = ?", f.RequesterID)
	}
	if f.InBasket && f.RequesterID != 0 {
		query = query.
			Joins("JOIN basket_items ON basket_items.recipe_id = recipes.id").
			Where("basket_items.user_id = ?", f.RequesterID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("recipes.created_at DESC, recipes.id DESC")
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * f.PageSize).Limit(f.PageSize)
	}

	var recipes []models.Recipe
	if err := query.Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	details, err := s.details(ctx, recipes, f.RequesterID)
	if err != nil {
		return nil, 0, err
	}
	return details, total, nil
}
