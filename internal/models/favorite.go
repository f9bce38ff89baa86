package models

// Favorite marks a recipe as bookmarked by a user. The (user, recipe)
// pair is unique at the storage layer so concurrent adds cannot produce
// duplicates; the loser of the race gets a constraint violation.
type Favorite struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex:ux_favorite_user_recipe" json:"user_id"`
	User     User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RecipeID uint   `gorm:"not null;uniqueIndex:ux_favorite_user_recipe" json:"recipe_id"`
	Recipe   Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
