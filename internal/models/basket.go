package models

// BasketItem queues a recipe in a user's shopping basket. Same uniqueness
// and cascade rules as Favorite; the shopping-list aggregator joins these
// rows to recipe ingredients.
type BasketItem struct {
	ID       uint   `gorm:"primarykey" json:"id"`
	UserID   uint   `gorm:"not null;uniqueIndex:ux_basket_user_recipe" json:"user_id"`
	User     User   `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	RecipeID uint   `gorm:"not null;uniqueIndex:ux_basket_user_recipe" json:"recipe_id"`
	Recipe   Recipe `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
