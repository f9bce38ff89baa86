package database

import (
	"gorm.io/gorm"

	"github.com/foodgram/backend/internal/models"
)

// Migrate brings the schema up to date. All composite unique indexes and
// cascade foreign keys live on the model tags, so auto-migration covers
// both PostgreSQL and SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Tag{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeTag{},
		&models.Favorite{},
		&models.BasketItem{},
		&models.Follow{},
	)
}
