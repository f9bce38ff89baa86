package models

// Ingredient is a catalog entry recipes reference by id. Reference data,
// loaded once via cmd/seed_ingredients and never mutated by the API.
type Ingredient struct {
	ID   uint   `gorm:"primarykey" json:"id"`
	Name string `gorm:"size:200;index;not null" json:"name"`
	Unit string `gorm:"size:200;not null" json:"unit"`
}
