package models

// Tag is a catalog entry attached to recipes. The slug is the filter key
// used by the recipe listing; name, slug and color are all unique.
type Tag struct {
	ID    uint   `gorm:"primarykey" json:"id"`
	Name  string `gorm:"size:200;uniqueIndex;not null" json:"name"`
	Slug  string `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	Color string `gorm:"size:7;uniqueIndex;not null" json:"color"`
}
