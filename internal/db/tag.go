package db

import "gorm.io/gorm"

// Tag is a label users attach to posts, optionally grouped under a category.
type Tag struct {
	gorm.Model
	Name       string `gorm:"unique;not null"`
	CategoryID *uint
	Category   *Category
	Posts      []Post `gorm:"many2many:post_tags;"`
}
