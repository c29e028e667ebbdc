package db

import "gorm.io/gorm"

// Post is a shared bookmark: a unique URL with its resolved page title.
type Post struct {
	gorm.Model
	URL       string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	IsVisible bool   `gorm:"not null;default:true"`
	Tags      []Tag  `gorm:"many2many:post_tags;"`

	// Aggregates filled by listing queries, never persisted.
	LikesCount int64 `gorm:"->;-:migration"`
	Liked      bool  `gorm:"->;-:migration"`
	Favorited  bool  `gorm:"->;-:migration"`
}
