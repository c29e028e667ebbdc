package db

import "gorm.io/gorm"

// Category groups tags for the submission and filter forms.
type Category struct {
	gorm.Model
	Name string `gorm:"unique;not null"`
	Tags []Tag
}
