package service

import (
	"errors"

	"github.com/linkshare/internal/db"
	"gorm.io/gorm"
)

var ErrTagNotFound = errors.New("tag not found")

// TagService wraps tag related queries.
type TagService struct {
	db *gorm.DB
}

// CategoryGroup is one category with its ordered tags, for the submission
// and filter forms.
type CategoryGroup struct {
	ID   uint
	Name string
	Tags []db.Tag
}

// NewTagService creates a TagService instance.
func NewTagService(gdb *gorm.DB) *TagService {
	return &TagService{db: gdb}
}

// List returns all tags ordered by name.
func (s *TagService) List() ([]db.Tag, error) {
	var tags []db.Tag
	if err := s.db.Order("name asc").Order("id asc").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// GroupedByCategory returns every category owning at least one tag, ordered
// by category name, each with its tags ordered by name. Empty categories and
// uncategorized tags are omitted.
func (s *TagService) GroupedByCategory() ([]CategoryGroup, error) {
	var categories []db.Category
	if err := s.db.
		Preload("Tags", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("tags.name asc").Order("tags.id asc")
		}).
		Order("categories.name asc").
		Find(&categories).Error; err != nil {
		return nil, err
	}

	groups := make([]CategoryGroup, 0, len(categories))
	for _, category := range categories {
		if len(category.Tags) == 0 {
			continue
		}
		groups = append(groups, CategoryGroup{
			ID:   category.ID,
			Name: category.Name,
			Tags: category.Tags,
		})
	}
	return groups, nil
}
