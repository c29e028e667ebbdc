package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle for the application.
var DB *gorm.DB

// Init opens the sqlite database, migrates the schema and seeds the initial
// tag set. An empty databasePath falls back to linkshare.db.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "linkshare.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	if err = DB.AutoMigrate(
		&User{},
		&Category{},
		&Tag{},
		&Post{},
		&Like{},
		&Favorite{},
	); err != nil {
		return err
	}

	// The visibility column was added after the first schema version; rows
	// written before it carry NULL instead of the column default.
	if err := DB.Model(&Post{}).
		Where("is_visible IS NULL").
		Update("is_visible", true).Error; err != nil {
		return err
	}

	return SeedTags(DB)
}

// SeedTags inserts the default categories and tags on an empty database.
func SeedTags(gdb *gorm.DB) error {
	var count int64
	if err := gdb.Model(&Tag{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := map[string][]string{
		"Writing":     {"Brainstorming", "Summarization", "Translation", "Proofreading"},
		"Development": {"Code Generation", "Debugging"},
	}

	return gdb.Transaction(func(tx *gorm.DB) error {
		for _, name := range []string{"Writing", "Development"} {
			category := Category{Name: name}
			if err := tx.Where("name = ?", name).FirstOrCreate(&category).Error; err != nil {
				return err
			}
			for _, tagName := range seed[name] {
				tag := Tag{Name: tagName, CategoryID: &category.ID}
				if err := tx.Where("name = ?", tagName).FirstOrCreate(&tag).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
