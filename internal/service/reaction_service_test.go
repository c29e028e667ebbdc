package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/linkshare/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupReactionServiceTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:reaction-service-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Post{}, &db.Tag{}, &db.Like{}, &db.Favorite{}); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	}
}

func TestToggleLikeFlipsStateAndCount(t *testing.T) {
	gdb, cleanup := setupReactionServiceTestDB(t)
	defer cleanup()

	post := db.Post{URL: "https://a.example", Title: "A", IsVisible: true}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	svc := NewReactionService(gdb)

	liked, count, err := svc.ToggleLike(post.ID, "caller")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !liked || count != 1 {
		t.Fatalf("expected liked with count 1, got liked=%v count=%d", liked, count)
	}

	liked, count, err = svc.ToggleLike(post.ID, "caller")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if liked || count != 0 {
		t.Fatalf("expected unliked with count 0, got liked=%v count=%d", liked, count)
	}

	var rows int64
	if err := gdb.Model(&db.Like{}).Count(&rows).Error; err != nil {
		t.Fatalf("count likes: %v", err)
	}
	if rows != 0 {
		t.Fatalf("double toggle must restore original state, got %d rows", rows)
	}
}

func TestToggleLikeCountsDistinctIdentities(t *testing.T) {
	gdb, cleanup := setupReactionServiceTestDB(t)
	defer cleanup()

	post := db.Post{URL: "https://a.example", Title: "A", IsVisible: true}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	svc := NewReactionService(gdb)

	if _, _, err := svc.ToggleLike(post.ID, "first"); err != nil {
		t.Fatalf("first identity: %v", err)
	}
	liked, count, err := svc.ToggleLike(post.ID, "second")
	if err != nil {
		t.Fatalf("second identity: %v", err)
	}
	if !liked || count != 2 {
		t.Fatalf("expected both likes counted, got liked=%v count=%d", liked, count)
	}
}

func TestToggleFavoriteFlipsState(t *testing.T) {
	gdb, cleanup := setupReactionServiceTestDB(t)
	defer cleanup()

	post := db.Post{URL: "https://a.example", Title: "A", IsVisible: true}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}

	svc := NewReactionService(gdb)

	favorited, err := svc.ToggleFavorite(post.ID, "caller")
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if !favorited {
		t.Fatal("expected favorited after first toggle")
	}

	favorited, err = svc.ToggleFavorite(post.ID, "caller")
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if favorited {
		t.Fatal("expected unfavorited after second toggle")
	}

	var rows int64
	if err := gdb.Model(&db.Favorite{}).Count(&rows).Error; err != nil {
		t.Fatalf("count favorites: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected no favorite rows left, got %d", rows)
	}
}
