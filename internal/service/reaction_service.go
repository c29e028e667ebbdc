package service

import (
	"errors"

	"github.com/linkshare/internal/db"
	"gorm.io/gorm"
)

// ReactionService implements the like/favorite toggles. Both are pure state
// flips keyed on the (post, identity) unique index: inserting turns the
// reaction on, a duplicate-key result means it was already on and turns it
// off. Concurrent toggles from the same identity race on that index; the
// loser observes the duplicate and takes the delete branch, never an error.
type ReactionService struct {
	db *gorm.DB
}

// NewReactionService creates a ReactionService instance.
func NewReactionService(gdb *gorm.DB) *ReactionService {
	return &ReactionService{db: gdb}
}

// ToggleLike flips the caller's like on a post and returns the new state
// together with the post's updated like count.
func (s *ReactionService) ToggleLike(postID uint, identity string) (bool, int64, error) {
	liked := false
	like := db.Like{PostID: postID, UserUUID: identity}
	if err := s.db.Create(&like).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, 0, err
		}
		if err := s.db.Where("post_id = ? AND user_uuid = ?", postID, identity).
			Delete(&db.Like{}).Error; err != nil {
			return false, 0, err
		}
	} else {
		liked = true
	}

	var count int64
	if err := s.db.Model(&db.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return liked, 0, err
	}
	return liked, count, nil
}

// ToggleFavorite flips the caller's favorite on a post and returns the new
// state.
func (s *ReactionService) ToggleFavorite(postID uint, identity string) (bool, error) {
	favorite := db.Favorite{PostID: postID, UserUUID: identity}
	if err := s.db.Create(&favorite).Error; err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, err
		}
		if err := s.db.Where("post_id = ? AND user_uuid = ?", postID, identity).
			Delete(&db.Favorite{}).Error; err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}
