package db

import "time"

// Favorite records that an anonymous identity favorited a post. Same
// presence-is-state contract as Like.
type Favorite struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	PostID    uint   `gorm:"not null;uniqueIndex:idx_favorites_post_user"`
	UserUUID  string `gorm:"not null;uniqueIndex:idx_favorites_post_user"`
}
