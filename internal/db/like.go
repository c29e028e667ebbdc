package db

import "time"

// Like records that an anonymous identity liked a post. Presence of the row
// is the "on" state, so the model has no soft delete: clearing a like must
// free the (post, identity) unique slot immediately.
type Like struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	PostID    uint   `gorm:"not null;uniqueIndex:idx_likes_post_user"`
	UserUUID  string `gorm:"not null;uniqueIndex:idx_likes_post_user"`
}
