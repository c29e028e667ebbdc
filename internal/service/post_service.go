package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/linkshare/internal/db"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound  = errors.New("post not found")
	ErrURLRequired   = errors.New("url is required")
	ErrTagsRequired  = errors.New("at least one tag is required")
	ErrTitleRequired = errors.New("title is required")
)

// TitleResolver resolves a page title for a submitted URL.
type TitleResolver interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// SortField enumerates the columns the public listing may sort by. Request
// input never reaches the query builder as a raw string; it is parsed onto
// this closed set first.
type SortField string

// SortDirection enumerates the two sort directions.
type SortDirection string

const (
	SortByCreatedAt SortField = "posts.created_at"
	SortByLikes     SortField = "likes_count"

	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortField maps request input onto the sort allow-list. Anything
// unrecognized falls back to creation time.
func ParseSortField(raw string) SortField {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "likes_count", "likes":
		return SortByLikes
	default:
		return SortByCreatedAt
	}
}

// ParseSortDirection maps request input onto asc/desc, defaulting to desc.
func ParseSortDirection(raw string) SortDirection {
	if strings.ToLower(strings.TrimSpace(raw)) == "asc" {
		return SortAscending
	}
	return SortDescending
}

// ListFilter describes the public listing filters. Zero values mean
// "no filter"; all supplied filters apply conjunctively.
type ListFilter struct {
	Keyword   string
	Tag       string
	Date      string // YYYY-MM-DD, ignored when malformed
	Sort      SortField
	Direction SortDirection
}

// SubmissionInput carries the fields of a new bookmark submission.
type SubmissionInput struct {
	URL    string
	TagIDs []uint
}

// PostService wraps bookmark persistence and title resolution.
type PostService struct {
	db     *gorm.DB
	titles TitleResolver
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB, titles TitleResolver) *PostService {
	return &PostService{db: gdb, titles: titles}
}

const likeAggregates = `posts.*,
(SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count,
EXISTS(SELECT 1 FROM likes WHERE likes.post_id = posts.id AND likes.user_uuid = ?) AS liked,
EXISTS(SELECT 1 FROM favorites WHERE favorites.post_id = posts.id AND favorites.user_uuid = ?) AS favorited`

// Submit stores a bookmark for the given URL, resolving its title with a
// single best-effort fetch. Submissions are idempotent on URL: resubmitting
// merges the new tag set into the existing post. The insert and the tag
// associations commit as one transaction.
func (s *PostService) Submit(ctx context.Context, input SubmissionInput) (*db.Post, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return nil, ErrURLRequired
	}

	tagIDs := uniqueIDs(input.TagIDs)
	if len(tagIDs) == 0 {
		return nil, ErrTagsRequired
	}

	var tags []db.Tag
	if err := s.db.Find(&tags, tagIDs).Error; err != nil {
		return nil, err
	}
	if len(tags) != len(tagIDs) {
		return nil, ErrTagNotFound
	}

	post := db.Post{URL: url, Title: s.resolveTitle(ctx, url), IsVisible: true}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			if !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
			// URL already known: resolve to the existing post and only
			// extend its tag set.
			if err := tx.Where("url = ?", url).First(&post).Error; err != nil {
				return err
			}
		}
		return tx.Model(&post).Association("Tags").Append(&tags)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) resolveTitle(ctx context.Context, url string) string {
	if s.titles == nil {
		return url
	}
	title, err := s.titles.Fetch(ctx, url)
	if err != nil {
		// A dead or slow page is not a failed submission; the raw URL
		// stands in for the title.
		log.Printf("title fetch failed for %s: %v", url, err)
		return url
	}
	return title
}

// List returns all visible posts matching the filter, annotated with like
// aggregates and the caller's own like/favorite state.
func (s *PostService) List(identity string, filter ListFilter) ([]db.Post, error) {
	if filter.Sort == "" {
		filter.Sort = SortByCreatedAt
	}
	if filter.Direction == "" {
		filter.Direction = SortDescending
	}

	query := s.db.Model(&db.Post{}).
		Select(likeAggregates, identity, identity).
		Preload("Tags").
		Where("posts.is_visible = ?", true)

	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		pattern := "%" + keyword + "%"
		query = query.Where(`(posts.title LIKE ? OR EXISTS (
			SELECT 1 FROM post_tags
			JOIN tags ON tags.id = post_tags.tag_id
			WHERE post_tags.post_id = posts.id AND tags.name LIKE ?))`, pattern, pattern)
	}

	// Exact membership over the join table; a substring match against a
	// concatenated tag list would false-positive on nested tag names.
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		query = query.Where(`EXISTS (
			SELECT 1 FROM post_tags
			JOIN tags ON tags.id = post_tags.tag_id
			WHERE post_tags.post_id = posts.id AND tags.name = ?)`, tag)
	}

	if day := strings.TrimSpace(filter.Date); day != "" {
		if _, err := time.Parse("2006-01-02", day); err == nil {
			query = query.Where("date(posts.created_at) = ?", day)
		}
	}

	// posts.id is the stable tie-break so repeated listings are
	// deterministic whatever the primary sort.
	order := fmt.Sprintf("%s %s, posts.id %s", filter.Sort, filter.Direction, filter.Direction)

	var posts []db.Post
	if err := query.Order(order).Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// Favorites returns the visible posts the caller has favorited, most recent
// favorite first.
func (s *PostService) Favorites(identity string) ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Model(&db.Post{}).
		Select(likeAggregates, identity, identity).
		Joins("JOIN favorites ON favorites.post_id = posts.id AND favorites.user_uuid = ?", identity).
		Where("posts.is_visible = ?", true).
		Preload("Tags").
		Order("favorites.id desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListAll returns every post regardless of visibility for the admin page.
func (s *PostService) ListAll() ([]db.Post, error) {
	var posts []db.Post
	if err := s.db.Model(&db.Post{}).
		Select("posts.*, (SELECT COUNT(*) FROM likes WHERE likes.post_id = posts.id) AS likes_count").
		Preload("Tags").
		Order("posts.created_at desc, posts.id desc").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ToggleVisibility flips a post's visibility. Unknown ids are ignored.
func (s *PostService) ToggleVisibility(id uint) error {
	var post db.Post
	if err := s.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return s.db.Model(&post).Update("is_visible", !post.IsVisible).Error
}

// Delete removes a post together with its tag associations, likes and
// favorites in one transaction.
func (s *PostService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM post_tags WHERE post_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&db.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&db.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&db.Post{}, id).Error
	})
}

// UpdateTitle replaces a post's title. The replacement must be non-empty and
// the post must exist.
func (s *PostService) UpdateTitle(id uint, title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrTitleRequired
	}

	result := s.db.Model(&db.Post{}).Where("id = ?", id).Update("title", trimmed)
	if result.Error != nil {
		return "", result.Error
	}
	if result.RowsAffected == 0 {
		return "", ErrPostNotFound
	}
	return trimmed, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
