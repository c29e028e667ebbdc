package handler

import (
	"github.com/linkshare/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	posts     *service.PostService
	reactions *service.ReactionService
	tags      *service.TagService
}

// NewAPI constructs a handler set with shared services. titles resolves page
// titles for submitted URLs; pass nil to skip fetching entirely.
func NewAPI(gdb *gorm.DB, titles service.TitleResolver) *API {
	return &API{
		db:        gdb,
		posts:     service.NewPostService(gdb, titles),
		reactions: service.NewReactionService(gdb),
		tags:      service.NewTagService(gdb),
	}
}

// DB exposes the underlying gorm instance.
func (a *API) DB() *gorm.DB {
	return a.db
}
