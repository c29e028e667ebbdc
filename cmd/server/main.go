package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linkshare/internal/config"
	"github.com/linkshare/internal/db"
	"github.com/linkshare/internal/fetch"
	"github.com/linkshare/internal/handler"
	"github.com/linkshare/internal/router"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	if err := db.EnsureUser(cfg.AdminUserName, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	api := handler.NewAPI(db.DB, fetch.NewTitleFetcher(cfg.FetchTimeout))
	r := router.SetupRouter(api, cfg)

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
