package router

import (
	"path/filepath"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/linkshare/internal/config"
	"github.com/linkshare/internal/handler"
)

const templateGlob = "web/template/*.html"

// SetupRouter configures the gin engine, session store, identity middleware
// and all routes.
func SetupRouter(api *handler.API, cfg config.AppConfig) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("linkshare_session", store))
	r.Use(handler.Identity())

	// Tests swap in their own HTMLRender, so only load templates when the
	// working directory actually contains them.
	if matches, err := filepath.Glob(templateGlob); err == nil && len(matches) > 0 {
		r.LoadHTMLGlob(templateGlob)
	}
	r.Static("/static", "./web/static")

	r.GET("/", api.Index)
	r.GET("/new", api.ShowNewPost)
	r.POST("/new", api.CreatePost)
	r.POST("/like/:id", api.ToggleLike)
	r.POST("/favorite/:id", api.ToggleFavorite)
	r.GET("/favorites", api.Favorites)

	admin := r.Group("/admin")
	if cfg.AdminAuthEnabled() {
		r.GET("/admin/login", api.ShowLoginPage)
		r.POST("/admin/login", api.Login)
		r.GET("/admin/logout", api.Logout)
		admin.Use(handler.AuthRequired())
	}
	{
		admin.GET("", api.ShowAdmin)
		admin.POST("/toggle_visibility/:id", api.ToggleVisibility)
		admin.POST("/delete/:id", api.DeletePost)
		admin.POST("/edit_title/:id", api.EditTitle)
	}

	return r
}
