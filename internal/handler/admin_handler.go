package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkshare/internal/service"
)

type editTitleRequest struct {
	Title string `json:"title"`
}

// ShowAdmin lists every post regardless of visibility, newest first.
func (a *API) ShowAdmin(c *gin.Context) {
	posts, err := a.posts.ListAll()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "admin.html", gin.H{
			"error": "failed to load posts",
		})
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{"posts": posts})
}

// ToggleVisibility flips a post's public visibility and returns to the admin
// listing. Unknown ids are ignored.
func (a *API) ToggleVisibility(c *gin.Context) {
	if id, err := parseUintParam(c, "id"); err == nil {
		if err := a.posts.ToggleVisibility(id); err != nil {
			log.Printf("toggle visibility for post %d: %v", id, err)
			respondError(c, http.StatusInternalServerError, "failed to update post")
			return
		}
	}

	c.Redirect(http.StatusFound, "/admin")
}

// DeletePost removes a post with all its tag associations, likes and
// favorites. A storage failure rolls the whole delete back.
func (a *API) DeletePost(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := a.posts.Delete(id); err != nil {
		log.Printf("delete post %d: %v", id, err)
		respondError(c, http.StatusInternalServerError, "failed to delete post")
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// EditTitle replaces a post's title from a JSON body.
func (a *API) EditTitle(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	var req editTitleRequest
	if !bindJSON(c, &req, "title is required") {
		return
	}

	newTitle, err := a.posts.UpdateTitle(id, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleRequired):
			respondError(c, http.StatusBadRequest, "title is required")
		case errors.Is(err, service.ErrPostNotFound):
			respondError(c, http.StatusNotFound, "post not found")
		default:
			respondError(c, http.StatusInternalServerError, "failed to update title")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "new_title": newTitle})
}
