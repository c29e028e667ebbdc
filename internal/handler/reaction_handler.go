package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ToggleLike flips the caller's like on a post and reports the new state
// with the updated count.
func (a *API) ToggleLike(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	liked, count, err := a.reactions.ToggleLike(id, CallerIdentity(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to toggle like")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "liked": liked, "count": count})
}

// ToggleFavorite flips the caller's favorite on a post.
func (a *API) ToggleFavorite(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid post id")
		return
	}

	favorited, err := a.reactions.ToggleFavorite(id, CallerIdentity(c))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to toggle favorite")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "favorited": favorited})
}

// Favorites renders the caller's favorited posts, newest favorite first.
func (a *API) Favorites(c *gin.Context) {
	posts, err := a.posts.Favorites(CallerIdentity(c))
	if err != nil {
		c.HTML(http.StatusInternalServerError, "favorites.html", gin.H{
			"error": "failed to load favorites",
		})
		return
	}

	c.HTML(http.StatusOK, "favorites.html", gin.H{"posts": posts})
}
