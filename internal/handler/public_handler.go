package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linkshare/internal/service"
)

// Index renders the public listing with keyword, tag, date and sort filters.
// Sort and order parse onto closed enums, so malformed values silently fall
// back to creation time descending.
func (a *API) Index(c *gin.Context) {
	filter := service.ListFilter{
		Keyword:   c.Query("q"),
		Tag:       c.Query("tag"),
		Date:      c.Query("date"),
		Sort:      service.ParseSortField(c.Query("sort")),
		Direction: service.ParseSortDirection(c.Query("order")),
	}

	posts, err := a.posts.List(CallerIdentity(c), filter)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "index.html", gin.H{
			"error":        "failed to load posts",
			"search":       filter.Keyword,
			"selectedTag":  filter.Tag,
			"selectedDate": filter.Date,
			"currentSort":  "created_at",
			"currentOrder": "desc",
		})
		return
	}

	groups, err := a.tags.GroupedByCategory()
	if err != nil {
		groups = nil
	}

	currentSort := "created_at"
	if filter.Sort == service.SortByLikes {
		currentSort = "likes_count"
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"posts":        posts,
		"tagGroups":    groups,
		"search":       filter.Keyword,
		"selectedTag":  filter.Tag,
		"selectedDate": filter.Date,
		"currentSort":  currentSort,
		"currentOrder": string(filter.Direction),
	})
}

// ShowNewPost renders the submission form with tags grouped by category.
func (a *API) ShowNewPost(c *gin.Context) {
	groups, err := a.tags.GroupedByCategory()
	if err != nil {
		c.HTML(http.StatusInternalServerError, "new.html", gin.H{
			"error": "failed to load tags",
		})
		return
	}

	c.HTML(http.StatusOK, "new.html", gin.H{"tagGroups": groups})
}

// CreatePost accepts a submitted URL with its tag ids. The title fetch is
// best effort inside the service; only validation and storage problems fail
// the submission.
func (a *API) CreatePost(c *gin.Context) {
	input := service.SubmissionInput{
		URL:    c.PostForm("url"),
		TagIDs: parseUintValues(c.PostFormArray("tags")),
	}

	if _, err := a.posts.Submit(c.Request.Context(), input); err != nil {
		groups, groupsErr := a.tags.GroupedByCategory()
		if groupsErr != nil {
			groups = nil
		}

		status := http.StatusInternalServerError
		message := "failed to save post"
		switch {
		case errors.Is(err, service.ErrURLRequired):
			status, message = http.StatusBadRequest, "url is required"
		case errors.Is(err, service.ErrTagsRequired):
			status, message = http.StatusBadRequest, "select at least one tag"
		case errors.Is(err, service.ErrTagNotFound):
			status, message = http.StatusBadRequest, "unknown tag selected"
		}

		c.HTML(status, "new.html", gin.H{
			"error":     message,
			"tagGroups": groups,
			"url":       input.URL,
		})
		return
	}

	c.Redirect(http.StatusFound, "/")
}
