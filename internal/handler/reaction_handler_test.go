package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/linkshare/internal/db"
	"gorm.io/gorm"
)

type toggleResponse struct {
	Success   bool  `json:"success"`
	Liked     bool  `json:"liked"`
	Favorited bool  `json:"favorited"`
	Count     int64 `json:"count"`
}

func setupReactionRouter(t *testing.T) (*gin.Engine, *gorm.DB, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, cleanup := setupHandlerTestDB(t, "reaction-handler")
	api := NewAPI(gdb, nil)

	r := gin.New()
	r.Use(Identity())
	r.POST("/like/:id", api.ToggleLike)
	r.POST("/favorite/:id", api.ToggleFavorite)

	return r, gdb, cleanup
}

func postToggle(t *testing.T, r *gin.Engine, path, identity string) (*httptest.ResponseRecorder, toggleResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.AddCookie(&http.Cookie{Name: IdentityCookieName, Value: identity})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var decoded toggleResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response %q: %v", rr.Body.String(), err)
	}
	return rr, decoded
}

func TestLikeEndpointTogglesState(t *testing.T) {
	r, gdb, cleanup := setupReactionRouter(t)
	defer cleanup()

	post := db.Post{URL: "https://a.example", Title: "A", IsVisible: true}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	path := fmt.Sprintf("/like/%d", post.ID)

	rr, decoded := postToggle(t, r, path, "caller")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !decoded.Success || !decoded.Liked || decoded.Count != 1 {
		t.Fatalf("unexpected first toggle response: %+v", decoded)
	}

	rr, decoded = postToggle(t, r, path, "caller")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !decoded.Success || decoded.Liked || decoded.Count != 0 {
		t.Fatalf("unexpected second toggle response: %+v", decoded)
	}
}

func TestFavoriteEndpointTogglesState(t *testing.T) {
	r, gdb, cleanup := setupReactionRouter(t)
	defer cleanup()

	post := db.Post{URL: "https://a.example", Title: "A", IsVisible: true}
	if err := gdb.Create(&post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	path := fmt.Sprintf("/favorite/%d", post.ID)

	rr, decoded := postToggle(t, r, path, "caller")
	if rr.Code != http.StatusOK || !decoded.Success || !decoded.Favorited {
		t.Fatalf("unexpected first toggle: code=%d %+v", rr.Code, decoded)
	}

	rr, decoded = postToggle(t, r, path, "caller")
	if rr.Code != http.StatusOK || !decoded.Success || decoded.Favorited {
		t.Fatalf("unexpected second toggle: code=%d %+v", rr.Code, decoded)
	}
}

func TestToggleRejectsMalformedPostID(t *testing.T) {
	r, _, cleanup := setupReactionRouter(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodPost, "/like/not-a-number", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", rr.Code)
	}
}
