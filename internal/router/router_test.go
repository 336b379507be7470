package router

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sdkthunder/site-api/internal/config"
	"github.com/sdkthunder/site-api/internal/models"
	"github.com/sdkthunder/site-api/internal/provider"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAPITest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.NewsArticle{},
		&models.Partner{},
		&models.GalleryItem{},
		&models.CalendarEvent{},
		&models.AboutStat{},
		&models.AboutValue{},
	); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "test"},
		JWT:    config.JWTConfig{SecretKey: "integration-test-secret-0123456789ab", ExpireHours: 1},
		Admin:  config.AdminConfig{Email: "admin@sdkthunder.com", Password: "s3cret"},
	}
	return New(provider.New(cfg, db, nil))
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loginForToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "admin@sdkthunder.com",
		"password": "s3cret",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status want 200 got %d body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode login response failed: %v", err)
	}
	if resp.Token == "" {
		t.Fatalf("login response missing token")
	}
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	r := setupAPITest(t)
	w := doJSON(t, r, "GET", "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health want 200 got %d", w.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := setupAPITest(t)
	w := doJSON(t, r, "POST", "/api/auth/login", "", map[string]string{
		"email":    "admin@sdkthunder.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login want 401 got %d", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body failed: %v", err)
	}
	if resp["error"] == "" {
		t.Fatalf("error body must carry error field, got %s", w.Body.String())
	}
}

func TestAdminAPIRequiresToken(t *testing.T) {
	r := setupAPITest(t)
	w := doJSON(t, r, "GET", "/api/admin/news", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("want 401 got %d", w.Code)
	}
}

func TestNewsLifecycleAcrossSurfaces(t *testing.T) {
	r := setupAPITest(t)
	token := loginForToken(t, r)

	// 草稿 + 已发布各一篇
	w := doJSON(t, r, "POST", "/api/admin/news", token, map[string]interface{}{
		"title":     "Published Story",
		"content":   "body",
		"published": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d body %s", w.Code, w.Body.String())
	}
	var published struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &published); err != nil {
		t.Fatalf("decode created article failed: %v", err)
	}

	w = doJSON(t, r, "POST", "/api/admin/news", token, map[string]interface{}{
		"title": "Draft Story",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create draft want 201 got %d", w.Code)
	}
	var draft struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &draft); err != nil {
		t.Fatalf("decode draft failed: %v", err)
	}

	// 公开列表只包含已发布
	w = doJSON(t, r, "GET", "/api/news", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public list want 200 got %d", w.Code)
	}
	var publicList []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &publicList); err != nil {
		t.Fatalf("decode public list failed: %v", err)
	}
	if len(publicList) != 1 {
		t.Fatalf("public list want 1 article got %d", len(publicList))
	}

	// 管理端列表包含草稿
	w = doJSON(t, r, "GET", "/api/admin/news", token, nil)
	var adminList []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &adminList); err != nil {
		t.Fatalf("decode admin list failed: %v", err)
	}
	if len(adminList) != 2 {
		t.Fatalf("admin list want 2 articles got %d", len(adminList))
	}

	// 公开详情：草稿 404
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/news/%d", draft.ID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("public draft detail want 404 got %d", w.Code)
	}

	// 浏览计数
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/news/%d/view", published.ID), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("view want 200 got %d", w.Code)
	}
	var views struct {
		Views int `json:"views"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &views); err != nil {
		t.Fatalf("decode views failed: %v", err)
	}
	if views.Views != 1 {
		t.Fatalf("views want 1 got %d", views.Views)
	}

	// 非法 ID 是 400 而不是 404
	w = doJSON(t, r, "GET", "/api/news/abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("invalid id want 400 got %d", w.Code)
	}

	// 删除后公开详情 404
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/admin/news/%d", published.ID), token, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete want 204 got %d", w.Code)
	}
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/news/%d", published.ID), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted article want 404 got %d", w.Code)
	}
}

func TestPartnerPublicListHidesInactive(t *testing.T) {
	r := setupAPITest(t)
	token := loginForToken(t, r)

	w := doJSON(t, r, "POST", "/api/admin/partners", token, map[string]interface{}{
		"name": "Visible", "tier": "GOLD",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, "POST", "/api/admin/partners", token, map[string]interface{}{
		"name": "Hidden", "tier": "SILVER", "active": false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/api/partners", "", nil)
	var partners []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &partners); err != nil {
		t.Fatalf("decode partners failed: %v", err)
	}
	if len(partners) != 1 || partners[0]["name"] != "Visible" {
		t.Fatalf("public partners mismatch: %v", partners)
	}
}

func TestSessionIntrospection(t *testing.T) {
	r := setupAPITest(t)
	token := loginForToken(t, r)

	w := doJSON(t, r, "GET", "/api/auth/session", token, nil)
	var resp struct {
		Valid bool   `json:"valid"`
		Email string `json:"email"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session failed: %v", err)
	}
	if !resp.Valid || resp.Email != "admin@sdkthunder.com" {
		t.Fatalf("session introspection mismatch: %+v", resp)
	}

	w = doJSON(t, r, "GET", "/api/auth/session", "", nil)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode session failed: %v", err)
	}
	if resp.Valid {
		t.Fatalf("missing token must be invalid session")
	}
}

func TestCalendarReplaceViaPUT(t *testing.T) {
	r := setupAPITest(t)
	token := loginForToken(t, r)

	w := doJSON(t, r, "POST", "/api/admin/calendar", token, map[string]interface{}{
		"title": "Qualifier", "location": "Berlin", "date": "2026-09-05",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d body %s", w.Code, w.Body.String())
	}
	var event struct {
		ID uint `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &event); err != nil {
		t.Fatalf("decode event failed: %v", err)
	}

	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/admin/calendar/%d", event.ID), token, map[string]interface{}{
		"title": "Qualifier (moved)", "date": "2026-09-06",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("replace want 200 got %d body %s", w.Code, w.Body.String())
	}
	var replaced map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &replaced); err != nil {
		t.Fatalf("decode replaced failed: %v", err)
	}
	if replaced["location"] != "" {
		t.Fatalf("PUT must overwrite omitted fields, got %v", replaced["location"])
	}
}

func TestAboutSurfaces(t *testing.T) {
	r := setupAPITest(t)
	token := loginForToken(t, r)

	w := doJSON(t, r, "POST", "/api/admin/about/stats", token, map[string]interface{}{
		"icon": "trophy", "number": "12", "label": "Titles",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create stat want 201 got %d body %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, "POST", "/api/admin/about/values", token, map[string]interface{}{
		"text": "Integrity", "isActive": false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create value want 201 got %d", w.Code)
	}

	w = doJSON(t, r, "GET", "/api/about/stats", "", nil)
	var stats []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode stats failed: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("public stats want 1 got %d", len(stats))
	}

	// 隐藏的价值观条目不出现在公开端
	w = doJSON(t, r, "GET", "/api/about/values", "", nil)
	var values []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &values); err != nil {
		t.Fatalf("decode values failed: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("hidden values must not be public, got %v", values)
	}
}
