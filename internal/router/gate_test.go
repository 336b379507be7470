package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sdkthunder/site-api/internal/config"
	"github.com/sdkthunder/site-api/internal/constants"
	"github.com/sdkthunder/site-api/internal/service"

	"github.com/gin-gonic/gin"
)

func TestAuthorize(t *testing.T) {
	cases := []struct {
		name         string
		path         string
		sessionValid bool
		wantAllowed  bool
		wantRedirect string
	}{
		{"public path without session", "/api/news", false, true, ""},
		{"login page without session", "/admin/login", false, true, ""},
		{"admin page without session", "/admin/dashboard", false, false, "/admin/login"},
		{"admin root without session", "/admin", false, false, "/admin/login"},
		{"admin page with session", "/admin/dashboard", true, true, ""},
		{"lookalike prefix is not admin", "/administrator", false, true, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, redirectTo := Authorize(tc.path, tc.sessionValid)
			if allowed != tc.wantAllowed || redirectTo != tc.wantRedirect {
				t.Fatalf("Authorize(%q, %v) = (%v, %q), want (%v, %q)",
					tc.path, tc.sessionValid, allowed, redirectTo, tc.wantAllowed, tc.wantRedirect)
			}
		})
	}
}

func newGateTestEngine(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	auth := service.NewAuthService(
		config.AdminConfig{Email: "admin@sdkthunder.com", Password: "s3cret"},
		config.JWTConfig{SecretKey: "unit-test-secret-key-0123456789abcdef", ExpireHours: 1},
	)

	r := gin.New()
	r.Use(GateMiddleware(auth))
	r.GET("/admin/dashboard", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	r.GET("/admin/login", func(c *gin.Context) { c.String(http.StatusOK, "login") })
	return r, auth
}

func TestGateRedirectsWithoutSession(t *testing.T) {
	r, _ := newGateTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status want 303 got %d", w.Code)
	}
	if location := w.Header().Get("Location"); location != constants.AdminLoginPath {
		t.Fatalf("location want %s got %s", constants.AdminLoginPath, location)
	}
}

func TestGateAllowsValidSessionCookie(t *testing.T) {
	r, auth := newGateTestEngine(t)

	token, _, err := auth.Authenticate("admin@sdkthunder.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: token})
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}

func TestGateLoginPageAlwaysReachable(t *testing.T) {
	r, _ := newGateTestEngine(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/admin/login", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d", w.Code)
	}
}
