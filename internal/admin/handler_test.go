package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/FrederickOB/test-hydrogen-app/internal/middleware"
	"github.com/FrederickOB/test-hydrogen-app/internal/storefront"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

type failingPurger struct{}

func (failingPurger) Purge(context.Context) (int, error) { return 0, errors.New("redis down") }

func adminToken(t *testing.T, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": middleware.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newTestApp(p Purger) *fiber.App {
	app := fiber.New()
	app.Use("/api/v1/admin", middleware.AdminGuard("secret"))
	NewHandler(p).RegisterProtectedRoutes(app)
	return app
}

func TestPurgeCache(t *testing.T) {
	cache := storefront.NewMemoryCache()
	_ = cache.Set(context.Background(), "a", []byte("1"), time.Minute)
	_ = cache.Set(context.Background(), "b", []byte("2"), time.Minute)
	app := newTestApp(cache)

	req := httptest.NewRequest("DELETE", "/api/v1/admin/cache", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret"))
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}
	var body struct {
		Purged int `json:"purged"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Purged != 2 {
		t.Fatalf("expected 2 purged entries, got %d", body.Purged)
	}
	if _, ok, _ := cache.Get(context.Background(), "a"); ok {
		t.Fatalf("cache entry survived purge")
	}
}

func TestPurgeCache_RequiresToken(t *testing.T) {
	app := newTestApp(storefront.NewMemoryCache())
	res, err := app.Test(httptest.NewRequest("DELETE", "/api/v1/admin/cache", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
}

func TestPurgeCache_Failure(t *testing.T) {
	app := newTestApp(failingPurger{})
	req := httptest.NewRequest("DELETE", "/api/v1/admin/cache", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken(t, "secret"))
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", res.StatusCode)
	}
}
