package admin

import (
	"context"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// Purger drops cached storefront responses.
type Purger interface {
	Purge(ctx context.Context) (int, error)
}

type Handler struct {
	cache Purger
}

func NewHandler(cache Purger) *Handler {
	return &Handler{cache: cache}
}

// RegisterProtectedRoutes expects the caller to have installed the admin guard on /api/v1/admin.
func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Delete("/api/v1/admin/cache", h.purgeCache)
}

func (h *Handler) purgeCache(c *fiber.Ctx) error {
	if h.cache == nil {
		return c.JSON(fiber.Map{"message": "cache disabled", "purged": 0})
	}

	n, err := h.cache.Purge(c.UserContext())
	if err != nil {
		log.Errorf("Cache purge failed after %d entries: %v", n, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to purge cache"})
	}
	log.Infof("Purged %d cached storefront responses", n)
	return c.JSON(fiber.Map{"message": "cache purged", "purged": n})
}
