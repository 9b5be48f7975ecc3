package product

import (
	"errors"
	"regexp"

	"github.com/FrederickOB/test-hydrogen-app/internal/storefront"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

var localeParam = regexp.MustCompile(`^[a-zA-Z]{2}-[a-zA-Z]{2}$`)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/:handle", h.getProduct)
	app.Get("/api/v1/:locale/products/:handle", h.getLocalizedProduct)
}

func (h *Handler) getLocalizedProduct(c *fiber.Ctx) error {
	if !localeParam.MatchString(c.Params("locale")) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
	}
	return h.getProduct(c)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	handle := c.Params("handle")
	if handle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "product handle is required"})
	}

	page, err := h.service.Page(c.UserContext(), handle, selectedOptions(c))
	if err != nil {
		if errors.Is(err, storefront.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		log.WithField("product", handle).Errorf("Product page failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "failed to load product"})
	}
	return c.JSON(page)
}

// selectedOptions reads one option per query parameter; for repeated parameters the first wins.
func selectedOptions(c *fiber.Ctx) map[string]string {
	selected := map[string]string{}
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		name := string(key)
		if _, ok := selected[name]; !ok {
			selected[name] = string(value)
		}
	})
	return selected
}
