package recommended

import (
	"math/rand/v2"
	"slices"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
	rng     *rand.Rand
}

// NewHandler builds the recommendations handler. rng drives ?shuffle=1; nil uses the
// package-level source.
func NewHandler(s *Service, rng *rand.Rand) *Handler {
	return &Handler{service: s, rng: rng}
}

// RegisterPublicRoutes must run before the product page routes so that
// "recommended" is not taken for a product handle.
func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products/recommended", h.getRecommended)
}

func (h *Handler) getRecommended(c *fiber.Ctx) error {
	productID := c.Query("productId")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "productId is required"})
	}

	items, err := h.service.List(c.UserContext(), productID)
	if err != nil {
		log.WithField("productId", productID).Errorf("Recommendations failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "There was a problem loading related products"})
	}

	if c.QueryBool("shuffle") {
		items = Shuffle(slices.Clone(items), h.rng)
	}
	return c.JSON(items)
}
