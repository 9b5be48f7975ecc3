package quiz

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/quiz", h.getOptions)
	app.Post("/api/v1/quiz", h.submit)
	app.Get("/api/v1/products/query/:query", h.getSuggestions)
}

func (h *Handler) getOptions(c *fiber.Ctx) error {
	opts, err := h.service.Options(c.UserContext())
	if err != nil {
		log.Errorf("Quiz options failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "failed to load quiz"})
	}
	return c.JSON(opts)
}

func (h *Handler) submit(c *fiber.Ctx) error {
	var sel Selection
	if err := c.BodyParser(&sel); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	path, err := h.service.Submit(c.UserContext(), sel)
	if err != nil {
		if errors.Is(err, ErrIncomplete) || errors.Is(err, ErrUnknownAnswer) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		log.Errorf("Quiz submit failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "failed to submit quiz"})
	}
	return c.JSON(fiber.Map{"path": path})
}

func (h *Handler) getSuggestions(c *fiber.Ctx) error {
	path, err := url.PathUnescape(c.Params("query"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	res, err := h.service.Suggestions(c.UserContext(), path, c.QueryBool("shuffle"))
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		log.WithField("query", path).Errorf("Quiz suggestions failed: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": "failed to load suggestions"})
	}
	return c.JSON(res)
}
