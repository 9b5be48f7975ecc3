package main

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/FrederickOB/test-hydrogen-app/internal/product"
	"github.com/FrederickOB/test-hydrogen-app/internal/quiz"
	"github.com/FrederickOB/test-hydrogen-app/internal/recommended"
	"github.com/gofiber/fiber/v2"
)

type stubCatalog struct {
	handles  []string
	searches []string
}

func (s *stubCatalog) ProductByHandle(_ context.Context, handle string, _ []entity.SelectedOption) (entity.Product, entity.Shop, error) {
	s.handles = append(s.handles, handle)
	return entity.Product{ID: "gid://shopify/Product/1", Handle: handle, Title: "Card"}, entity.Shop{Name: "Cards"}, nil
}

func (s *stubCatalog) ProductRecommendations(_ context.Context, _ string, _ int) ([]entity.ProductCard, []entity.ProductCard, error) {
	return []entity.ProductCard{{ID: "r1", Handle: "r1"}}, nil, nil
}

func (s *stubCatalog) ProductTags(_ context.Context, _ int) ([]string, error) {
	return []string{"mom"}, nil
}

func (s *stubCatalog) ProductTypes(_ context.Context, _ int) ([]string, error) {
	return []string{"Birthday"}, nil
}

func (s *stubCatalog) SearchProducts(_ context.Context, query string, _ int) ([]entity.ProductCard, error) {
	s.searches = append(s.searches, query)
	return []entity.ProductCard{{ID: "s1", Title: `"Hi" by Ana`}}, nil
}

func newRoutesApp(catalog *stubCatalog) *fiber.App {
	recService := recommended.NewService(catalog, 0)
	app := fiber.New()
	registerPublicRoutes(app,
		recommended.NewHandler(recService, nil),
		quiz.NewHandler(quiz.NewService(catalog, quiz.NewInMemoryRepository(quiz.DefaultRelationships()), 0, 0)),
		product.NewHandler(product.NewService(catalog, recService)),
	)
	return app
}

func TestPublicRoutes_DoNotCollideWithProductHandle(t *testing.T) {
	catalog := &stubCatalog{}
	app := newRoutesApp(catalog)

	res, err := app.Test(httptest.NewRequest("GET", "/api/v1/products/recommended?productId=p1", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for recommendations, got %d", res.StatusCode)
	}
	var cards []entity.ProductCard
	if err := json.NewDecoder(res.Body).Decode(&cards); err != nil {
		t.Fatalf("recommendations must be a list of cards: %v", err)
	}
	if len(cards) != 1 || cards[0].ID != "r1" {
		t.Fatalf("unexpected recommendations %+v", cards)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/query/tag:mom%26product_type:Birthday", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for quiz suggestions, got %d", res.StatusCode)
	}
	if len(catalog.searches) != 1 || catalog.searches[0] != "(tag:mom) AND (product_type:Birthday)" {
		t.Fatalf("unexpected searches %v", catalog.searches)
	}

	if len(catalog.handles) != 0 {
		t.Fatalf("recommended and quiz paths must not reach the product page, got handles %v", catalog.handles)
	}

	res, err = app.Test(httptest.NewRequest("GET", "/api/v1/products/happy-birthday", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for product page, got %d", res.StatusCode)
	}
	if len(catalog.handles) != 1 || catalog.handles[0] != "happy-birthday" {
		t.Fatalf("unexpected product handles %v", catalog.handles)
	}
}

func TestPublicRoutes_RegistersEveryPath(t *testing.T) {
	app := newRoutesApp(&stubCatalog{})

	routes := map[string]bool{}
	for _, grp := range app.Stack() {
		for _, r := range grp {
			routes[r.Method+" "+r.Path] = true
		}
	}

	for _, want := range []string{
		"GET /api/v1/products/recommended",
		"GET /api/v1/quiz",
		"POST /api/v1/quiz",
		"GET /api/v1/products/query/:query",
		"GET /api/v1/products/:handle",
		"GET /api/v1/:locale/products/:handle",
	} {
		if !routes[want] {
			t.Fatalf("missing route %q", want)
		}
	}
}
