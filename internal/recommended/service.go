package recommended

import (
	"context"
	"fmt"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
)

// Source loads the API recommendations for a product plus best sellers used to pad them.
type Source interface {
	ProductRecommendations(ctx context.Context, productID string, count int) (recommended, additional []entity.ProductCard, err error)
}

// Service provides business logic for recommended products.
type Service struct {
	source Source
	count  int
}

func NewService(source Source, count int) *Service {
	if count <= 0 {
		count = 12
	}
	return &Service{source: source, count: count}
}

// List returns the merged recommendations for productID, without productID itself.
func (s *Service) List(ctx context.Context, productID string) ([]entity.ProductCard, error) {
	primary, additional, err := s.source.ProductRecommendations(ctx, productID, s.count)
	if err != nil {
		return nil, fmt.Errorf("failed to load recommendations: %w", err)
	}
	return Merge(primary, additional, productID), nil
}
