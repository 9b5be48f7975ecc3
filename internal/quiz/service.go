package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/url"
	"slices"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/FrederickOB/test-hydrogen-app/internal/recommended"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Catalog is the part of the storefront the quiz needs.
type Catalog interface {
	ProductTags(ctx context.Context, first int) ([]string, error)
	ProductTypes(ctx context.Context, first int) ([]string, error)
	SearchProducts(ctx context.Context, query string, first int) ([]entity.ProductCard, error)
}

// Options are the answers offered by the quiz page.
type Options struct {
	Relationships []RelationshipGroup `json:"relationships"`
	ProductTypes  []string            `json:"productTypes"`
	ProductTags   []string            `json:"productTags"`
}

type Service struct {
	catalog       Catalog
	repo          Repository
	productsFirst int
	taxonomyFirst int
	rng           *rand.Rand
}

func NewService(catalog Catalog, repo Repository, productsFirst, taxonomyFirst int) *Service {
	if productsFirst <= 0 {
		productsFirst = 100
	}
	if taxonomyFirst <= 0 {
		taxonomyFirst = 100
	}
	return &Service{
		catalog:       catalog,
		repo:          repo,
		productsFirst: productsFirst,
		taxonomyFirst: taxonomyFirst,
	}
}

// Options loads the relationships, product types and product tags concurrently.
func (s *Service) Options(ctx context.Context) (Options, error) {
	var opts Options
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		groups, err := s.repo.Relationships(gctx)
		if err != nil {
			return fmt.Errorf("failed to load relationships: %w", err)
		}
		opts.Relationships = groups
		return nil
	})
	g.Go(func() error {
		types, err := s.catalog.ProductTypes(gctx, s.taxonomyFirst)
		if err != nil {
			return err
		}
		opts.ProductTypes = types
		return nil
	})
	g.Go(func() error {
		tags, err := s.catalog.ProductTags(gctx, s.taxonomyFirst)
		if err != nil {
			return err
		}
		opts.ProductTags = tags
		return nil
	})
	if err := g.Wait(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Submit checks a completed quiz and returns the path of its suggestions page.
func (s *Service) Submit(ctx context.Context, sel Selection) (string, error) {
	if err := sel.Validate(); err != nil {
		return "", err
	}

	recipients, err := s.repo.Recipients(ctx, sel.Relationship)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", fmt.Errorf("relationship %q: %w", sel.Relationship, ErrUnknownAnswer)
		}
		return "", err
	}
	if !slices.Contains(recipients, sel.Recipient) {
		return "", fmt.Errorf("recipient %q for %s: %w", sel.Recipient, sel.Relationship, ErrUnknownAnswer)
	}

	return "/products/query/" + url.PathEscape(sel.SearchPath()), nil
}

// Suggestions searches the products matching a search path. With shuffle set the results are
// reordered before being laid out; the catalog's slice is never reordered.
func (s *Service) Suggestions(ctx context.Context, path string, shuffle bool) (Suggestions, error) {
	query, err := BuildSearchQuery(path)
	if err != nil {
		return Suggestions{}, err
	}

	items, err := s.catalog.SearchProducts(ctx, query, s.productsFirst)
	if err != nil {
		return Suggestions{}, err
	}
	log.WithField("query", query).Debugf("Quiz search returned %d products", len(items))

	if shuffle {
		items = recommended.Shuffle(slices.Clone(items), s.rng)
	}
	return NewSuggestions(query, items), nil
}
