package product

import (
	"context"
	"fmt"
	"sort"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const recommendationsError = "There was a problem loading related products"

// Catalog loads a product and the shop it belongs to.
type Catalog interface {
	ProductByHandle(ctx context.Context, handle string, selected []entity.SelectedOption) (entity.Product, entity.Shop, error)
}

// Recommender lists the related products shown under a product.
type Recommender interface {
	List(ctx context.Context, productID string) ([]entity.ProductCard, error)
}

// OptionView is one option of the purchase form with a link per value.
type OptionView struct {
	Name     string       `json:"name"`
	Selected string       `json:"selected"`
	Dropdown bool         `json:"dropdown"`
	Values   []OptionLink `json:"values"`
}

// Page is the view model of the product detail page.
type Page struct {
	Product          entity.Product       `json:"product"`
	ShopName         string               `json:"shopName"`
	SelectedVariant  *entity.Variant      `json:"selectedVariant"`
	SelectedOptions  map[string]string    `json:"selectedOptions"`
	Options          []OptionView         `json:"options"`
	Gallery          Gallery              `json:"gallery"`
	IsOnSale         bool                 `json:"isOnSale"`
	IsOutOfStock     bool                 `json:"isOutOfStock"`
	Policies         []PolicyDetail       `json:"policies"`
	SEO              SEO                  `json:"seo"`
	Analytics        Analytics            `json:"analytics"`
	Recommended      []entity.ProductCard `json:"recommended"`
	RecommendedError string               `json:"recommendedError,omitempty"`
}

type Service struct {
	catalog     Catalog
	recommender Recommender
}

func NewService(catalog Catalog, recommender Recommender) *Service {
	return &Service{catalog: catalog, recommender: recommender}
}

// Page loads the product for handle with the given option selection. Related products are
// loaded while the rest of the page is assembled; failing to load them never fails the page.
func (s *Service) Page(ctx context.Context, handle string, selected map[string]string) (Page, error) {
	p, shop, err := s.catalog.ProductByHandle(ctx, handle, toSelectedOptions(selected))
	if err != nil {
		return Page{}, err
	}

	page := Page{
		Product:     p,
		ShopName:    shop.Name,
		Recommended: []entity.ProductCard{},
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.recommender.List(gctx, p.ID)
		if err != nil {
			log.WithField("product", handle).Warnf("Related products unavailable: %v", err)
			page.RecommendedError = recommendationsError
			return nil
		}
		page.Recommended = items
		return nil
	})

	var (
		gallery  Gallery
		policies []PolicyDetail
	)
	g.Go(func() error {
		var err error
		gallery, err = NewGallery(p.Media)
		if err != nil {
			return fmt.Errorf("failed to build gallery for %s: %w", handle, err)
		}
		policies = PolicyDetails(shop)
		return nil
	})

	if err := g.Wait(); err != nil {
		return Page{}, err
	}

	var defaultVariant *entity.Variant
	if v, ok := p.DefaultVariant(); ok {
		defaultVariant = &v
	}
	resolved := ResolveVariantOptions(p.Options, selected, defaultVariant)
	variant := SelectedVariant(p)

	page.Gallery = gallery
	page.Policies = policies
	page.SelectedVariant = variant
	page.SelectedOptions = resolved
	page.Options = optionViews("/products/"+p.Handle, p.Options, resolved)
	page.IsOnSale = IsOnSale(variant)
	page.IsOutOfStock = IsOutOfStock(variant)
	page.SEO = NewSEO(p)
	page.Analytics = NewAnalytics(p, variant)

	return page, nil
}

func optionViews(path string, options []entity.Option, resolved map[string]string) []OptionView {
	visible := VisibleOptions(options)
	out := make([]OptionView, 0, len(visible))
	for _, opt := range visible {
		out = append(out, OptionView{
			Name:     opt.Name,
			Selected: resolved[opt.Name],
			Dropdown: UsesDropdown(opt),
			Values:   OptionLinks(path, opt, resolved),
		})
	}
	return out
}

// toSelectedOptions orders the selection by name so equal selections produce equal queries.
func toSelectedOptions(selected map[string]string) []entity.SelectedOption {
	out := make([]entity.SelectedOption, 0, len(selected))
	for name, value := range selected {
		out = append(out, entity.SelectedOption{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
