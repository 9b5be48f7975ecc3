package storefront

import (
	"context"
	"fmt"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"

	log "github.com/sirupsen/logrus"
)

// Catalog runs the storefront's typed queries and maps responses onto entity types.
// Absent fields in a response become zero values, never errors.
type Catalog struct {
	client Client
}

func NewCatalog(client Client) *Catalog {
	return &Catalog{client: client}
}

// connection flattens both `nodes` and `edges { node }` list shapes.
type connection[T any] struct {
	Nodes []T `json:"nodes"`
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
}

func (c connection[T]) items() []T {
	out := make([]T, 0, len(c.Nodes)+len(c.Edges))
	out = append(out, c.Nodes...)
	for _, e := range c.Edges {
		out = append(out, e.Node)
	}
	return out
}

type variantNode struct {
	ID               string                  `json:"id"`
	Title            string                  `json:"title"`
	SKU              string                  `json:"sku"`
	AvailableForSale bool                    `json:"availableForSale"`
	SelectedOptions  []entity.SelectedOption `json:"selectedOptions"`
	Price            *entity.Money           `json:"price"`
	CompareAtPrice   *entity.Money           `json:"compareAtPrice"`
	UnitPrice        *entity.Money           `json:"unitPrice"`
	Image            *entity.Image           `json:"image"`
	Product          *struct {
		Title  string `json:"title"`
		Handle string `json:"handle"`
	} `json:"product"`
}

func (n variantNode) toEntity() entity.Variant {
	v := entity.Variant{
		ID:               n.ID,
		Title:            n.Title,
		SKU:              n.SKU,
		AvailableForSale: n.AvailableForSale,
		SelectedOptions:  n.SelectedOptions,
		Price:            n.Price,
		CompareAtPrice:   n.CompareAtPrice,
		UnitPrice:        n.UnitPrice,
		Image:            n.Image,
	}
	if v.SelectedOptions == nil {
		v.SelectedOptions = []entity.SelectedOption{}
	}
	if n.Product != nil {
		v.ProductTitle = n.Product.Title
		v.ProductHandle = n.Product.Handle
	}
	return v
}

type mediaNode struct {
	Typename         string `json:"__typename"`
	MediaContentType string `json:"mediaContentType"`
	Alt              string `json:"alt"`
	PreviewImage     *struct {
		URL string `json:"url"`
	} `json:"previewImage"`
	ID       string               `json:"id"`
	Image    *entity.Image        `json:"image"`
	Sources  []entity.MediaSource `json:"sources"`
	EmbedURL string               `json:"embedUrl"`
	Host     string               `json:"host"`
}

func (n mediaNode) toEntity() (entity.MediaItem, error) {
	var preview *entity.Image
	if n.PreviewImage != nil && n.PreviewImage.URL != "" {
		preview = &entity.Image{URL: n.PreviewImage.URL}
	}

	switch entity.MediaContentType(n.MediaContentType) {
	case entity.MediaImage:
		if n.Image == nil {
			return nil, fmt.Errorf("image media %s has no image", n.ID)
		}
		id := n.ID
		if id == "" {
			id = n.Image.ID
		}
		return entity.ImageMedia{ID: id, Alt: n.Alt, Image: *n.Image}, nil
	case entity.MediaVideo:
		return entity.VideoMedia{ID: n.ID, Alt: n.Alt, PreviewImage: preview, Sources: n.Sources}, nil
	case entity.MediaExternalVideo:
		return entity.ExternalVideoMedia{ID: n.ID, Alt: n.Alt, PreviewImage: preview, EmbedURL: n.EmbedURL, Host: n.Host}, nil
	case entity.MediaModel3D:
		return entity.Model3DMedia{ID: n.ID, Alt: n.Alt, PreviewImage: preview, Sources: n.Sources}, nil
	default:
		return nil, fmt.Errorf("unsupported media content type %q (%s)", n.MediaContentType, n.Typename)
	}
}

type productNode struct {
	ID              string                  `json:"id"`
	Title           string                  `json:"title"`
	Vendor          string                  `json:"vendor"`
	Handle          string                  `json:"handle"`
	Description     string                  `json:"description"`
	DescriptionHTML string                  `json:"descriptionHtml"`
	Options         []entity.Option         `json:"options"`
	SelectedVariant *variantNode            `json:"selectedVariant"`
	Media           connection[mediaNode]   `json:"media"`
	Variants        connection[variantNode] `json:"variants"`
	SEO             *entity.SEO             `json:"seo"`
}

func (n productNode) toEntity() entity.Product {
	p := entity.Product{
		ID:              n.ID,
		Title:           n.Title,
		Vendor:          n.Vendor,
		Handle:          n.Handle,
		Description:     n.Description,
		DescriptionHTML: n.DescriptionHTML,
		Options:         n.Options,
		Variants:        []entity.Variant{},
		Media:           []entity.MediaItem{},
	}
	if p.Options == nil {
		p.Options = []entity.Option{}
	}
	if n.SEO != nil {
		p.SEO = *n.SEO
	}
	if n.SelectedVariant != nil {
		v := n.SelectedVariant.toEntity()
		p.SelectedVariant = &v
	}
	for _, vn := range n.Variants.items() {
		p.Variants = append(p.Variants, vn.toEntity())
	}
	for _, mn := range n.Media.items() {
		item, err := mn.toEntity()
		if err != nil {
			log.WithField("product", n.Handle).Warnf("Dropping media: %v", err)
			continue
		}
		p.Media = append(p.Media, item)
	}
	return p
}

type productCardNode struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Handle        string                  `json:"handle"`
	Vendor        string                  `json:"vendor"`
	ProductType   string                  `json:"productType"`
	Tags          []string                `json:"tags"`
	PublishedAt   string                  `json:"publishedAt"`
	FeaturedImage *entity.Image           `json:"featuredImage"`
	Variants      connection[variantNode] `json:"variants"`
}

func (n productCardNode) toEntity() entity.ProductCard {
	card := entity.ProductCard{
		ID:            n.ID,
		Title:         n.Title,
		Handle:        n.Handle,
		Vendor:        n.Vendor,
		ProductType:   n.ProductType,
		Tags:          n.Tags,
		PublishedAt:   n.PublishedAt,
		FeaturedImage: n.FeaturedImage,
	}
	for _, vn := range n.Variants.items() {
		card.Variants = append(card.Variants, vn.toEntity())
	}
	return card
}

func toCards(nodes []productCardNode) []entity.ProductCard {
	out := make([]entity.ProductCard, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.toEntity())
	}
	return out
}

// ProductByHandle loads a product, its variant for the selected options, and the shop policies.
// It returns ErrNotFound when the API has no product for the handle.
func (c *Catalog) ProductByHandle(ctx context.Context, handle string, selected []entity.SelectedOption) (entity.Product, entity.Shop, error) {
	if selected == nil {
		selected = []entity.SelectedOption{}
	}

	var resp struct {
		Product *productNode `json:"product"`
		Shop    *entity.Shop `json:"shop"`
	}
	err := c.client.Query(ctx, productQuery, map[string]any{
		"handle":          handle,
		"selectedOptions": selected,
	}, &resp)
	if err != nil {
		return entity.Product{}, entity.Shop{}, fmt.Errorf("failed to query product %s: %w", handle, err)
	}

	if resp.Product == nil || resp.Product.ID == "" {
		return entity.Product{}, entity.Shop{}, fmt.Errorf("product %s: %w", handle, ErrNotFound)
	}

	var shop entity.Shop
	if resp.Shop != nil {
		shop = *resp.Shop
	}

	return resp.Product.toEntity(), shop, nil
}

// ProductRecommendations returns the API's recommendations for productID and the best-selling
// products used to pad them.
func (c *Catalog) ProductRecommendations(ctx context.Context, productID string, count int) (recommended, additional []entity.ProductCard, err error) {
	var resp struct {
		Recommended []productCardNode           `json:"recommended"`
		Additional  connection[productCardNode] `json:"additional"`
	}
	err = c.client.Query(ctx, recommendedProductsQuery, map[string]any{
		"productId": productID,
		"count":     count,
	}, &resp)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query recommendations for %s: %w", productID, err)
	}

	return toCards(resp.Recommended), toCards(resp.Additional.items()), nil
}

// ProductTags returns the first `first` product tags of the shop.
func (c *Catalog) ProductTags(ctx context.Context, first int) ([]string, error) {
	var resp struct {
		ProductTags connection[string] `json:"productTags"`
	}
	if err := c.client.Query(ctx, productTagsQuery, map[string]any{"first": first}, &resp); err != nil {
		return nil, fmt.Errorf("failed to query product tags: %w", err)
	}
	return resp.ProductTags.items(), nil
}

// ProductTypes returns the first `first` product types of the shop.
func (c *Catalog) ProductTypes(ctx context.Context, first int) ([]string, error) {
	var resp struct {
		ProductTypes connection[string] `json:"productTypes"`
	}
	if err := c.client.Query(ctx, productTypesQuery, map[string]any{"first": first}, &resp); err != nil {
		return nil, fmt.Errorf("failed to query product types: %w", err)
	}
	return resp.ProductTypes.items(), nil
}

// SearchProducts runs a product search query such as `(tag:x) AND (product_type:y)`.
func (c *Catalog) SearchProducts(ctx context.Context, query string, first int) ([]entity.ProductCard, error) {
	var resp struct {
		Products connection[productCardNode] `json:"products"`
	}
	if err := c.client.Query(ctx, searchProductsQuery, map[string]any{
		"first": first,
		"query": query,
	}, &resp); err != nil {
		return nil, fmt.Errorf("failed to search products %q: %w", query, err)
	}
	return toCards(resp.Products.items()), nil
}
