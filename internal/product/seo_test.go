package product

import (
	"testing"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSEO(t *testing.T) {
	p := entity.Product{
		ID:          "gid://shopify/Product/1",
		Title:       "Happy Birthday",
		Vendor:      "Ana Prints",
		Description: "A card",
		Media: []entity.MediaItem{
			entity.VideoMedia{ID: "v"},
			entity.ImageMedia{ID: "i", Image: entity.Image{URL: "https://cdn/a.jpg"}},
		},
	}

	seo := NewSEO(p)
	assert.Equal(t, "Happy Birthday", seo.Title)
	assert.Equal(t, "A card", seo.Description)
	require.NotNil(t, seo.Media)
	assert.Equal(t, "https://cdn/a.jpg", seo.Media.URL)
	assert.Equal(t, "Product", seo.JSONLD["@type"])
	assert.Equal(t, "Ana Prints", seo.JSONLD["brand"])

	p.SEO = entity.SEO{Title: "Custom", Description: "Custom description"}
	p.Media = nil
	seo = NewSEO(p)
	assert.Equal(t, "Custom", seo.Title)
	assert.Equal(t, "Custom description", seo.Description)
	assert.Nil(t, seo.Media)
}

func TestNewAnalytics(t *testing.T) {
	p := entity.Product{ID: "p1", Title: "Card", Vendor: "Ana"}
	v := &entity.Variant{ID: "v1", Title: "Red", Price: &entity.Money{Amount: "4.50", CurrencyCode: "USD"}}

	a := NewAnalytics(p, v)
	assert.Equal(t, "product", a.PageType)
	assert.Equal(t, "p1", a.ResourceID)
	assert.InDelta(t, 4.5, a.TotalValue, 1e-9)
	require.Len(t, a.Products, 1)
	assert.Equal(t, ProductAnalytics{ProductGID: "p1", VariantGID: "v1", Name: "Card", VariantName: "Red", Brand: "Ana", Price: "4.50"}, a.Products[0])

	none := NewAnalytics(p, nil)
	assert.Zero(t, none.TotalValue)
	assert.Empty(t, none.Products[0].VariantGID)
}
