package product

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/FrederickOB/test-hydrogen-app/internal/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	product     entity.Product
	shop        entity.Shop
	err         error
	gotHandle   string
	gotSelected []entity.SelectedOption
}

func (s *stubCatalog) ProductByHandle(_ context.Context, handle string, selected []entity.SelectedOption) (entity.Product, entity.Shop, error) {
	s.gotHandle = handle
	s.gotSelected = selected
	return s.product, s.shop, s.err
}

type stubRecommender struct {
	items []entity.ProductCard
	err   error
	gotID string
}

func (s *stubRecommender) List(_ context.Context, productID string) ([]entity.ProductCard, error) {
	s.gotID = productID
	return s.items, s.err
}

func sampleProduct() entity.Product {
	return entity.Product{
		ID:     "gid://shopify/Product/1",
		Title:  "Happy Birthday",
		Handle: "happy-birthday",
		Vendor: "Ana Prints",
		Options: []entity.Option{
			{Name: "Color", Values: []string{"Red", "Blue"}},
			{Name: "Paper", Values: []string{"Matte"}},
		},
		Variants: []entity.Variant{{
			ID:               "gid://shopify/ProductVariant/11",
			Title:            "Red / Matte",
			AvailableForSale: true,
			SelectedOptions: []entity.SelectedOption{
				{Name: "Color", Value: "Red"},
				{Name: "Paper", Value: "Matte"},
			},
			Price:          &entity.Money{Amount: "4.50", CurrencyCode: "USD"},
			CompareAtPrice: &entity.Money{Amount: "6.00", CurrencyCode: "USD"},
		}},
		Media: []entity.MediaItem{entity.ImageMedia{ID: "m1", Image: entity.Image{URL: "https://cdn/a.jpg"}}},
	}
}

func TestService_Page(t *testing.T) {
	catalog := &stubCatalog{
		product: sampleProduct(),
		shop:    entity.Shop{Name: "Cards", ShippingPolicy: &entity.Policy{Handle: "shipping", Body: "<p>Fast.</p>"}},
	}
	rec := &stubRecommender{items: []entity.ProductCard{{ID: "p2"}}}
	svc := NewService(catalog, rec)

	page, err := svc.Page(context.Background(), "happy-birthday", map[string]string{"Paper": "Matte", "Color": "Blue"})
	require.NoError(t, err)

	assert.Equal(t, "happy-birthday", catalog.gotHandle)
	assert.Equal(t, []entity.SelectedOption{{Name: "Color", Value: "Blue"}, {Name: "Paper", Value: "Matte"}}, catalog.gotSelected)
	assert.Equal(t, "gid://shopify/Product/1", rec.gotID)

	assert.Equal(t, "Cards", page.ShopName)
	assert.Equal(t, map[string]string{"Color": "Blue", "Paper": "Matte"}, page.SelectedOptions)
	require.NotNil(t, page.SelectedVariant)
	assert.Equal(t, "gid://shopify/ProductVariant/11", page.SelectedVariant.ID)
	assert.True(t, page.IsOnSale)
	assert.False(t, page.IsOutOfStock)

	require.Len(t, page.Options, 1, "single-value options are hidden")
	assert.Equal(t, "Color", page.Options[0].Name)
	assert.Equal(t, "Blue", page.Options[0].Selected)
	require.Len(t, page.Options[0].Values, 2)
	assert.True(t, page.Options[0].Values[1].Checked)

	assert.Equal(t, "m1", page.Gallery.SelectedID)
	require.Len(t, page.Policies, 1)
	assert.Equal(t, "Happy Birthday", page.SEO.Title)
	assert.InDelta(t, 4.5, page.Analytics.TotalValue, 1e-9)
	assert.Equal(t, []entity.ProductCard{{ID: "p2"}}, page.Recommended)
	assert.Empty(t, page.RecommendedError)
}

func TestService_Page_RecommendationsFailureDegrades(t *testing.T) {
	svc := NewService(&stubCatalog{product: sampleProduct()}, &stubRecommender{err: errors.New("timeout")})

	page, err := svc.Page(context.Background(), "happy-birthday", nil)
	require.NoError(t, err)
	assert.Empty(t, page.Recommended)
	assert.NotNil(t, page.Recommended)
	assert.Equal(t, "There was a problem loading related products", page.RecommendedError)
	assert.Equal(t, map[string]string{"Color": "Red", "Paper": "Matte"}, page.SelectedOptions)
}

func TestService_Page_NotFound(t *testing.T) {
	catalog := &stubCatalog{err: fmt.Errorf("product nope: %w", storefront.ErrNotFound)}
	rec := &stubRecommender{}
	svc := NewService(catalog, rec)

	_, err := svc.Page(context.Background(), "nope", nil)
	assert.ErrorIs(t, err, storefront.ErrNotFound)
	assert.Empty(t, rec.gotID, "recommendations are not loaded for a missing product")
}

func TestService_Page_NoVariants(t *testing.T) {
	p := sampleProduct()
	p.Variants = nil
	svc := NewService(&stubCatalog{product: p}, &stubRecommender{})

	page, err := svc.Page(context.Background(), "happy-birthday", map[string]string{})
	require.NoError(t, err)
	assert.Nil(t, page.SelectedVariant)
	assert.True(t, page.IsOutOfStock)
	assert.False(t, page.IsOnSale)
	assert.Empty(t, page.SelectedOptions)
}
