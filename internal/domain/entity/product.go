package entity

import (
	"fmt"
	"strconv"
)

// Money is a decimal amount as returned by the commerce API.
type Money struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

// Float parses the decimal amount.
func (m Money) Float() (float64, error) {
	f, err := strconv.ParseFloat(m.Amount, 64)
	if err != nil {
		return 0, fmt.Errorf("parse money amount %q: %w", m.Amount, err)
	}
	return f, nil
}

type Image struct {
	ID      string `json:"id,omitempty"`
	URL     string `json:"url"`
	AltText string `json:"altText,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// SelectedOption is one name/value pair of a variant's configuration.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Option is a named axis of product configuration with its permitted values, in order.
type Option struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// Variant is one purchasable configuration of a Product.
type Variant struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	SKU              string           `json:"sku,omitempty"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
	Price            *Money           `json:"price,omitempty"`
	CompareAtPrice   *Money           `json:"compareAtPrice,omitempty"`
	UnitPrice        *Money           `json:"unitPrice,omitempty"`
	Image            *Image           `json:"image,omitempty"`
	ProductTitle     string           `json:"productTitle,omitempty"`
	ProductHandle    string           `json:"productHandle,omitempty"`
}

// Options returns the variant's selections as a name to value map.
func (v Variant) Options() map[string]string {
	out := make(map[string]string, len(v.SelectedOptions))
	for _, so := range v.SelectedOptions {
		out[so.Name] = so.Value
	}
	return out
}

type SEO struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// Product is a catalog product as fetched for its detail page.
type Product struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Vendor          string      `json:"vendor,omitempty"`
	Handle          string      `json:"handle"`
	Description     string      `json:"description,omitempty"`
	DescriptionHTML string      `json:"descriptionHtml,omitempty"`
	Options         []Option    `json:"options"`
	Variants        []Variant   `json:"variants"`
	SelectedVariant *Variant    `json:"selectedVariant,omitempty"`
	Media           []MediaItem `json:"-"`
	SEO             SEO         `json:"seo"`
}

// DefaultVariant returns the first variant, the one whose options fill unselected choices.
func (p Product) DefaultVariant() (Variant, bool) {
	if len(p.Variants) == 0 {
		return Variant{}, false
	}
	return p.Variants[0], true
}

// ProductCard is the compact product shape used by swimlanes and quiz suggestions.
type ProductCard struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Handle        string    `json:"handle"`
	Vendor        string    `json:"vendor,omitempty"`
	ProductType   string    `json:"productType,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	PublishedAt   string    `json:"publishedAt,omitempty"`
	FeaturedImage *Image    `json:"featuredImage,omitempty"`
	Variants      []Variant `json:"variants,omitempty"`
}

type Policy struct {
	Handle string `json:"handle"`
	Body   string `json:"body"`
}

type Shop struct {
	Name           string  `json:"name"`
	ShippingPolicy *Policy `json:"shippingPolicy,omitempty"`
	RefundPolicy   *Policy `json:"refundPolicy,omitempty"`
}
