package product

import "github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"

type SEO struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Media       *entity.Image  `json:"media,omitempty"`
	JSONLD      map[string]any `json:"jsonLd"`
}

// NewSEO falls back to the product title and description when the SEO fields are empty,
// and uses the first image media as the share image.
func NewSEO(p entity.Product) SEO {
	seo := SEO{
		Title:       p.SEO.Title,
		Description: p.SEO.Description,
		JSONLD: map[string]any{
			"@context": "https://schema.org",
			"@type":    "Product",
			"brand":    p.Vendor,
			"name":     p.Title,
		},
	}
	if seo.Title == "" {
		seo.Title = p.Title
	}
	if seo.Description == "" {
		seo.Description = p.Description
	}
	for _, m := range p.Media {
		if img, ok := m.(entity.ImageMedia); ok {
			image := img.Image
			seo.Media = &image
			break
		}
	}
	return seo
}

// ProductAnalytics describes the viewed product for the analytics payload.
type ProductAnalytics struct {
	ProductGID  string `json:"productGid"`
	VariantGID  string `json:"variantGid,omitempty"`
	Name        string `json:"name"`
	VariantName string `json:"variantName,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Price       string `json:"price,omitempty"`
}

type Analytics struct {
	PageType   string             `json:"pageType"`
	ResourceID string             `json:"resourceId"`
	Products   []ProductAnalytics `json:"products"`
	TotalValue float64            `json:"totalValue"`
}

func NewAnalytics(p entity.Product, selected *entity.Variant) Analytics {
	pa := ProductAnalytics{
		ProductGID: p.ID,
		Name:       p.Title,
		Brand:      p.Vendor,
	}
	var total float64
	if selected != nil {
		pa.VariantGID = selected.ID
		pa.VariantName = selected.Title
		if selected.Price != nil {
			pa.Price = selected.Price.Amount
			if f, err := selected.Price.Float(); err == nil {
				total = f
			}
		}
	}
	return Analytics{
		PageType:   "product",
		ResourceID: p.ID,
		Products:   []ProductAnalytics{pa},
		TotalValue: total,
	}
}
