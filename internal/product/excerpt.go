package product

import (
	"strings"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
	"github.com/PuerkitoBio/goquery"
)

const noContent = "No content"

// Excerpt returns the text of the first paragraph of an HTML body, or the whole text when the
// body has no paragraphs.
func Excerpt(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return noContent
	}

	text := strings.TrimSpace(doc.Find("p").First().Text())
	if text == "" {
		text = strings.TrimSpace(doc.Text())
	}
	if text == "" {
		return noContent
	}
	return text
}

// PolicyDetail is a short policy summary shown next to the purchase form.
type PolicyDetail struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	LearnMore string `json:"learnMore"`
}

func policyDetail(title string, p *entity.Policy) (PolicyDetail, bool) {
	if p == nil || strings.TrimSpace(p.Body) == "" {
		return PolicyDetail{}, false
	}
	return PolicyDetail{
		Title:     title,
		Content:   Excerpt(p.Body),
		LearnMore: "/policies/" + p.Handle,
	}, true
}

// PolicyDetails returns the shipping and returns summaries the shop has configured.
func PolicyDetails(shop entity.Shop) []PolicyDetail {
	out := make([]PolicyDetail, 0, 2)
	if d, ok := policyDetail("Shipping", shop.ShippingPolicy); ok {
		out = append(out, d)
	}
	if d, ok := policyDetail("Returns", shop.RefundPolicy); ok {
		out = append(out, d)
	}
	return out
}
