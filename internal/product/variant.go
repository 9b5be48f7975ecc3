package product

import (
	"net/url"
	"regexp"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
)

// dropdownThreshold is the number of option values above which the page renders a dropdown.
const dropdownThreshold = 7

var localePrefix = regexp.MustCompile(`^/[a-zA-Z]{2}-[a-zA-Z]{2}/`)

// ResolveVariantOptions returns a new name to value mapping holding, for every option of the
// product, the selected value or else the default variant's value. Selected names that are not
// options of the product are carried over unchanged. selected is never modified.
func ResolveVariantOptions(options []entity.Option, selected map[string]string, defaultVariant *entity.Variant) map[string]string {
	resolved := make(map[string]string, len(options)+len(selected))
	for name, value := range selected {
		resolved[name] = value
	}

	var defaults map[string]string
	if defaultVariant != nil {
		defaults = defaultVariant.Options()
	}

	for _, opt := range options {
		if _, ok := resolved[opt.Name]; ok {
			continue
		}
		if value, ok := defaults[opt.Name]; ok {
			resolved[opt.Name] = value
		}
	}
	return resolved
}

// VisibleOptions drops options with a single value; there is nothing to choose for them.
func VisibleOptions(options []entity.Option) []entity.Option {
	out := make([]entity.Option, 0, len(options))
	for _, opt := range options {
		if len(opt.Values) > 1 {
			out = append(out, opt)
		}
	}
	return out
}

// SelectedVariant is the variant the API resolved for the selection, falling back to the
// default variant. It is nil for a product without variants.
func SelectedVariant(p entity.Product) *entity.Variant {
	if p.SelectedVariant != nil {
		return p.SelectedVariant
	}
	if v, ok := p.DefaultVariant(); ok {
		return &v
	}
	return nil
}

func IsOnSale(v *entity.Variant) bool {
	if v == nil || v.Price == nil || v.CompareAtPrice == nil {
		return false
	}
	price, err := v.Price.Float()
	if err != nil {
		return false
	}
	compareAt, err := v.CompareAtPrice.Float()
	if err != nil {
		return false
	}
	return price < compareAt
}

func IsOutOfStock(v *entity.Variant) bool {
	return v == nil || !v.AvailableForSale
}

func UsesDropdown(opt entity.Option) bool {
	return len(opt.Values) > dropdownThreshold
}

// OptionLink is the navigation target for choosing one value of an option.
type OptionLink struct {
	Value   string `json:"value"`
	To      string `json:"to"`
	Checked bool   `json:"checked"`
}

// OptionLinks builds, for each value of opt, a link to path with the resolved selection and
// that value chosen. A leading locale segment such as /en-us/ is removed from path.
func OptionLinks(path string, opt entity.Option, resolved map[string]string) []OptionLink {
	if localePrefix.MatchString(path) {
		path = localePrefix.ReplaceAllString(path, "/")
	}

	links := make([]OptionLink, 0, len(opt.Values))
	for _, value := range opt.Values {
		q := make(url.Values, len(resolved)+1)
		for name, v := range resolved {
			q.Set(name, v)
		}
		q.Set(opt.Name, value)

		links = append(links, OptionLink{
			Value:   value,
			To:      path + "?" + q.Encode(),
			Checked: resolved[opt.Name] == value,
		})
	}
	return links
}
