package quiz

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/FrederickOB/test-hydrogen-app/internal/domain/entity"
)

var (
	ErrNotFound      = errors.New("quiz: not found")
	ErrInvalidQuery  = errors.New("quiz: invalid search query")
	ErrIncomplete    = errors.New("quiz: relationship, recipient and product type are required")
	ErrUnknownAnswer = errors.New("quiz: unknown answer")
)

// Relationship is the first quiz question: who the card is for, broadly.
type Relationship string

const (
	Business Relationship = "business"
	Personal Relationship = "personal"
)

func (r Relationship) Valid() bool {
	return r == Business || r == Personal
}

// RelationshipGroup lists the recipients offered for a relationship. A recipient doubles as
// the product tag searched for.
type RelationshipGroup struct {
	Relationship Relationship `json:"relationship"`
	Recipients   []string     `json:"recipients"`
}

// DefaultRelationships seeds the in-memory repository.
func DefaultRelationships() []RelationshipGroup {
	return []RelationshipGroup{
		{Relationship: Business, Recipients: []string{"boss", "colleague", "employee", "client", "mentor"}},
		{Relationship: Personal, Recipients: []string{"mom", "dad", "partner", "friend", "sibling", "grandparent"}},
	}
}

// Selection is a completed quiz.
type Selection struct {
	Relationship Relationship `json:"relationship"`
	Recipient    string       `json:"recipient"`
	ProductType  string       `json:"productType"`
}

func (s Selection) Validate() error {
	if s.Relationship == "" || strings.TrimSpace(s.Recipient) == "" || strings.TrimSpace(s.ProductType) == "" {
		return ErrIncomplete
	}
	if !s.Relationship.Valid() {
		return fmt.Errorf("relationship %q: %w", s.Relationship, ErrUnknownAnswer)
	}
	// `&` separates search path terms.
	if strings.Contains(s.Recipient, "&") {
		return fmt.Errorf("recipient %q contains '&': %w", s.Recipient, ErrUnknownAnswer)
	}
	if strings.Contains(s.ProductType, "&") {
		return fmt.Errorf("product type %q contains '&': %w", s.ProductType, ErrUnknownAnswer)
	}
	return nil
}

// SearchPath encodes the selection as `tag:<recipient>&product_type:<type>`.
func (s Selection) SearchPath() string {
	return "tag:" + s.Recipient + "&product_type:" + s.ProductType
}

// BuildSearchQuery turns a search path into a product search query: every `&` separated term
// is parenthesised and the terms are joined with AND.
func BuildSearchQuery(path string) (string, error) {
	terms := make([]string, 0, 2)
	for _, t := range strings.Split(path, "&") {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		terms = append(terms, "("+t+")")
	}
	if len(terms) == 0 {
		return "", ErrInvalidQuery
	}
	return strings.Join(terms, " AND "), nil
}

// SplitTitle splits a card title of the form `"Title" by Creator`. Quotes are removed from the
// title; creator is empty when the title names none.
func SplitTitle(title string) (name, creator string) {
	parts := strings.Split(title, " by ")
	name = strings.NewReplacer(`"`, "", `'`, "").Replace(parts[0])
	if len(parts) > 1 {
		creator = parts[1]
	}
	return name, creator
}

// Suggestion is a product card with its title split for display.
type Suggestion struct {
	entity.ProductCard
	DisplayTitle string `json:"displayTitle"`
	Creator      string `json:"creator"`
}

// Suggestions is the quiz result page.
type Suggestions struct {
	Query    string       `json:"query"`
	Featured []Suggestion `json:"featured"`
	More     []Suggestion `json:"more"`
	Total    int          `json:"total"`
}

const (
	featuredCount = 3
	moreFrom      = 4
	moreTo        = 8
)

// NewSuggestions lays out search results: the first three are featured and items 4 to 7 are
// shown as smaller cards. The fourth result is not shown.
func NewSuggestions(query string, items []entity.ProductCard) Suggestions {
	return Suggestions{
		Query:    query,
		Featured: toSuggestions(window(items, 0, featuredCount)),
		More:     toSuggestions(window(items, moreFrom, moreTo)),
		Total:    len(items),
	}
}

func window(items []entity.ProductCard, from, to int) []entity.ProductCard {
	from = min(from, len(items))
	to = min(to, len(items))
	return slices.Clone(items[from:to])
}

func toSuggestions(items []entity.ProductCard) []Suggestion {
	out := make([]Suggestion, 0, len(items))
	for _, p := range items {
		name, creator := SplitTitle(p.Title)
		out = append(out, Suggestion{ProductCard: p, DisplayTitle: name, Creator: creator})
	}
	return out
}
