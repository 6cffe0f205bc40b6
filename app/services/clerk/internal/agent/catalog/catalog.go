// Package catalog exposes the product store to the clerk agent and owns the
// short-lived process-wide inventory snapshot the agent reasons over.
package catalog

import (
	"context"
	"strings"
	"time"
)

// Product is the agent's read-only view of one catalog item. Stock is
// tracked at the product level only; sizes list availability, not per-size
// stock.
type Product struct {
	Id          string
	Name        string
	Description string
	Category    string
	Price       float64
	Sizes       []string
	Colors      []string
	Tags        []string
	Stock       int64
	ImageUrl    string
	CreatedAt   time.Time
}

// Filter mirrors the catalog collaborator contract.
type Filter struct {
	Category string
	MinPrice float64
	MaxPrice float64
	InStock  bool
}

type Sort struct {
	Field string // price | name | created_at
	Order string // asc | desc
}

// Catalog is the product store collaborator.
type Catalog interface {
	List(ctx context.Context, f Filter, s Sort) ([]Product, error)
	GetById(ctx context.Context, id string) (*Product, error)
	TextSearch(ctx context.Context, terms []string) ([]Product, error)
}

// HasSize reports whether size is in the product's size list,
// case-insensitively. Products with no sizes are one-size.
func (p Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if strings.EqualFold(s, size) {
			return true
		}
	}
	return false
}

// OneSize reports whether the product carries no size variants.
func (p Product) OneSize() bool {
	return len(p.Sizes) == 0
}

// searchText is the haystack used for keyword and color matching.
func (p Product) searchText() string {
	parts := []string{p.Name, p.Description, p.Category}
	parts = append(parts, p.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// MatchesAnyTerm reports whether any term appears in the product's name,
// description, category or tags.
func (p Product) MatchesAnyTerm(terms []string) bool {
	if len(terms) == 0 {
		return false
	}
	hay := p.searchText()
	for _, t := range terms {
		if t != "" && strings.Contains(hay, strings.ToLower(t)) {
			return true
		}
	}
	return false
}

// MentionsColor reports whether the color appears in the product's colors
// list or anywhere in its descriptive text.
func (p Product) MentionsColor(color string) bool {
	if color == "" {
		return false
	}
	c := strings.ToLower(color)
	for _, pc := range p.Colors {
		if strings.Contains(strings.ToLower(pc), c) {
			return true
		}
	}
	return strings.Contains(p.searchText(), c)
}
