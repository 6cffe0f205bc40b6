// Package search turns a raw shopper message into a ranked product list.
package search

import (
	"context"

	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/agent/normalize"

	"github.com/zeromicro/go-zero/core/logx"
)

const defaultLimit = 6

// Result is what a search turn reports back to the clerk. A resolver never
// fails a turn; store errors degrade to the in-memory snapshot and an empty
// result is flagged with NoMatch.
type Result struct {
	Products []catalog.Product
	Query    string // spell-corrected query, echoed back to the shopper
	Category string // category fallback that produced the results, if any
	Color    string // color preference detected in the message
	NoMatch  bool
}

type Resolver struct {
	catalog   catalog.Catalog
	inventory *catalog.Inventory
	limit     int
}

func NewResolver(c catalog.Catalog, inv *catalog.Inventory) *Resolver {
	return &Resolver{catalog: c, inventory: inv, limit: defaultLimit}
}

// Resolve runs the search ladder: corrected keywords, then the query with
// the color stripped, then a category guess, preferring color matches when
// the shopper named one.
func (r *Resolver) Resolve(ctx context.Context, message string) Result {
	n := normalize.Normalize(message)
	result := Result{Query: n.CorrectedQuery, Color: n.Color}

	terms := n.ProductKeywords
	if len(terms) == 0 {
		terms = normalize.FallbackTerms(n.CorrectedQuery)
	}

	hits := r.find(ctx, terms)

	if len(hits) == 0 && n.Color != "" {
		if stripped := without(terms, n.Color); len(stripped) > 0 && len(stripped) < len(terms) {
			hits = r.find(ctx, stripped)
		}
	}

	if len(hits) == 0 {
		if category := normalize.CategoryFor(n.ProductKeywords); category != "" {
			listed, err := r.catalog.List(ctx, catalog.Filter{Category: category}, catalog.Sort{})
			if err != nil {
				logx.WithContext(ctx).Errorw("category fallback failed",
					logx.Field("category", category), logx.Field("err", err))
			} else if len(listed) > 0 {
				hits = listed
				result.Category = category
			}
		}
	}

	if n.Color != "" {
		var colored []catalog.Product
		for _, p := range hits {
			if p.MentionsColor(n.Color) {
				colored = append(colored, p)
			}
		}
		if len(colored) > 0 {
			hits = colored
		}
	}

	if len(hits) > r.limit {
		hits = hits[:r.limit]
	}
	result.Products = hits
	result.NoMatch = len(hits) == 0
	return result
}

// find queries the store, falling back to a scan of the cached inventory
// when the store call fails.
func (r *Resolver) find(ctx context.Context, terms []string) []catalog.Product {
	if len(terms) == 0 {
		return nil
	}
	hits, err := r.catalog.TextSearch(ctx, terms)
	if err == nil {
		return hits
	}
	logx.WithContext(ctx).Errorw("text search failed, scanning snapshot",
		logx.Field("err", err))
	var out []catalog.Product
	for _, p := range r.inventory.Snapshot(ctx) {
		if p.MatchesAnyTerm(terms) {
			out = append(out, p)
		}
	}
	return out
}

func without(terms []string, drop string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != drop {
			out = append(out, t)
		}
	}
	return out
}
