package clerk

import (
	"context"
	"sort"

	"TrendZone/app/dal/activity"
	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/agent/intent"
	"TrendZone/app/services/clerk/internal/agent/normalize"
	"TrendZone/app/services/clerk/internal/agent/state"
	"TrendZone/app/services/clerk/internal/mq"

	"github.com/zeromicro/go-zero/core/logx"
)

const (
	filterLimit    = 5
	fallbackLimit  = 4
	inventoryLimit = 3
	recentActivity = 5
)

func (c *Clerk) handleSearch(ctx context.Context, t turnInput) (Response, effects) {
	res := c.resolver.Resolve(ctx, t.message)

	category := res.Category
	if category == "" {
		category = normalize.CategoryFor(normalize.Normalize(t.message).ProductKeywords)
	}

	c.publish(ctx, mq.ActivityEvent{
		SessionId: t.sessionId,
		UserId:    t.userId,
		Kind:      activity.KindSearch,
		Query:     res.Query,
		Category:  category,
	})

	if res.NoMatch {
		picks := c.recommendProducts(ctx, t, fallbackLimit)
		return Response{Message: msgNoMatch(res.Query, len(picks) > 0), Products: picks},
			effects{shown: picks, query: res.Query, setQuery: true, clearPending: true}
	}

	var action *Action
	if category != "" {
		action = FilterAction(FilterPayload{FilterType: "category", Value: category})
	} else {
		action = FilterAction(FilterPayload{FilterType: "search", Value: res.Query})
	}

	return Response{Message: msgSearchResults(res), Products: res.Products, Action: action},
		effects{
			shown: res.Products,
			query: res.Query, setQuery: true,
			category: category, setCategory: category != "",
			clearPending: true,
		}
}

func (c *Clerk) handleFilter(ctx context.Context, conv *state.Conversation, t turnInput) (Response, effects) {
	order := t.intent.SortOrder
	if order == "" {
		order = "asc"
	}

	products, err := c.deps.Catalog.List(ctx,
		catalog.Filter{Category: conv.LastCategory},
		catalog.Sort{Field: "price", Order: order})
	if err != nil {
		logx.WithContext(ctx).Errorw("filter query failed, sorting snapshot",
			logx.Field("err", err))
		products = append([]catalog.Product(nil), c.deps.Inventory.Snapshot(ctx)...)
		sort.Slice(products, func(i, j int) bool {
			if order == "desc" {
				return products[i].Price > products[j].Price
			}
			return products[i].Price < products[j].Price
		})
	}
	if len(products) > filterLimit {
		products = products[:filterLimit]
	}

	action := FilterAction(FilterPayload{FilterType: "sort_by_price", Value: order})
	return Response{Message: msgSorted(order, len(products)), Products: products, Action: action},
		effects{shown: products, clearPending: true}
}

func (c *Clerk) handleInventoryCheck(ctx context.Context, t turnInput) (Response, effects) {
	res := c.resolver.Resolve(ctx, t.message)
	if res.NoMatch {
		return Response{Message: msgInventoryNotFound(res.Query)}, effects{}
	}

	matches := res.Products
	if len(matches) > inventoryLimit {
		matches = matches[:inventoryLimit]
	}
	size := intent.ExtractSize(t.message)

	return Response{Message: msgStockStatus(matches[0], size), Products: matches},
		effects{shown: matches}
}

func (c *Clerk) handleRecommend(ctx context.Context, t turnInput) (Response, effects) {
	picks := c.recommendProducts(ctx, t, fallbackLimit)
	return Response{Message: msgRecommend(len(picks)), Products: picks},
		effects{shown: picks, clearPending: true}
}

func (c *Clerk) handleHaggle(ctx context.Context, t turnInput) (Response, effects) {
	out := c.deps.Haggler.Process(ctx, t.message)
	resp := Response{Message: out.Message}
	if out.Granted {
		resp.Action = FilterAction(FilterPayload{Action: "apply_coupon", CouponCode: out.Code})
	}
	return resp, effects{}
}

// recommendProducts walks the fallback chain: what the session actually
// looked at, then the newest items in the catalog, then a small bundled
// default so there is always something to show.
func (c *Clerk) recommendProducts(ctx context.Context, t turnInput, limit int) []catalog.Product {
	var picks []catalog.Product

	ids, err := c.deps.Activity.RecentProductIds(ctx, t.sessionId, t.userId, recentActivity)
	if err != nil {
		logx.WithContext(ctx).Errorw("reading session activity failed",
			logx.Field("err", err))
	}
	for _, id := range ids {
		p, err := c.deps.Catalog.GetById(ctx, id)
		if err != nil || p == nil {
			continue
		}
		picks = append(picks, *p)
	}

	if len(picks) == 0 {
		newest, err := c.deps.Catalog.List(ctx, catalog.Filter{},
			catalog.Sort{Field: "created_at", Order: "desc"})
		if err != nil {
			logx.WithContext(ctx).Errorw("newest products query failed",
				logx.Field("err", err))
		}
		picks = newest
	}

	if len(picks) == 0 {
		picks = append(picks, defaultPicks...)
	}

	if len(picks) > limit {
		picks = picks[:limit]
	}
	return picks
}

// defaultPicks keeps the recommendation chain from ever coming up empty,
// even on a cold catalog.
var defaultPicks = []catalog.Product{
	{Id: "tz-classic-tee", Name: "Classic White Tee", Category: "Clothes", Price: 19.99, Sizes: []string{"S", "M", "L", "XL"}, Stock: 25},
	{Id: "tz-daily-sneaker", Name: "Daily White Sneaker", Category: "Shoes", Price: 59.99, Sizes: []string{"40", "41", "42", "43"}, Stock: 12},
	{Id: "tz-canvas-tote", Name: "Everyday Canvas Tote", Category: "Bags", Price: 24.99, Stock: 18},
	{Id: "tz-wool-scarf", Name: "Soft Wool Scarf", Category: "Accessories", Price: 14.99, Stock: 30},
}
