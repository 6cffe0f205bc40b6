package clerk

import (
	"context"
	"strings"

	"TrendZone/app/dal/activity"
	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/agent/state"
	"TrendZone/app/services/clerk/internal/mq"

	"github.com/zeromicro/go-zero/core/logx"
)

func (c *Clerk) handleAddToCart(ctx context.Context, conv *state.Conversation, t turnInput) (Response, effects) {
	p, miss := c.resolveAddTarget(ctx, conv, t)
	if p == nil {
		return Response{Message: miss}, effects{}
	}

	size := t.intent.Size
	if size == "" && len(p.Sizes) == 1 {
		size = p.Sizes[0]
	}

	// Committing a multi-size product without a size is never allowed;
	// park the product and ask instead.
	if size == "" && len(p.Sizes) > 1 {
		return Response{Message: msgAskSize(*p), Products: []catalog.Product{*p}},
			effects{setPending: p}
	}

	if size != "" && !p.OneSize() && !p.HasSize(size) {
		return Response{Message: msgInvalidSize(*p, size)}, effects{}
	}

	return c.completeAdd(ctx, t, p, size)
}

func (c *Clerk) handleSizeResponse(ctx context.Context, conv *state.Conversation, t turnInput) (Response, effects) {
	p := conv.PendingSize
	if p == nil && len(conv.LastShown) > 0 {
		p = &conv.LastShown[0]
	}
	if p == nil {
		return Response{Message: msgWhichItem}, effects{}
	}

	size := t.intent.Size
	if !p.OneSize() && !p.HasSize(size) {
		// Pending stays set so the shopper can answer again.
		return Response{Message: msgInvalidSize(*p, size)}, effects{}
	}
	return c.completeAdd(ctx, t, p, size)
}

// completeAdd is the single point that talks to the cart. The pending slot
// is cleared only when the add actually lands.
func (c *Clerk) completeAdd(ctx context.Context, t turnInput, p *catalog.Product, size string) (Response, effects) {
	if p.Stock <= 0 {
		return Response{Message: msgOutOfStock(*p)}, effects{}
	}

	if err := c.deps.Cart.Add(ctx, t.sessionId, t.userId, p.Id, size, 1); err != nil {
		logx.WithContext(ctx).Errorw("cart add failed",
			logx.Field("product_id", p.Id), logx.Field("err", err))
		return Response{Message: msgCartTrouble}, effects{}
	}

	c.publish(ctx, mq.ActivityEvent{
		SessionId: t.sessionId,
		UserId:    t.userId,
		Kind:      activity.KindAddToCart,
		ProductId: p.Id,
	})

	action := AddToCartAction(AddToCartPayload{ProductId: p.Id, Size: size, Quantity: 1})
	return Response{Message: msgAdded(*p, size), Products: []catalog.Product{*p}, Action: action},
		effects{clearPending: true}
}

// resolveAddTarget finds the product the shopper means, from the most
// explicit signal to the least: ordinal into the shown list, a named
// product from context, the pending slot, the head of the shown list for a
// bare affirmative, and finally a word scan over the whole inventory.
func (c *Clerk) resolveAddTarget(ctx context.Context, conv *state.Conversation, t turnInput) (*catalog.Product, string) {
	in := t.intent

	if in.Ordinal != 0 && len(conv.LastShown) > 0 {
		idx := in.Ordinal
		if idx == -1 {
			idx = len(conv.LastShown)
		}
		if idx < 1 || idx > len(conv.LastShown) {
			return nil, msgOrdinalOutOfRange(len(conv.LastShown))
		}
		p := conv.LastShown[idx-1]
		return &p, ""
	}

	if in.ProductHint != "" {
		for i := range conv.LastShown {
			if strings.EqualFold(conv.LastShown[i].Name, in.ProductHint) ||
				strings.Contains(strings.ToLower(conv.LastShown[i].Name), strings.ToLower(in.ProductHint)) {
				p := conv.LastShown[i]
				return &p, ""
			}
		}
	}

	if p := scanByWords(conv.LastShown, t.message); p != nil {
		return p, ""
	}

	if conv.PendingSize != nil {
		return conv.PendingSize, ""
	}

	if p := scanByWords(c.deps.Inventory.Snapshot(ctx), t.message); p != nil {
		return p, ""
	}
	return nil, msgWhichItem
}

var scanStopwords = map[string]struct{}{
	"the": {}, "and": {}, "add": {}, "buy": {}, "get": {}, "take": {},
	"one": {}, "that": {}, "this": {}, "please": {}, "cart": {},
	"want": {}, "order": {}, "can": {}, "you": {}, "for": {},
}

// scanByWords matches message words longer than two characters against
// product names, skipping filler words.
func scanByWords(products []catalog.Product, message string) *catalog.Product {
	for _, word := range strings.Fields(strings.ToLower(message)) {
		if len(word) <= 2 {
			continue
		}
		if _, skip := scanStopwords[word]; skip {
			continue
		}
		for i := range products {
			if strings.Contains(strings.ToLower(products[i].Name), word) {
				p := products[i]
				return &p
			}
		}
	}
	return nil
}
