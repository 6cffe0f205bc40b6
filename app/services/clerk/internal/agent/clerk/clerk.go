// Package clerk is the conversational shopping assistant: it classifies a
// turn, runs the matching handler, and reports a message, an optional
// product list and an optional UI action.
package clerk

import (
	"context"

	"TrendZone/app/services/clerk/internal/agent/catalog"
	"TrendZone/app/services/clerk/internal/agent/haggle"
	"TrendZone/app/services/clerk/internal/agent/intent"
	"TrendZone/app/services/clerk/internal/agent/search"
	"TrendZone/app/services/clerk/internal/agent/state"
	"TrendZone/app/services/clerk/internal/mq"

	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
)

// Cart commits an add and reports the session's item count. Re-adding the
// same product is the shopper's call; deduplication happens behind this
// interface, not here.
type Cart interface {
	Add(ctx context.Context, sessionId string, userId int64, productId, size string, quantity int) error
	Count(ctx context.Context, sessionId string) (int, error)
}

// Haggler runs the discount negotiation flow.
type Haggler interface {
	Process(ctx context.Context, message string) haggle.Outcome
}

// Activity reads back a session's tracked behavior for recommendations.
type Activity interface {
	RecentProductIds(ctx context.Context, sessionId string, userId int64, limit int) ([]string, error)
}

// Publisher emits activity events. May be nil when Kafka is not configured.
type Publisher interface {
	Publish(ctx context.Context, ev mq.ActivityEvent) error
}

type Deps struct {
	Sessions  *state.Sessions
	Catalog   catalog.Catalog
	Inventory *catalog.Inventory
	Cart      Cart
	Haggler   Haggler
	Activity  Activity
	Publisher Publisher           // optional
	ChatModel model.BaseChatModel // optional, used only to phrase replies
}

type Clerk struct {
	deps     Deps
	resolver *search.Resolver
}

func New(deps Deps) *Clerk {
	return &Clerk{
		deps:     deps,
		resolver: search.NewResolver(deps.Catalog, deps.Inventory),
	}
}

// Sessions exposes the session store for the reset and context endpoints.
func (c *Clerk) Sessions() *state.Sessions {
	return c.deps.Sessions
}

// Inventory exposes the snapshot cache for the context endpoint.
func (c *Clerk) Inventory() *catalog.Inventory {
	return c.deps.Inventory
}

// HandleTurn processes one utterance to completion. The session's
// conversation is locked for the whole turn; state mutations are collected
// as effects and applied only after the handler returns, so a panicking
// turn leaves the conversation exactly as it was and the shopper can retry.
func (c *Clerk) HandleTurn(ctx context.Context, sessionId string, userId int64, message string) (resp Response) {
	conv := c.deps.Sessions.Get(sessionId)
	conv.Lock()
	defer conv.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logx.WithContext(ctx).Errorw("turn failed",
				logx.Field("session_id", sessionId), logx.Field("panic", r))
			resp = Response{Message: msgApology}
		}
	}()

	in := intent.Classify(message, intent.Context{
		PendingSize: conv.PendingSize != nil,
		ShownCount:  len(conv.LastShown),
		ShownNames:  shownNames(conv.LastShown),
	})

	turn := turnInput{sessionId: sessionId, userId: userId, message: message, intent: in}

	var fx effects
	switch in.Type {
	case intent.TypeSizeResponse:
		resp, fx = c.handleSizeResponse(ctx, conv, turn)
	case intent.TypeAddToCart:
		resp, fx = c.handleAddToCart(ctx, conv, turn)
	case intent.TypeHaggle:
		resp, fx = c.handleHaggle(ctx, turn)
	case intent.TypeFilter:
		resp, fx = c.handleFilter(ctx, conv, turn)
	case intent.TypeSearch:
		resp, fx = c.handleSearch(ctx, turn)
	case intent.TypeInventoryCheck:
		resp, fx = c.handleInventoryCheck(ctx, turn)
	case intent.TypeRecommend:
		resp, fx = c.handleRecommend(ctx, turn)
	default:
		resp, fx = c.handleGeneral(ctx, conv, turn)
	}

	fx.topic = string(in.Type)
	fx.apply(conv)
	return resp
}

type turnInput struct {
	sessionId string
	userId    int64
	message   string
	intent    intent.Intent
}

// effects is the set of state mutations a handler wants, applied only when
// the turn completes without panicking.
type effects struct {
	setPending   *catalog.Product
	clearPending bool
	shown        []catalog.Product
	query        string
	setQuery     bool
	category     string
	setCategory  bool
	topic        string
}

func (e effects) apply(conv *state.Conversation) {
	if e.clearPending {
		conv.PendingSize = nil
	}
	if e.setPending != nil {
		conv.PendingSize = e.setPending
	}
	if len(e.shown) > 0 {
		conv.LastShown = e.shown
	}
	if e.setQuery {
		conv.LastQuery = e.query
	}
	if e.setCategory {
		conv.LastCategory = e.category
	}
	if e.topic != "" {
		conv.PushTopic(e.topic)
	}
}

func shownNames(products []catalog.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}

func (c *Clerk) publish(ctx context.Context, ev mq.ActivityEvent) {
	if c.deps.Publisher == nil {
		return
	}
	// Best effort; the turn never fails on a tracking miss.
	_ = c.deps.Publisher.Publish(ctx, ev)
}
