package clerk

import (
	"encoding/json"

	"TrendZone/app/services/clerk/internal/agent/catalog"
)

type ActionType string

const (
	ActionFilter    ActionType = "filter"
	ActionAddToCart ActionType = "add_to_cart"
	ActionNavigate  ActionType = "navigate"
)

// FilterPayload mutates the shop page's category, sort or coupon state.
type FilterPayload struct {
	FilterType string `json:"filter_type,omitempty"` // category | sort_by_price | search
	Value      string `json:"value,omitempty"`
	Action     string `json:"action,omitempty"` // apply_coupon
	CouponCode string `json:"coupon_code,omitempty"`
}

type AddToCartPayload struct {
	ProductId string `json:"product_id"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

type NavigatePayload struct {
	Target string `json:"target"`
}

// Action is a closed union: exactly one payload is set, matching Type.
// Construct values through the helpers below.
type Action struct {
	Type      ActionType
	Filter    *FilterPayload
	AddToCart *AddToCartPayload
	Navigate  *NavigatePayload
}

func FilterAction(p FilterPayload) *Action {
	return &Action{Type: ActionFilter, Filter: &p}
}

func AddToCartAction(p AddToCartPayload) *Action {
	return &Action{Type: ActionAddToCart, AddToCart: &p}
}

func NavigateAction(target string) *Action {
	return &Action{Type: ActionNavigate, Navigate: &NavigatePayload{Target: target}}
}

func (a Action) payload() any {
	switch a.Type {
	case ActionFilter:
		return a.Filter
	case ActionAddToCart:
		return a.AddToCart
	case ActionNavigate:
		return a.Navigate
	}
	return nil
}

// MarshalJSON keeps the wire shape the chat surface expects:
// {"type": ..., "payload": {...}}.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ActionType `json:"type"`
		Payload any        `json:"payload,omitempty"`
	}{Type: a.Type, Payload: a.payload()})
}

// Response is one assistant turn as consumed by the chat surface and the
// shop page.
type Response struct {
	Message  string
	Products []catalog.Product
	Action   *Action
}
