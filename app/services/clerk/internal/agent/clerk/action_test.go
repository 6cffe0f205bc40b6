package clerk

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionWireShape(t *testing.T) {
	tests := []struct {
		name   string
		action *Action
		want   string
	}{
		{
			"category filter",
			FilterAction(FilterPayload{FilterType: "category", Value: "Shoes"}),
			`{"type":"filter","payload":{"filter_type":"category","value":"Shoes"}}`,
		},
		{
			"coupon filter",
			FilterAction(FilterPayload{Action: "apply_coupon", CouponCode: "BDAY-15A7QZ"}),
			`{"type":"filter","payload":{"action":"apply_coupon","coupon_code":"BDAY-15A7QZ"}}`,
		},
		{
			"add to cart",
			AddToCartAction(AddToCartPayload{ProductId: "p1", Size: "42", Quantity: 1}),
			`{"type":"add_to_cart","payload":{"product_id":"p1","size":"42","quantity":1}}`,
		},
		{
			"navigate",
			NavigateAction("/cart"),
			`{"type":"navigate","payload":{"target":"/cart"}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.action)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(raw))
		})
	}
}
