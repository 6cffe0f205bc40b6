package mq

// ActivityEvent flows over the shop-activity topic. The storefront emits
// product_view events; the clerk emits search and add_to_cart events for
// its own turns.
type ActivityEvent struct {
	SessionId string `json:"session_id"`
	UserId    int64  `json:"user_id,omitempty"`
	Kind      string `json:"kind"`
	ProductId string `json:"product_id,omitempty"`
	Query     string `json:"query,omitempty"`
	Category  string `json:"category,omitempty"`
}
