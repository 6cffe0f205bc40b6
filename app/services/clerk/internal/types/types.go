// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

import "TrendZone/app/services/clerk/internal/agent/clerk"

type ChatReq struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
}

type ProductView struct {
	Id          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Stock       int64    `json:"stock"`
	ImageUrl    string   `json:"image_url,omitempty"`
}

type ChatData struct {
	Message  string        `json:"message"`
	Products []ProductView `json:"products,omitempty"`
	Action   *clerk.Action `json:"action,omitempty"`
}

type ResetReq struct {
	SessionId string `json:"session_id"`
}

type ContextReq struct {
	SessionId string `form:"session_id"`
}

type ContextData struct {
	InventoryCount     int      `json:"inventory_count"`
	ActivityCount      int64    `json:"activity_count"`
	PendingSizeProduct string   `json:"pending_size_product,omitempty"`
	LastShown          []string `json:"last_shown,omitempty"`
	LastQuery          string   `json:"last_query,omitempty"`
	LastCategory       string   `json:"last_category,omitempty"`
	Topics             []string `json:"topics,omitempty"`
}
