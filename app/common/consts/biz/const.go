package biz

import "time"

type CtxKey string

const (
	USER_KEY CtxKey = "user_id"

	ACCESSTOKEN = "access_token"

	// Inventory snapshot staleness window for the clerk agent.
	InventoryCacheTTL = 5 * time.Minute

	// Idle conversations are evicted after this long.
	SessionTTL = 30 * time.Minute

	// Agent-issued coupons stay redeemable for this long.
	CouponValidity = 30 * 24 * time.Hour

	// Asynq task issued when a coupon is created, delayed by CouponValidity.
	TaskExpireCoupon = "clerk:expire_coupons"
)

// Product categories carried by the catalog. The keyword table and the shop
// filter action only ever emit one of these.
const (
	CategoryClothes     = "Clothes"
	CategoryShoes       = "Shoes"
	CategoryBags        = "Bags"
	CategoryAccessories = "Accessories"
)
