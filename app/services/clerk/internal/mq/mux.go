package mq

import (
	"context"
	"encoding/json"
	"time"

	"TrendZone/app/common/consts/biz"
	"TrendZone/app/dal/coupon"
	"TrendZone/app/services/clerk/internal/agent/haggle"

	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

// NewServeMux registers the clerk's delayed tasks.
func NewServeMux(coupons coupon.CouponsModel) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(biz.TaskExpireCoupon, expireCouponsHandler(coupons))
	return mux
}

// expireCouponsHandler runs when an agent coupon's validity window lapses.
// It sweeps every overdue agent coupon, so a lost task is covered by the
// next one that fires.
func expireCouponsHandler(coupons coupon.CouponsModel) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload haggle.ExpirePayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			logx.WithContext(ctx).Errorw("bad expire payload",
				logx.Field("err", err))
			return nil
		}
		expired, err := coupons.ExpireAgentCoupons(ctx, time.Now())
		if err != nil {
			return err
		}
		logx.WithContext(ctx).Infow("expired agent coupons",
			logx.Field("coupon_id", payload.CouponId),
			logx.Field("count", expired))
		return nil
	}
}
