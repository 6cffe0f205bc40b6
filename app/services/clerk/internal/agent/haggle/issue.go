package haggle

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"TrendZone/app/common/consts/biz"
	"TrendZone/app/common/snowflake"
	"TrendZone/app/dal/coupon"

	"github.com/cloudwego/eino/components/model"
	"github.com/hibiken/asynq"
	"github.com/zeromicro/go-zero/core/logx"
)

const usageLimit = 1

// CouponStore persists issued coupons.
type CouponStore interface {
	Insert(ctx context.Context, data *coupon.Coupons) (sql.Result, error)
}

// ExpiryScheduler queues the delayed expiry task for an issued coupon.
type ExpiryScheduler interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ExpirePayload is the body of a clerk:expire_coupons task.
type ExpirePayload struct {
	CouponId int64 `json:"coupon_id"`
}

// Evaluator runs the full haggle flow. A nil chat model degrades analysis
// to keyword rules; a nil scheduler skips the delayed expiry task.
type Evaluator struct {
	model     model.BaseChatModel
	coupons   CouponStore
	scheduler ExpiryScheduler
}

func NewEvaluator(chatModel model.BaseChatModel, coupons CouponStore, scheduler ExpiryScheduler) *Evaluator {
	return &Evaluator{model: chatModel, coupons: coupons, scheduler: scheduler}
}

const codeSuffixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// codePrefix maps a reason to its code prefix. Occasions outside the known
// table get the first letters of the reason words, or SPECIAL when nothing
// usable remains.
func codePrefix(reason string) string {
	if p, ok := codePrefixes[reason]; ok {
		return p
	}
	var initials []byte
	for _, w := range strings.FieldsFunc(reason, func(r rune) bool {
		return r == '_' || r == ' ' || r == '-'
	}) {
		ch := w[0]
		if ch >= 'a' && ch <= 'z' {
			ch -= 'a' - 'A'
		}
		if ch < 'A' || ch > 'Z' {
			continue
		}
		initials = append(initials, ch)
	}
	if len(initials) == 0 {
		return fallbackPrefix
	}
	return string(initials)
}

// generateCode builds codes like BDAY-15A7QZ: reason prefix, percent, four
// random base36 characters.
func generateCode(reason string, percent int) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = codeSuffixChars[rand.Intn(len(codeSuffixChars))]
	}
	return fmt.Sprintf("%s-%d%s", codePrefix(reason), percent, suffix)
}

// Issue persists a coupon for an eligible analysis and schedules its
// expiry. Code collisions are retried with fresh suffixes.
func (e *Evaluator) Issue(ctx context.Context, a Analysis) (string, error) {
	if !a.Eligible || a.DiscountPercent <= 0 {
		return "", errors.New("analysis is not eligible for a coupon")
	}

	now := time.Now()
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		row := &coupon.Coupons{
			Id:             snowflake.Next(),
			Code:           generateCode(a.Reason, a.DiscountPercent),
			DiscountType:   coupon.TypePercentage,
			DiscountValue:  float64(a.DiscountPercent),
			ValidFrom:      now,
			ValidUntil:     now.Add(biz.CouponValidity),
			UsageLimit:     usageLimit,
			UsedCount:      0,
			CreatedByAgent: 1,
			Reason:         a.Reason,
			Status:         coupon.StatusActive,
		}
		if _, err := e.coupons.Insert(ctx, row); err != nil {
			lastErr = err
			if errors.Is(err, coupon.ErrCodeConflict) {
				continue
			}
			return "", err
		}
		e.scheduleExpiry(ctx, row.Id)
		return row.Code, nil
	}
	return "", lastErr
}

func (e *Evaluator) scheduleExpiry(ctx context.Context, couponId int64) {
	if e.scheduler == nil {
		return
	}
	payload, err := json.Marshal(ExpirePayload{CouponId: couponId})
	if err != nil {
		return
	}
	task := asynq.NewTask(biz.TaskExpireCoupon, payload)
	if _, err := e.scheduler.EnqueueContext(ctx, task, asynq.ProcessIn(biz.CouponValidity)); err != nil {
		// Expiry still lands via the validity window check on redemption.
		logx.WithContext(ctx).Errorw("failed to enqueue coupon expiry",
			logx.Field("coupon_id", couponId), logx.Field("err", err))
	}
}

// Outcome is the shopper-facing result of one haggle turn.
type Outcome struct {
	Granted bool
	Code    string
	Percent int
	Message string
}

var grantMessages = map[string]string{
	"birthday":       "Happy birthday! 🎂 Enjoy %d%% off with code %s. It's good for 30 days, so no rush.",
	"wedding":        "Congratulations on the wedding! 💍 Here's %d%% off with code %s, valid for 30 days.",
	"student":        "Student life is expensive, I get it. Take %d%% off with code %s, valid for 30 days.",
	"first_purchase": "Welcome to the shop! Here's %d%% off your first order with code %s, valid for 30 days.",
	"bulk_order":     "Stocking up? I like it. Take %d%% off with code %s, valid for 30 days.",
	"valentines":     "Aw, how sweet! 💝 Here's %d%% off with code %s, valid for 30 days.",
	"loyal_customer": "Thanks for sticking with us! Enjoy %d%% off with code %s, valid for 30 days.",
}

// Process analyzes the plea, issues a coupon when it qualifies, and writes
// the reply. Persistence failure means no discount is promised.
func (e *Evaluator) Process(ctx context.Context, message string) Outcome {
	a := e.Analyze(ctx, message)

	if !a.Eligible {
		if a.Sentiment == "negative" {
			return Outcome{Message: "I'm sorry you feel that way. I can't offer a discount right now, but I'm happy to help you find something you'll love at a price that works."}
		}
		return Outcome{Message: "I can't knock the price down just like that, but we do have discounts for birthdays, weddings, students, first purchases, bulk orders, Valentine's Day, and loyal customers. Do any of those sound like you?"}
	}

	code, err := e.Issue(ctx, a)
	if err != nil {
		logx.WithContext(ctx).Errorw("coupon issue failed",
			logx.Field("reason", a.Reason), logx.Field("err", err))
		return Outcome{Message: "You've earned a discount, but I couldn't lock it in just now. Please try again in a moment."}
	}

	tmpl, ok := grantMessages[a.Reason]
	if !ok {
		tmpl = "Great news! Here's %d%% off with code %s, valid for 30 days."
	}
	return Outcome{
		Granted: true,
		Code:    code,
		Percent: a.DiscountPercent,
		Message: fmt.Sprintf(tmpl, a.DiscountPercent, code),
	}
}
