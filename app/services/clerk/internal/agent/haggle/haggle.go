// Package haggle decides whether a shopper's plea earns a discount and
// turns a granted one into a persisted coupon.
package haggle

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Discount percentages by recognized reason. The model may grant occasions
// outside this table; those keep its percent, clamped to the allowed band.
var validDiscounts = map[string]int{
	"birthday":       15,
	"wedding":        20,
	"student":        10,
	"first_purchase": 10,
	"bulk_order":     12,
	"valentines":     10,
	"loyal_customer": 10,
}

var codePrefixes = map[string]string{
	"birthday":       "BDAY",
	"wedding":        "WEDDING",
	"student":        "STUDENT",
	"first_purchase": "WELCOME",
	"bulk_order":     "BULK",
	"valentines":     "LOVE",
	"loyal_customer": "LOYAL",
}

const fallbackPrefix = "SPECIAL"

const (
	minDiscountPercent = 5
	maxDiscountPercent = 20
)

// Analysis is the verdict on one haggle attempt.
type Analysis struct {
	Eligible        bool   `json:"eligible"`
	Reason          string `json:"reason"`
	DiscountPercent int    `json:"discount_percent"`
	Sentiment       string `json:"sentiment"`
}

// Analyze classifies the plea. With a chat model configured it asks the
// model for a structured verdict; without one, or when the model misbehaves,
// it falls back to keyword rules. Known occasions always pay the table rate.
// A model verdict naming an occasion outside the table is honored with its
// percent clamped to the allowed band. Hostile messages are never granted a
// discount.
func (e *Evaluator) Analyze(ctx context.Context, message string) Analysis {
	var a Analysis
	if e.model != nil {
		if parsed, ok := e.analyzeWithModel(ctx, message); ok {
			a = parsed
		} else {
			a = analyzeByRules(message)
		}
	} else {
		a = analyzeByRules(message)
	}

	switch {
	case a.Reason == "" || a.Reason == "none":
		a.Eligible = false
	default:
		if percent, ok := validDiscounts[a.Reason]; ok {
			a.DiscountPercent = percent
		} else if a.Eligible {
			if a.DiscountPercent < minDiscountPercent {
				a.DiscountPercent = minDiscountPercent
			}
			if a.DiscountPercent > maxDiscountPercent {
				a.DiscountPercent = maxDiscountPercent
			}
		}
	}
	if a.Sentiment == "negative" || hostile(message) {
		a.Eligible = false
		a.Sentiment = "negative"
	}
	if !a.Eligible {
		a.DiscountPercent = 0
	}
	return a
}

const analyzePrompt = `You judge discount requests for a fashion shop.
Reply with one JSON object only, no prose:
{"eligible": bool, "reason": string, "discount_percent": int, "sentiment": "positive"|"neutral"|"negative"}
reason is a short lowercase snake_case phrase naming the occasion (prefer birthday, wedding, student, first_purchase, bulk_order, valentines, loyal_customer when one fits), or "none".
discount_percent is between 5 and 20.
Grant only when the shopper names a genuine occasion or status, not for plain asking.`

func (e *Evaluator) analyzeWithModel(ctx context.Context, message string) (Analysis, bool) {
	resp, err := e.model.Generate(ctx, []*schema.Message{
		schema.SystemMessage(analyzePrompt),
		schema.UserMessage(message),
	})
	if err != nil {
		logx.WithContext(ctx).Errorw("haggle analysis model call failed",
			logx.Field("err", err))
		return Analysis{}, false
	}
	raw, ok := firstJSONObject(resp.Content)
	if !ok {
		return Analysis{}, false
	}
	var a Analysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		logx.WithContext(ctx).Errorw("haggle analysis not parseable",
			logx.Field("err", err), logx.Field("content", resp.Content))
		return Analysis{}, false
	}
	return a, true
}

// firstJSONObject extracts the first balanced {...} block from model output
// that may be wrapped in prose or code fences.
func firstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

var reasonKeywords = []struct {
	reason string
	words  []string
}{
	{"birthday", []string{"birthday", "bday"}},
	{"wedding", []string{"wedding", "getting married", "bride", "groom"}},
	{"student", []string{"student", "college", "university"}},
	{"first_purchase", []string{"first purchase", "first order", "first time", "new customer"}},
	{"bulk_order", []string{"bulk", "buying multiple", "buy a lot", "several items", "wholesale"}},
	{"valentines", []string{"valentine"}},
	{"loyal_customer", []string{"loyal", "regular customer", "shop here all the time", "always buy"}},
}

func analyzeByRules(message string) Analysis {
	msg := strings.ToLower(message)
	for _, rk := range reasonKeywords {
		for _, w := range rk.words {
			if strings.Contains(msg, w) {
				return Analysis{
					Eligible:        true,
					Reason:          rk.reason,
					DiscountPercent: validDiscounts[rk.reason],
					Sentiment:       "neutral",
				}
			}
		}
	}
	return Analysis{Reason: "none", Sentiment: "neutral"}
}

var hostileWords = []string{"hate", "terrible", "awful", "scam", "ripoff", "rip off", "worst", "garbage"}

func hostile(message string) bool {
	msg := strings.ToLower(message)
	for _, w := range hostileWords {
		if strings.Contains(msg, w) {
			return true
		}
	}
	return false
}
