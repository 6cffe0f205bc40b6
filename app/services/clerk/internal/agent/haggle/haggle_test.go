package haggle

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"TrendZone/app/dal/coupon"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatModel struct {
	content string
}

func (m *stubChatModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	return schema.AssistantMessage(m.content, nil), nil
}

func (m *stubChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

type fakeCouponStore struct {
	inserted  []*coupon.Coupons
	insertErr error
}

func (f *fakeCouponStore) Insert(_ context.Context, data *coupon.Coupons) (sql.Result, error) {
	if f.insertErr != nil {
		return nil, f.insertErr
	}
	f.inserted = append(f.inserted, data)
	return nil, nil
}

type fakeScheduler struct {
	tasks []*asynq.Task
}

func (f *fakeScheduler) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func TestAnalyzeByRules(t *testing.T) {
	e := NewEvaluator(nil, &fakeCouponStore{}, nil)

	tests := []struct {
		name        string
		message     string
		eligible    bool
		reason      string
		percent     int
	}{
		{"birthday", "it's my birthday, can i get a discount?", true, "birthday", 15},
		{"wedding", "i'm getting married next month", true, "wedding", 20},
		{"student", "any student discount?", true, "student", 10},
		{"bulk", "i'm buying in bulk for my team", true, "bulk_order", 12},
		{"no reason", "just give me a discount", false, "none", 0},
		{"negative sentiment overrides reason", "your prices are a scam, it's my birthday", false, "birthday", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Analyze(context.Background(), tt.message)
			assert.Equal(t, tt.eligible, got.Eligible)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, tt.percent, got.DiscountPercent)
		})
	}
}

func TestIssueCodeFormat(t *testing.T) {
	store := &fakeCouponStore{}
	e := NewEvaluator(nil, store, nil)
	analysis := Analysis{Eligible: true, Reason: "birthday", DiscountPercent: 15}

	code1, err := e.Issue(context.Background(), analysis)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BDAY-15[A-Z0-9]{4}$`), code1)

	code2, err := e.Issue(context.Background(), analysis)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BDAY-15[A-Z0-9]{4}$`), code2)
	assert.NotEqual(t, code1, code2, "consecutive issuances must differ in suffix")
}

func TestIssuePersistedShape(t *testing.T) {
	store := &fakeCouponStore{}
	e := NewEvaluator(nil, store, nil)

	before := time.Now()
	_, err := e.Issue(context.Background(), Analysis{Eligible: true, Reason: "wedding", DiscountPercent: 20})
	require.NoError(t, err)
	require.Len(t, store.inserted, 1)

	row := store.inserted[0]
	assert.Equal(t, coupon.TypePercentage, row.DiscountType)
	assert.Equal(t, float64(20), row.DiscountValue)
	assert.Equal(t, int64(1), row.UsageLimit)
	assert.Equal(t, int64(0), row.UsedCount)
	assert.Equal(t, int64(1), row.CreatedByAgent)
	assert.Equal(t, coupon.StatusActive, row.Status)
	assert.WithinDuration(t, before.Add(30*24*time.Hour), row.ValidUntil, 5*time.Second,
		"validity window is 30 days from issuance")
}

func TestIssueSchedulesExpiry(t *testing.T) {
	store := &fakeCouponStore{}
	sched := &fakeScheduler{}
	e := NewEvaluator(nil, store, sched)

	_, err := e.Issue(context.Background(), Analysis{Eligible: true, Reason: "student", DiscountPercent: 10})
	require.NoError(t, err)
	require.Len(t, sched.tasks, 1)
	assert.Equal(t, "clerk:expire_coupons", sched.tasks[0].Type())
}

func TestIssueRetriesOnCodeConflict(t *testing.T) {
	store := &fakeCouponStore{insertErr: coupon.ErrCodeConflict}
	e := NewEvaluator(nil, store, nil)

	_, err := e.Issue(context.Background(), Analysis{Eligible: true, Reason: "birthday", DiscountPercent: 15})
	assert.ErrorIs(t, err, coupon.ErrCodeConflict)
}

func TestProcessGrantsAndAppliesCoupon(t *testing.T) {
	store := &fakeCouponStore{}
	e := NewEvaluator(nil, store, nil)

	out := e.Process(context.Background(), "it's my birthday, can i get a discount?")

	require.True(t, out.Granted)
	assert.Equal(t, 15, out.Percent)
	assert.Regexp(t, regexp.MustCompile(`^BDAY-15[A-Z0-9]{4}$`), out.Code)
	assert.Contains(t, out.Message, out.Code)
	require.Len(t, store.inserted, 1)
}

func TestProcessPersistenceFailureGrantsNothing(t *testing.T) {
	store := &fakeCouponStore{insertErr: errors.New("db down")}
	e := NewEvaluator(nil, store, nil)

	out := e.Process(context.Background(), "it's my birthday, can i get a discount?")

	assert.False(t, out.Granted)
	assert.Empty(t, out.Code, "an unpersisted coupon is never promised")
}

func TestProcessDeclinesPolitely(t *testing.T) {
	e := NewEvaluator(nil, &fakeCouponStore{}, nil)

	out := e.Process(context.Background(), "can i get a discount just because?")
	assert.False(t, out.Granted)
	assert.Contains(t, out.Message, "birthday", "the decline lists the recognized occasions")
}

func TestAnalyzeModelVerdicts(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		eligible bool
		reason   string
		percent  int
	}{
		{
			"known reason pays the table rate",
			`{"eligible": true, "reason": "birthday", "discount_percent": 50, "sentiment": "positive"}`,
			true, "birthday", 15,
		},
		{
			"open reason keeps model percent",
			`{"eligible": true, "reason": "charity_event", "discount_percent": 18, "sentiment": "positive"}`,
			true, "charity_event", 18,
		},
		{
			"open reason clamped high",
			`{"eligible": true, "reason": "anniversary", "discount_percent": 40, "sentiment": "positive"}`,
			true, "anniversary", 20,
		},
		{
			"open reason clamped low",
			`{"eligible": true, "reason": "anniversary", "discount_percent": 1, "sentiment": "neutral"}`,
			true, "anniversary", 5,
		},
		{
			"reason none never grants",
			`{"eligible": true, "reason": "none", "discount_percent": 10, "sentiment": "neutral"}`,
			false, "none", 0,
		},
		{
			"ineligible verdict carries no percent",
			`{"eligible": false, "reason": "anniversary", "discount_percent": 10, "sentiment": "neutral"}`,
			false, "anniversary", 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator(&stubChatModel{content: tt.content}, &fakeCouponStore{}, nil)
			got := e.Analyze(context.Background(), "any chance of a deal?")
			assert.Equal(t, tt.eligible, got.Eligible)
			assert.Equal(t, tt.reason, got.Reason)
			assert.Equal(t, tt.percent, got.DiscountPercent)
		})
	}
}

func TestCodePrefix(t *testing.T) {
	tests := []struct {
		reason string
		want   string
	}{
		{"birthday", "BDAY"},
		{"first_purchase", "WELCOME"},
		{"charity_event", "CE"},
		{"anniversary", "A"},
		{"", "SPECIAL"},
		{"123", "SPECIAL"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, codePrefix(tt.reason), "reason %q", tt.reason)
	}
}

func TestProcessGrantsOpenReason(t *testing.T) {
	store := &fakeCouponStore{}
	cm := &stubChatModel{content: `{"eligible": true, "reason": "charity_event", "discount_percent": 18, "sentiment": "positive"}`}
	e := NewEvaluator(cm, store, nil)

	out := e.Process(context.Background(), "i'm shopping for a charity event, any chance of a deal?")

	require.True(t, out.Granted)
	assert.Equal(t, 18, out.Percent)
	assert.Regexp(t, regexp.MustCompile(`^CE-18[A-Z0-9]{4}$`), out.Code)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "charity_event", store.inserted[0].Reason)
}

func TestFirstJSONObject(t *testing.T) {
	raw, ok := firstJSONObject("here you go: {\"eligible\": true, \"nested\": {\"a\": 1}} trailing")
	require.True(t, ok)
	assert.JSONEq(t, `{"eligible": true, "nested": {"a": 1}}`, raw)

	_, ok = firstJSONObject("no json at all")
	assert.False(t, ok)
}
