// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package coupon

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/stores/builder"
	"github.com/zeromicro/go-zero/core/stores/cache"
	"github.com/zeromicro/go-zero/core/stores/sqlc"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/core/stringx"
)

var (
	couponsFieldNames        = builder.RawFieldNames(&Coupons{})
	couponsRows              = strings.Join(couponsFieldNames, ",")
	couponsRowsExpectAutoSet = strings.Join(stringx.Remove(couponsFieldNames, "`created_at`", "`updated_at`"), ",")

	cacheCouponsIdPrefix   = "cache:coupons:id:"
	cacheCouponsCodePrefix = "cache:coupons:code:"
)

const (
	StatusActive  = "ACTIVE"
	StatusExpired = "EXPIRED"

	TypePercentage = "percentage"
	TypeFixed      = "fixed"
)

type (
	couponsModel interface {
		Insert(ctx context.Context, data *Coupons) (sql.Result, error)
		FindOne(ctx context.Context, id int64) (*Coupons, error)
		FindOneByCode(ctx context.Context, code string) (*Coupons, error)
	}

	// CouponsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCouponsModel.
	CouponsModel interface {
		couponsModel
		FindValidByCode(ctx context.Context, code string, now time.Time) (*Coupons, error)
		ExpireAgentCoupons(ctx context.Context, now time.Time) (int64, error)
	}

	customCouponsModel struct {
		*defaultCouponsModel
	}

	defaultCouponsModel struct {
		sqlc.CachedConn
		table string
	}

	Coupons struct {
		Id             int64     `db:"id"`
		Code           string    `db:"code"`
		DiscountType   string    `db:"discount_type"` // percentage | fixed
		DiscountValue  float64   `db:"discount_value"`
		ValidFrom      time.Time `db:"valid_from"`
		ValidUntil     time.Time `db:"valid_until"`
		UsageLimit     int64     `db:"usage_limit"`
		UsedCount      int64     `db:"used_count"`
		CreatedByAgent int64     `db:"created_by_agent"`
		Reason         string    `db:"reason"`
		Status         string    `db:"status"`
		CreatedAt      time.Time `db:"created_at"`
		UpdatedAt      time.Time `db:"updated_at"`
	}
)

// NewCouponsModel returns a model for the database table.
func NewCouponsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) CouponsModel {
	return &customCouponsModel{
		defaultCouponsModel: &defaultCouponsModel{
			CachedConn: sqlc.NewConn(conn, c, opts...),
			table:      "`coupons`",
		},
	}
}

func (m *defaultCouponsModel) Insert(ctx context.Context, data *Coupons) (sql.Result, error) {
	couponsIdKey := fmt.Sprintf("%s%v", cacheCouponsIdPrefix, data.Id)
	couponsCodeKey := fmt.Sprintf("%s%v", cacheCouponsCodePrefix, data.Code)
	res, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", m.table, couponsRowsExpectAutoSet)
		return conn.ExecCtx(ctx, query, data.Id, data.Code, data.DiscountType, data.DiscountValue,
			data.ValidFrom, data.ValidUntil, data.UsageLimit, data.UsedCount, data.CreatedByAgent,
			data.Reason, data.Status)
	}, couponsIdKey, couponsCodeKey)
	if err != nil && strings.Contains(err.Error(), "Duplicate entry") {
		return nil, ErrCodeConflict
	}
	return res, err
}

func (m *defaultCouponsModel) FindOne(ctx context.Context, id int64) (*Coupons, error) {
	couponsIdKey := fmt.Sprintf("%s%v", cacheCouponsIdPrefix, id)
	var resp Coupons
	err := m.QueryRowCtx(ctx, &resp, couponsIdKey, func(ctx context.Context, conn sqlx.SqlConn, v any) error {
		query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", couponsRows, m.table)
		return conn.QueryRowCtx(ctx, v, query, id)
	})
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultCouponsModel) FindOneByCode(ctx context.Context, code string) (*Coupons, error) {
	couponsCodeKey := fmt.Sprintf("%s%v", cacheCouponsCodePrefix, code)
	var resp Coupons
	err := m.QueryRowIndexCtx(ctx, &resp, couponsCodeKey, m.formatPrimary, func(ctx context.Context, conn sqlx.SqlConn, v any) (any, error) {
		query := fmt.Sprintf("select %s from %s where `code` = ? limit 1", couponsRows, m.table)
		if err := conn.QueryRowCtx(ctx, &resp, query, code); err != nil {
			return nil, err
		}
		return resp.Id, nil
	}, m.queryPrimary)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *defaultCouponsModel) formatPrimary(primary any) string {
	return fmt.Sprintf("%s%v", cacheCouponsIdPrefix, primary)
}

func (m *defaultCouponsModel) queryPrimary(ctx context.Context, conn sqlx.SqlConn, v, primary any) error {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", couponsRows, m.table)
	return conn.QueryRowCtx(ctx, v, query, primary)
}

func (m *customCouponsModel) FindValidByCode(ctx context.Context, code string, now time.Time) (*Coupons, error) {
	query := fmt.Sprintf("select %s from %s where `code` = ? and `status` = ? and `valid_from` <= ? and `valid_until` >= ? and (`usage_limit` = 0 or `used_count` < `usage_limit`) limit 1",
		couponsRows, m.table)
	var resp Coupons
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, code, StatusActive, now, now)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customCouponsModel) ExpireAgentCoupons(ctx context.Context, now time.Time) (int64, error) {
	query := fmt.Sprintf("update %s set `status` = ? where `status` = ? and `created_by_agent` = 1 and `valid_until` < ?", m.table)
	res, err := m.ExecNoCacheCtx(ctx, query, StatusExpired, StatusActive, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
