// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package activity

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

var ErrNotFound = sqlx.ErrNotFound

var (
	activitiesFieldNames        = builder.RawFieldNames(&Activities{})
	activitiesRows              = strings.Join(activitiesFieldNames, ",")
	activitiesRowsExpectAutoSet = strings.Join(stringx.Remove(activitiesFieldNames, "`created_at`"), ",")
)

// Activity kinds recorded by the storefront and the clerk itself.
const (
	KindProductView = "product_view"
	KindSearch      = "search"
	KindAddToCart   = "add_to_cart"
)

type (
	activitiesModel interface {
		Insert(ctx context.Context, data *Activities) (sql.Result, error)
	}

	// ActivitiesModel is an interface to be customized, add more methods here,
	// and implement the added methods in customActivitiesModel.
	ActivitiesModel interface {
		activitiesModel
		RecentProductIds(ctx context.Context, sessionId string, userId int64, limit int) ([]string, error)
		CountForSession(ctx context.Context, sessionId string, userId int64) (int64, error)
	}

	customActivitiesModel struct {
		*defaultActivitiesModel
	}

	defaultActivitiesModel struct {
		sqlc.CachedConn
		table string
	}

	Activities struct {
		Id        int64          `db:"id"`
		SessionId string         `db:"session_id"`
		UserId    sql.NullInt64  `db:"user_id"`
		Kind      string         `db:"kind"`
		ProductId sql.NullString `db:"product_id"`
		Query     sql.NullString `db:"query"`
		Category  sql.NullString `db:"category"`
		CreatedAt time.Time      `db:"created_at"`
	}
)

// NewActivitiesModel returns a model for the database table.
func NewActivitiesModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ActivitiesModel {
	return &customActivitiesModel{
		defaultActivitiesModel: &defaultActivitiesModel{
			CachedConn: sqlc.NewConn(conn, c, opts...),
			table:      "`activities`",
		},
	}
}

func (m *defaultActivitiesModel) Insert(ctx context.Context, data *Activities) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?)", m.table, activitiesRowsExpectAutoSet)
	return m.ExecNoCacheCtx(ctx, query, data.Id, data.SessionId, data.UserId, data.Kind, data.ProductId, data.Query, data.Category)
}

func (m *customActivitiesModel) RecentProductIds(ctx context.Context, sessionId string, userId int64, limit int) ([]string, error) {
	if limit <= 0 {
		limit = 10
	}

	query := fmt.Sprintf("select `product_id` from %s where (`session_id` = ? or (`user_id` is not null and `user_id` = ?)) and `product_id` is not null and `product_id` != '' group by `product_id` order by max(`id`) desc limit ?", m.table)
	var resp []string
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, sessionId, userId, limit)
	switch err {
	case nil, sqlc.ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

func (m *customActivitiesModel) CountForSession(ctx context.Context, sessionId string, userId int64) (int64, error) {
	query := fmt.Sprintf("select count(*) from %s where `session_id` = ? or (`user_id` is not null and `user_id` = ?)", m.table)
	var total int64
	err := m.QueryRowNoCacheCtx(ctx, &total, query, sessionId, userId)
	switch err {
	case nil, sqlc.ErrNotFound:
		return total, nil
	default:
		return 0, err
	}
}
