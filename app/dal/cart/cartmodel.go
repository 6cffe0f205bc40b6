// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package cart

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
	cartItemsFieldNames        = builder.RawFieldNames(&CartItems{})
	cartItemsRows              = strings.Join(cartItemsFieldNames, ",")
	cartItemsRowsExpectAutoSet = strings.Join(stringx.Remove(cartItemsFieldNames, "`created_at`", "`updated_at`"), ",")
)

type (
	cartItemsModel interface {
		Insert(ctx context.Context, data *CartItems) (sql.Result, error)
		FindOne(ctx context.Context, id int64) (*CartItems, error)
	}

	// CartItemsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customCartItemsModel.
	CartItemsModel interface {
		cartItemsModel
		FindOneBySessionProductSize(ctx context.Context, sessionId, productId, size string) (*CartItems, error)
		IncrementQuantity(ctx context.Context, id int64, delta int64) error
		ListBySession(ctx context.Context, sessionId string) ([]*CartItems, error)
	}

	customCartItemsModel struct {
		*defaultCartItemsModel
	}

	defaultCartItemsModel struct {
		sqlc.CachedConn
		table string
	}

	CartItems struct {
		Id        int64         `db:"id"`
		SessionId string        `db:"session_id"`
		UserId    sql.NullInt64 `db:"user_id"`
		ProductId string        `db:"product_id"`
		Size      string        `db:"size"`
		Quantity  int64         `db:"quantity"`
		CreatedAt time.Time     `db:"created_at"`
		UpdatedAt time.Time     `db:"updated_at"`
	}
)

// NewCartItemsModel returns a model for the database table.
func NewCartItemsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) CartItemsModel {
	return &customCartItemsModel{
		defaultCartItemsModel: &defaultCartItemsModel{
			CachedConn: sqlc.NewConn(conn, c, opts...),
			table:      "`cart_items`",
		},
	}
}

func (m *defaultCartItemsModel) Insert(ctx context.Context, data *CartItems) (sql.Result, error) {
	query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?)", m.table, cartItemsRowsExpectAutoSet)
	return m.ExecNoCacheCtx(ctx, query, data.Id, data.SessionId, data.UserId, data.ProductId, data.Size, data.Quantity)
}

func (m *defaultCartItemsModel) FindOne(ctx context.Context, id int64) (*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", cartItemsRows, m.table)
	var resp CartItems
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, id)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customCartItemsModel) FindOneBySessionProductSize(ctx context.Context, sessionId, productId, size string) (*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `session_id` = ? and `product_id` = ? and `size` = ? limit 1", cartItemsRows, m.table)
	var resp CartItems
	err := m.QueryRowNoCacheCtx(ctx, &resp, query, sessionId, productId, size)
	switch err {
	case nil:
		return &resp, nil
	case sqlc.ErrNotFound:
		return nil, ErrNotFound
	default:
		return nil, err
	}
}

func (m *customCartItemsModel) IncrementQuantity(ctx context.Context, id int64, delta int64) error {
	query := fmt.Sprintf("update %s set `quantity` = `quantity` + ? where `id` = ?", m.table)
	_, err := m.ExecNoCacheCtx(ctx, query, delta, id)
	return err
}

func (m *customCartItemsModel) ListBySession(ctx context.Context, sessionId string) ([]*CartItems, error) {
	query := fmt.Sprintf("select %s from %s where `session_id` = ? order by `id` desc", cartItemsRows, m.table)
	var resp []*CartItems
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, sessionId)
	switch err {
	case nil, sqlc.ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}
