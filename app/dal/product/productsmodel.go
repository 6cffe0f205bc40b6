// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package product

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
	productsFieldNames          = builder.RawFieldNames(&Products{})
	productsRows                = strings.Join(productsFieldNames, ",")
	productsRowsExpectAutoSet   = strings.Join(stringx.Remove(productsFieldNames, "`created_at`", "`updated_at`"), ",")
	productsRowsWithPlaceHolder = strings.Join(stringx.Remove(productsFieldNames, "`id`", "`created_at`", "`updated_at`"), "=?,") + "=?"

	cacheProductsIdPrefix = "cache:products:id:"
)

type (
	productsModel interface {
		Insert(ctx context.Context, data *Products) (sql.Result, error)
		FindOne(ctx context.Context, id string) (*Products, error)
		Update(ctx context.Context, data *Products) error
		Delete(ctx context.Context, id string) error
	}

	// ProductsModel is an interface to be customized, add more methods here,
	// and implement the added methods in customProductsModel.
	ProductsModel interface {
		productsModel
		List(ctx context.Context, q ListQuery) ([]*Products, error)
		SearchText(ctx context.Context, terms []string, limit int) ([]*Products, error)
	}

	customProductsModel struct {
		*defaultProductsModel
	}

	defaultProductsModel struct {
		sqlc.CachedConn
		table string
	}

	Products struct {
		Id          string    `db:"id"`
		Name        string    `db:"name"`
		Description string    `db:"description"`
		Category    string    `db:"category"`
		Price       float64   `db:"price"`
		Sizes       string    `db:"sizes"`  // JSON array of size tokens
		Colors      string    `db:"colors"` // JSON array
		Tags        string    `db:"tags"`   // JSON array
		Stock       int64     `db:"stock"`
		ImageUrl    string    `db:"image_url"`
		CreatedAt   time.Time `db:"created_at"`
		UpdatedAt   time.Time `db:"updated_at"`
	}

	// ListQuery mirrors the catalog collaborator's filter+sort contract.
	ListQuery struct {
		Category  string
		MinPrice  float64
		MaxPrice  float64
		InStock   bool
		SortField string // price | name | created_at
		SortOrder string // asc | desc
		Limit     int
	}
)

// NewProductsModel returns a model for the database table.
func NewProductsModel(conn sqlx.SqlConn, c cache.CacheConf, opts ...cache.Option) ProductsModel {
	return &customProductsModel{
		defaultProductsModel: &defaultProductsModel{
			CachedConn: sqlc.NewConn(conn, c, opts...),
			table:      "`products`",
		},
	}
}

func (m *defaultProductsModel) Insert(ctx context.Context, data *Products) (sql.Result, error) {
	productsIdKey := fmt.Sprintf("%s%v", cacheProductsIdPrefix, data.Id)
	return m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("insert into %s (%s) values (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)", m.table, productsRowsExpectAutoSet)
		return conn.ExecCtx(ctx, query, data.Id, data.Name, data.Description, data.Category, data.Price, data.Sizes, data.Colors, data.Tags, data.Stock, data.ImageUrl)
	}, productsIdKey)
}

func (m *defaultProductsModel) FindOne(ctx context.Context, id string) (*Products, error) {
	productsIdKey := fmt.Sprintf("%s%v", cacheProductsIdPrefix, id)
	var resp Products
	err := m.QueryRowCtx(ctx, &resp, productsIdKey, func(ctx context.Context, conn sqlx.SqlConn, v any) error {
		query := fmt.Sprintf("select %s from %s where `id` = ? limit 1", productsRows, m.table)
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

func (m *defaultProductsModel) Update(ctx context.Context, data *Products) error {
	productsIdKey := fmt.Sprintf("%s%v", cacheProductsIdPrefix, data.Id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("update %s set %s where `id` = ?", m.table, productsRowsWithPlaceHolder)
		return conn.ExecCtx(ctx, query, data.Name, data.Description, data.Category, data.Price, data.Sizes, data.Colors, data.Tags, data.Stock, data.ImageUrl, data.Id)
	}, productsIdKey)
	return err
}

func (m *defaultProductsModel) Delete(ctx context.Context, id string) error {
	productsIdKey := fmt.Sprintf("%s%v", cacheProductsIdPrefix, id)
	_, err := m.ExecCtx(ctx, func(ctx context.Context, conn sqlx.SqlConn) (sql.Result, error) {
		query := fmt.Sprintf("delete from %s where `id` = ?", m.table)
		return conn.ExecCtx(ctx, query, id)
	}, productsIdKey)
	return err
}

func (m *customProductsModel) List(ctx context.Context, q ListQuery) ([]*Products, error) {
	conds := make([]string, 0, 4)
	args := make([]any, 0, 4)
	if q.Category != "" {
		conds = append(conds, "`category` = ?")
		args = append(args, q.Category)
	}
	if q.MinPrice > 0 {
		conds = append(conds, "`price` >= ?")
		args = append(args, q.MinPrice)
	}
	if q.MaxPrice > 0 {
		conds = append(conds, "`price` <= ?")
		args = append(args, q.MaxPrice)
	}
	if q.InStock {
		conds = append(conds, "`stock` > 0")
	}

	where := ""
	if len(conds) > 0 {
		where = " where " + strings.Join(conds, " and ")
	}

	query := fmt.Sprintf("select %s from %s%s order by %s limit ?", productsRows, m.table, where, orderClause(q.SortField, q.SortOrder))
	args = append(args, listLimit(q.Limit))

	var resp []*Products
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, args...)
	switch err {
	case nil, sqlc.ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

func (m *customProductsModel) SearchText(ctx context.Context, terms []string, limit int) ([]*Products, error) {
	if len(terms) == 0 {
		return nil, nil
	}

	conds := make([]string, 0, len(terms))
	args := make([]any, 0, len(terms)*3)
	for _, term := range terms {
		like := "%" + term + "%"
		conds = append(conds, "(`name` like ? or `description` like ? or `tags` like ?)")
		args = append(args, like, like, like)
	}

	query := fmt.Sprintf("select %s from %s where %s order by `created_at` desc limit ?",
		productsRows, m.table, strings.Join(conds, " or "))
	args = append(args, listLimit(limit))

	var resp []*Products
	err := m.QueryRowsNoCacheCtx(ctx, &resp, query, args...)
	switch err {
	case nil, sqlc.ErrNotFound:
		return resp, nil
	default:
		return nil, err
	}
}

func orderClause(field, order string) string {
	switch field {
	case "price", "name", "created_at":
	default:
		field = "created_at"
	}
	if order != "asc" {
		order = "desc"
	}
	return fmt.Sprintf("`%s` %s", field, order)
}

func listLimit(limit int) int {
	if limit <= 0 || limit > 200 {
		return 200
	}
	return limit
}
