package catalog

import (
	"context"
	"encoding/json"
	"strings"

	"TrendZone/app/dal/product"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

const textSearchLimit = 50

// Store implements Catalog over the products table, preferring
// Elasticsearch for free-text search when a client is configured.
type Store struct {
	products product.ProductsModel
	es       *elasticsearch.Client
	esIndex  string
}

type StoreOption func(*Store)

// WithElasticsearch routes TextSearch through the given index. The SQL
// path remains the fallback when the cluster is unreachable or empty.
func WithElasticsearch(client *elasticsearch.Client, index string) StoreOption {
	return func(s *Store) {
		s.es = client
		s.esIndex = index
	}
}

func NewStore(products product.ProductsModel, opts ...StoreOption) *Store {
	s := &Store{products: products}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) List(ctx context.Context, f Filter, srt Sort) ([]Product, error) {
	rows, err := s.products.List(ctx, product.ListQuery{
		Category:  f.Category,
		MinPrice:  f.MinPrice,
		MaxPrice:  f.MaxPrice,
		InStock:   f.InStock,
		SortField: srt.Field,
		SortOrder: srt.Order,
	})
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

// GetById returns nil, nil when the id is unknown.
func (s *Store) GetById(ctx context.Context, id string) (*Product, error) {
	row, err := s.products.FindOne(ctx, id)
	switch err {
	case nil:
		p := fromRow(row)
		return &p, nil
	case sqlx.ErrNotFound:
		return nil, nil
	default:
		return nil, err
	}
}

func (s *Store) TextSearch(ctx context.Context, terms []string) ([]Product, error) {
	if s.es != nil {
		hits, err := s.esSearch(ctx, terms)
		if err != nil {
			logx.WithContext(ctx).Errorw("es search failed, falling back to sql",
				logx.Field("err", err))
		} else if len(hits) > 0 {
			return hits, nil
		}
	}
	rows, err := s.products.SearchText(ctx, terms, textSearchLimit)
	if err != nil {
		return nil, err
	}
	return fromRows(rows), nil
}

func fromRows(rows []*product.Products) []Product {
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out
}

func fromRow(r *product.Products) Product {
	return Product{
		Id:          r.Id,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Sizes:       decodeList(r.Sizes),
		Colors:      decodeList(r.Colors),
		Tags:        decodeList(r.Tags),
		Stock:       r.Stock,
		ImageUrl:    r.ImageUrl,
		CreatedAt:   r.CreatedAt,
	}
}

// decodeList tolerates both JSON arrays and legacy comma-separated text.
func decodeList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	if strings.HasPrefix(raw, "[") {
		var out []string
		if err := json.Unmarshal([]byte(raw), &out); err == nil {
			return out
		}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
