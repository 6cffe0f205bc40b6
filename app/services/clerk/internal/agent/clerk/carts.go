package clerk

import (
	"context"
	"database/sql"
	"errors"

	"TrendZone/app/common/snowflake"
	"TrendZone/app/dal/cart"
)

// sqlCart upserts cart rows: the same product and size in the same session
// bumps the quantity instead of creating a duplicate line.
type sqlCart struct {
	items cart.CartItemsModel
}

func NewCart(items cart.CartItemsModel) Cart {
	return &sqlCart{items: items}
}

func (s *sqlCart) Add(ctx context.Context, sessionId string, userId int64, productId, size string, quantity int) error {
	existing, err := s.items.FindOneBySessionProductSize(ctx, sessionId, productId, size)
	switch {
	case err == nil:
		return s.items.IncrementQuantity(ctx, existing.Id, int64(quantity))
	case errors.Is(err, cart.ErrNotFound):
		_, err = s.items.Insert(ctx, &cart.CartItems{
			Id:        snowflake.Next(),
			SessionId: sessionId,
			UserId:    sql.NullInt64{Int64: userId, Valid: userId > 0},
			ProductId: productId,
			Size:      size,
			Quantity:  int64(quantity),
		})
		return err
	default:
		return err
	}
}

func (s *sqlCart) Count(ctx context.Context, sessionId string) (int, error) {
	items, err := s.items.ListBySession(ctx, sessionId)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, it := range items {
		total += int(it.Quantity)
	}
	return total, nil
}
