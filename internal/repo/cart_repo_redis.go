package repo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"quebrada-backend/internal/domain"
)

// CartRepo keeps guest carts in redis under cart:<id>. Every save rewrites
// the whole cart and resets the TTL; expiry is enforced by redis, not here.
type CartRepo struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewCartRepo(rdb *redis.Client, ttl time.Duration) *CartRepo {
	return &CartRepo{rdb: rdb, ttl: ttl}
}

func cartKey(id string) string { return "cart:" + id }

func (r *CartRepo) Get(ctx context.Context, cartID string) ([]domain.CartItem, error) {
	b, err := r.rdb.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []domain.CartItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CartRepo) Save(ctx context.Context, cartID string, items []domain.CartItem) error {
	if items == nil {
		items = []domain.CartItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, cartKey(cartID), b, r.ttl).Err()
}

func (r *CartRepo) Delete(ctx context.Context, cartID string) error {
	return r.rdb.Del(ctx, cartKey(cartID)).Err()
}
