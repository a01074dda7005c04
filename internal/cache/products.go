package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"panel_catalogo/internal/models"
)

const (
	productListKey = "products:admin"
	productListTTL = 10 * time.Minute
)

// ProductListCache guarda el listado del panel en Redis. Toda operación de
// escritura sobre productos debe invalidarlo. Con cliente nil degrada a no-op.
type ProductListCache struct {
	client *redis.Client
}

func NewProductListCache(client *redis.Client) *ProductListCache {
	return &ProductListCache{client: client}
}

func (c *ProductListCache) Get(ctx context.Context) ([]models.Product, bool) {
	if c.client == nil {
		return nil, false
	}

	val, err := c.client.Get(ctx, productListKey).Result()
	if err != nil || val == "" {
		return nil, false
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, false
	}
	return products, true
}

func (c *ProductListCache) Set(ctx context.Context, products []models.Product) {
	if c.client == nil {
		return
	}

	if data, err := json.Marshal(products); err == nil {
		c.client.Set(ctx, productListKey, data, productListTTL)
	}
}

func (c *ProductListCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	c.client.Del(ctx, productListKey)
}
