package client

import (
	"context"
	"errors"
	"time"

	"pizzaria-be/internal/logger"
	"pizzaria-be/internal/order"

	"go.uber.org/zap"
)

// Store is the persistence contract shared by the remote API and the local
// offline cache.
type Store interface {
	Create(ctx context.Context, in order.CreateOrderInput) (*order.StoredOrder, error)
	List(ctx context.Context) ([]order.StoredOrder, error)
	Delete(ctx context.Context, id int64) error
}

// Client submits orders to the remote store and falls back to the local
// cache when the remote fails. Offline orders are never synced back.
type Client struct {
	remote Store
	local  Store
	log    *zap.Logger
}

func New(remote, local Store, log *zap.Logger) *Client {
	if log == nil {
		log = logger.L()
	}
	return &Client{remote: remote, local: local, log: log.With(zap.String("layer", "client"))}
}

// CreateOrder validates item, stores it and returns it with its id,
// creation time and stored total.
func (c *Client) CreateOrder(ctx context.Context, item order.OrderItem) (*order.OrderItem, error) {
	if err := order.ValidateItem(item); err != nil {
		return nil, err
	}

	in := order.ToStorage(item)
	stored, err := c.remote.Create(ctx, in)
	if err != nil {
		c.log.Warn("remote store unavailable, saving order offline", zap.Error(err))
		if stored, err = c.local.Create(ctx, in); err != nil {
			return nil, err
		}
	}

	out := item
	out.ID = stored.ID
	createdAt := stored.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	out.CreatedAt = &createdAt
	total := stored.TotalPrice
	out.BackendTotal = &total
	return &out, nil
}

// GetOrders lists the remote orders or, when the remote fails, the offline
// ones.
func (c *Client) GetOrders(ctx context.Context) ([]order.OrderItem, error) {
	return c.listOrders(ctx, order.FromStorage)
}

// GetOrdersWithNotes is GetOrders with the removed ingredients decoded from
// each order's extra item note.
func (c *Client) GetOrdersWithNotes(ctx context.Context) ([]order.OrderItem, error) {
	return c.listOrders(ctx, order.FromStorageWithNote)
}

func (c *Client) listOrders(ctx context.Context, toItem func(order.StoredOrder) order.OrderItem) ([]order.OrderItem, error) {
	stored, err := c.remote.List(ctx)
	if err != nil {
		c.log.Warn("remote store unavailable, listing offline orders", zap.Error(err))
		if stored, err = c.local.List(ctx); err != nil {
			return nil, err
		}
	}

	items := make([]order.OrderItem, 0, len(stored))
	for _, s := range stored {
		items = append(items, toItem(s))
	}
	return items, nil
}

// DeleteOrder removes the order from the remote store. A missing order is
// reported as is; other remote failures are retried against the cache.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	err := c.remote.Delete(ctx, id)
	if err == nil || !errors.Is(err, order.ErrPersistence) {
		return err
	}

	c.log.Warn("remote store unavailable, deleting offline order", zap.Int64("order_id", id), zap.Error(err))
	return c.local.Delete(ctx, id)
}

func (c *Client) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	return order.ErrUnsupported
}

func (c *Client) EditOrder(ctx context.Context, id int64, item order.OrderItem) error {
	return order.ErrUnsupported
}
