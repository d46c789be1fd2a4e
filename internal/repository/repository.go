package repository

import (
	"errors"
	"time"

	"dora-eats/internal/models"
	"dora-eats/internal/repository/cache"
)

var ErrNotFound = errors.New("not found")

type MenuRepo interface {
	GetAll() ([]models.MenuItem, error)
	Get(id string) (models.MenuItem, error)
}

type CartCache interface {
	PutCart(cart models.Cart)
	GetCart(sessionID string) (models.Cart, bool)
	DeleteCart(sessionID string)
}

type OrderCache interface {
	PutOrder(order models.PlacedOrder)
	GetOrder(number string) (models.PlacedOrder, error)
}

type InFlight interface {
	Acquire(sessionID string) (release func(), ok bool)
}

type Repository struct {
	MenuRepo
	CartCache
	OrderCache
	InFlight

	closers []func()
}

type CacheConfig struct {
	CartTTL         time.Duration
	ConfirmationTTL time.Duration
	InFlightTTL     time.Duration
}

// NewRepository wires the session caches around a catalog source.
func NewRepository(menu MenuRepo, cfg CacheConfig) *Repository {
	carts := cache.NewShardedCache(cache.WithShardTTL(cfg.CartTTL))
	orders := cache.NewCache(cache.WithTTL(cfg.ConfirmationTTL))
	inFlight := cache.NewCache(cache.WithTTL(cfg.InFlightTTL))

	return &Repository{
		MenuRepo:   menu,
		CartCache:  cache.NewCartCache(carts),
		OrderCache: cache.NewOrderCache(orders),
		InFlight:   cache.NewInFlightGuard(inFlight),
		closers:    []func(){carts.Close, orders.Close, inFlight.Close},
	}
}

// Close stops the cache janitors.
func (r *Repository) Close() {
	for _, c := range r.closers {
		c()
	}
}
