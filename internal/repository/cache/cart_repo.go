package cache

import "dora-eats/internal/models"

// CartCacheRepo holds one cart per session. Stored carts are cloned on the
// way in and out so callers never share line slices with the cache.
type CartCacheRepo struct {
	cch KV
}

func NewCartCache(cch KV) *CartCacheRepo {
	return &CartCacheRepo{cch: cch}
}

func (r *CartCacheRepo) PutCart(cart models.Cart) {
	r.cch.Put(cart.SessionID, cart.Clone())
}

func (r *CartCacheRepo) GetCart(sessionID string) (models.Cart, bool) {
	v, ok := r.cch.Get(sessionID)
	if !ok {
		return models.Cart{SessionID: sessionID}, false
	}
	cart, ok := v.(models.Cart)
	if !ok {
		r.cch.Delete(sessionID)
		return models.Cart{SessionID: sessionID}, false
	}
	return cart.Clone(), true
}

func (r *CartCacheRepo) DeleteCart(sessionID string) {
	r.cch.Delete(sessionID)
}
