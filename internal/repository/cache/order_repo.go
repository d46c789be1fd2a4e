package cache

import (
	"fmt"
	"net/http"

	"dora-eats/internal/models"
)

// OrderCacheRepo keeps confirmations of placed orders, keyed by order number.
type OrderCacheRepo struct {
	cch KV
}

func NewOrderCache(cch KV) *OrderCacheRepo {
	return &OrderCacheRepo{cch: cch}
}

func (o *OrderCacheRepo) PutOrder(order models.PlacedOrder) {
	o.cch.Put(order.Number, order)
}

func (o *OrderCacheRepo) GetOrder(number string) (models.PlacedOrder, error) {
	v, ok := o.cch.Get(number)
	if !ok {
		return models.PlacedOrder{}, NewErrorHandler(fmt.Errorf("order %s not found", number), http.StatusNotFound)
	}

	ord, ok := v.(models.PlacedOrder)
	if !ok {
		return models.PlacedOrder{},
			NewErrorHandler(fmt.Errorf("failed to convert order %s to its struct", number),
				http.StatusInternalServerError)
	}
	return ord, nil
}
