package cache

import (
	"storefront/internal/models"
)

// OrderCacheRepo keeps recently read or written orders by id. Orders are
// copied on the way in and out.
type OrderCacheRepo struct {
	cch *Sharded[models.Order]
}

func NewOrderCache(opts ...Option) *OrderCacheRepo {
	return &OrderCacheRepo{cch: New[models.Order](opts...)}
}

func (o *OrderCacheRepo) PutOrder(ord models.Order) {
	o.cch.Put(ord.ID, ord.Clone())
}

func (o *OrderCacheRepo) GetOrder(id string) (models.Order, bool) {
	ord, ok := o.cch.Get(id)
	if !ok {
		return models.Order{}, false
	}
	return ord.Clone(), true
}

func (o *OrderCacheRepo) DeleteOrder(id string) {
	o.cch.Delete(id)
}

func (o *OrderCacheRepo) Close() {
	o.cch.Close()
}
