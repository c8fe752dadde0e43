package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"storefront/internal/models"
)

type OrderPostgresRepo struct {
	db *gorm.DB
}

func NewOrderPostgres(db *gorm.DB) *OrderPostgresRepo {
	return &OrderPostgresRepo{db: db}
}

// CreateOrder stores o with its items in one transaction and returns the
// stored record. An empty ID is filled with a fresh UUID.
func (r *OrderPostgresRepo) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	for i := range o.Items {
		o.Items[i].ID = 0
		o.Items[i].OrderRefer = o.ID
	}

	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(&o).Error
	})
	if err != nil {
		return models.Order{}, errors.Wrapf(err, "create order %s", o.ID)
	}
	return o, nil
}

func (r *OrderPostgresRepo) GetOrderByID(ctx context.Context, id string) (models.Order, error) {
	if err := ctx.Err(); err != nil {
		return models.Order{}, err
	}
	var o models.Order
	err := r.db.Preload("Items", orderItemsByID).
		Where("id = ?", id).
		First(&o).Error
	if err != nil {
		return models.Order{}, errors.Wrapf(notFound(err), "get order %s", id)
	}
	return o, nil
}

// ListCustomerOrders returns the customer's orders, newest first.
func (r *OrderPostgresRepo) ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.Order{}
	err := r.db.Preload("Items", orderItemsByID).
		Where("user_id = ?", customerID).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list orders of customer %s", customerID)
	}
	return out, nil
}

func (r *OrderPostgresRepo) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	return r.update(ctx, id, map[string]interface{}{"order_status": status})
}

// UpdatePaymentStatus sets the payment status and, when ref is not empty,
// the provider payment reference.
func (r *OrderPostgresRepo) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus, ref string) (models.Order, error) {
	cols := map[string]interface{}{"payment_status": status}
	if ref != "" {
		cols["payment_ref"] = ref
	}
	return r.update(ctx, id, cols)
}

func (r *OrderPostgresRepo) update(ctx context.Context, id string, cols map[string]interface{}) (models.Order, error) {
	var o models.Order
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Preload("Items", orderItemsByID).Where("id = ?", id).First(&o).Error
	})
	if err != nil {
		return models.Order{}, errors.Wrapf(notFound(err), "update order %s", id)
	}
	return o, nil
}

func orderItemsByID(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.id")
}
