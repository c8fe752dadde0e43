package postgres

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"storefront/internal/models"
)

type CouponPostgresRepo struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCouponPostgres(db *gorm.DB) *CouponPostgresRepo {
	return &CouponPostgresRepo{db: db, now: time.Now}
}

// ValidateCoupon looks up an active coupon by code and checks it against the
// customer's redemption and delivered-order history. Rule failures are
// returned as the models.ErrCoupon* sentinels.
func (r *CouponPostgresRepo) ValidateCoupon(ctx context.Context, code, customerID string) (models.Coupon, error) {
	if err := ctx.Err(); err != nil {
		return models.Coupon{}, err
	}

	var c models.Coupon
	err := r.db.Where("code = ? AND is_active = ?", code, true).First(&c).Error
	if gorm.IsRecordNotFoundError(err) {
		return models.Coupon{}, models.ErrCouponInvalid
	}
	if err != nil {
		return models.Coupon{}, errors.Wrapf(err, "find coupon %q", code)
	}

	var usage models.CouponUsage
	if err := r.db.Model(&models.CouponRedemption{}).
		Where("coupon_id = ? AND customer_id = ?", c.ID, customerID).
		Count(&usage.Redemptions).Error; err != nil {
		return models.Coupon{}, errors.Wrapf(err, "count redemptions of coupon %q", code)
	}
	if c.AppliesToFirstNOrders != nil {
		if err := r.db.Model(&models.Order{}).
			Where("user_id = ? AND order_status = ?", customerID, models.OrderDelivered).
			Count(&usage.DeliveredOrders).Error; err != nil {
			return models.Coupon{}, errors.Wrapf(err, "count delivered orders of customer %s", customerID)
		}
	}

	if err := c.CheckEligibility(r.now(), usage); err != nil {
		return models.Coupon{}, err
	}
	return c, nil
}
