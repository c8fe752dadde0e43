package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int              { return &n }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func TestCoupon_CheckEligibility(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	base := Coupon{
		Code:         "FESTIVE",
		CouponType:   CouponFlat,
		IsActive:     true,
		PerUserLimit: 1,
		ValidFrom:    now.Add(-24 * time.Hour),
		ValidUntil:   timePtr(now.Add(24 * time.Hour)),
	}

	tests := []struct {
		name   string
		mutate func(c *Coupon)
		usage  CouponUsage
		want   error
	}{
		{name: "eligible"},
		{name: "inactive", mutate: func(c *Coupon) { c.IsActive = false }, want: ErrCouponInvalid},
		{name: "not yet valid", mutate: func(c *Coupon) { c.ValidFrom = now.Add(time.Hour) }, want: ErrCouponExpired},
		{name: "expired", mutate: func(c *Coupon) { c.ValidUntil = timePtr(now.Add(-time.Hour)) }, want: ErrCouponExpired},
		{name: "open ended", mutate: func(c *Coupon) { c.ValidUntil = nil }},
		{
			name:   "global limit reached",
			mutate: func(c *Coupon) { c.UsageLimit = intPtr(100); c.UsageCount = 100 },
			want:   ErrCouponLimitReached,
		},
		{name: "already used", usage: CouponUsage{Redemptions: 1}, want: ErrCouponAlreadyUsed},
		{name: "unlimited per user", mutate: func(c *Coupon) { c.PerUserLimit = 0 }, usage: CouponUsage{Redemptions: 5}},
		{
			name:   "past first orders",
			mutate: func(c *Coupon) { c.AppliesToFirstNOrders = intPtr(1) },
			usage:  CouponUsage{DeliveredOrders: 1},
			want:   ErrCouponFirstOrders,
		},
		{
			name:   "within first orders",
			mutate: func(c *Coupon) { c.AppliesToFirstNOrders = intPtr(3) },
			usage:  CouponUsage{DeliveredOrders: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base
			if tt.mutate != nil {
				tt.mutate(&c)
			}
			err := c.CheckEligibility(now, tt.usage)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestCoupon_Discount(t *testing.T) {
	flat := Coupon{CouponType: CouponFlat, DiscountValue: 50, MinOrderValue: 199}
	d, err := flat.Discount(250)
	require.NoError(t, err)
	require.Equal(t, 50.0, d)

	_, err = flat.Discount(150)
	require.ErrorIs(t, err, ErrCouponMinOrder)

	flat.MinOrderValue = 0
	d, err = flat.Discount(30)
	require.NoError(t, err)
	require.Equal(t, 30.0, d, "never more than the subtotal")

	pct := Coupon{CouponType: CouponPercent, DiscountValue: 12.5}
	d, err = pct.Discount(333.33)
	require.NoError(t, err)
	require.Equal(t, 41.67, d)

	pct.MaxDiscountAmount = floatPtr(25)
	d, err = pct.Discount(333.33)
	require.NoError(t, err)
	require.Equal(t, 25.0, d)

	first := Coupon{CouponType: CouponFirstOrderDiscount, DiscountValue: 10}
	d, err = first.Discount(480)
	require.NoError(t, err)
	require.Equal(t, 48.0, d)
}
