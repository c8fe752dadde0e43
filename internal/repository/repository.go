package repository

import (
	"context"

	"github.com/jinzhu/gorm"

	"storefront/internal/models"
	"storefront/internal/repository/cache"
	"storefront/internal/repository/postgres"
)

// ErrNotFound is returned, possibly wrapped, when no record matches an id.
var ErrNotFound = postgres.ErrNotFound

type Orders interface {
	CreateOrder(ctx context.Context, o models.Order) (models.Order, error)
	GetOrderByID(ctx context.Context, id string) (models.Order, error)
	ListCustomerOrders(ctx context.Context, customerID string) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error)
	UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus, ref string) (models.Order, error)
}

type Products interface {
	CreateProduct(ctx context.Context, p models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id string) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error)
}

type Coupons interface {
	ValidateCoupon(ctx context.Context, code, customerID string) (models.Coupon, error)
}

type Addresses interface {
	ListSavedAddresses(ctx context.Context, customerID string) ([]models.SavedAddress, error)
	CreateSavedAddress(ctx context.Context, a models.SavedAddress) (models.SavedAddress, error)
}

// Database is the persistent store behind the storefront.
type Database interface {
	Orders
	Products
	Coupons
	Addresses
}

type OrderCache interface {
	PutOrder(o models.Order)
	GetOrder(id string) (models.Order, bool)
	DeleteOrder(id string)
}

type Repository struct {
	Database
	OrderCache
}

type postgresDatabase struct {
	*postgres.OrderPostgresRepo
	*postgres.ProductPostgresRepo
	*postgres.CouponPostgresRepo
	*postgres.AddressPostgresRepo
}

func NewPostgresDatabase(db *gorm.DB) Database {
	return postgresDatabase{
		OrderPostgresRepo:   postgres.NewOrderPostgres(db),
		ProductPostgresRepo: postgres.NewProductPostgres(db),
		CouponPostgresRepo:  postgres.NewCouponPostgres(db),
		AddressPostgresRepo: postgres.NewAddressPostgres(db),
	}
}

func NewRepository(db *gorm.DB, cacheOpts ...cache.Option) *Repository {
	return &Repository{
		Database:   NewPostgresDatabase(db),
		OrderCache: cache.NewOrderCache(cacheOpts...),
	}
}

// Close stops background work owned by the repository.
func (r *Repository) Close() {
	if c, ok := r.OrderCache.(interface{ Close() }); ok {
		c.Close()
	}
}
