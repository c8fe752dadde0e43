package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"storefront/internal/models"
)

type AddressPostgresRepo struct {
	db *gorm.DB
}

func NewAddressPostgres(db *gorm.DB) *AddressPostgresRepo {
	return &AddressPostgresRepo{db: db}
}

// ListSavedAddresses returns the customer's active addresses, default first.
func (r *AddressPostgresRepo) ListSavedAddresses(ctx context.Context, customerID string) ([]models.SavedAddress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := []models.SavedAddress{}
	err := r.db.Where("customer_id = ? AND is_active = ?", customerID, true).
		Order("is_default desc").
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list addresses of customer %s", customerID)
	}
	return out, nil
}

// CreateSavedAddress stores a. A new default address clears the previous one.
func (r *AddressPostgresRepo) CreateSavedAddress(ctx context.Context, a models.SavedAddress) (models.SavedAddress, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		if a.IsDefault {
			if err := tx.Model(&models.SavedAddress{}).
				Where("customer_id = ? AND is_default = ?", a.CustomerID, true).
				Update("is_default", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&a).Error
	})
	if err != nil {
		return models.SavedAddress{}, errors.Wrapf(err, "create address for customer %s", a.CustomerID)
	}
	return a, nil
}
