package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/pkg/errors"

	"storefront/internal/models"
)

type ProductPostgresRepo struct {
	db *gorm.DB
}

func NewProductPostgres(db *gorm.DB) *ProductPostgresRepo {
	return &ProductPostgresRepo{db: db}
}

func (r *ProductPostgresRepo) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		return tx.Create(&p).Error
	})
	if err != nil {
		return models.Product{}, errors.Wrapf(err, "create product %s", p.ID)
	}
	return p, nil
}

func (r *ProductPostgresRepo) GetProduct(ctx context.Context, id string) (models.Product, error) {
	if err := ctx.Err(); err != nil {
		return models.Product{}, err
	}
	var p models.Product
	if err := r.db.Where("id = ?", id).First(&p).Error; err != nil {
		return models.Product{}, errors.Wrapf(notFound(err), "get product %s", id)
	}
	return p, nil
}

// UpdateProduct applies the fields set in patch. An empty patch only checks
// that the product exists.
func (r *ProductPostgresRepo) UpdateProduct(ctx context.Context, id string, patch models.ProductPatch) (models.Product, error) {
	cols := patch.Columns()
	if len(cols) == 0 {
		return r.GetProduct(ctx, id)
	}

	var p models.Product
	err := transact(ctx, r.db, func(tx *gorm.DB) error {
		res := tx.Model(&models.Product{}).Where("id = ?", id).Updates(cols)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("id = ?", id).First(&p).Error
	})
	if err != nil {
		return models.Product{}, errors.Wrapf(notFound(err), "update product %s", id)
	}
	return p, nil
}
