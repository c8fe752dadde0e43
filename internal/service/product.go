package service

import (
	"context"
	"fmt"

	"storefront/internal/models"
)

func (s *Service) CreateProduct(ctx context.Context, payload []byte) (models.Product, error) {
	p, err := s.v.ParseProduct(payload)
	if err != nil {
		return models.Product{}, err
	}
	stored, err := s.db.CreateProduct(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}
	return stored, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (models.Product, error) {
	p, err := s.db.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, mapNotFound(err)
	}
	return p, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, payload []byte) (models.Product, error) {
	patch, err := s.v.ParseProductPatch(payload)
	if err != nil {
		return models.Product{}, err
	}
	p, err := s.db.UpdateProduct(ctx, id, patch)
	if err != nil {
		return models.Product{}, mapNotFound(err)
	}
	return p, nil
}
