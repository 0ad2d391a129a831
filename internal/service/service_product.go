// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

type productService struct {
	productRepository store.ProductRepository
	validator         validators.Validator

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, validator validators.Validator, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		validator:         validator,
		logger:            logger,
	}
}

func (p *productService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.ExecResult, error) {
	if err := p.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid product data provided")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return p.productRepository.CreateProduct(ctx, *req.Product)
}

func (p *productService) GetProductDescription(ctx context.Context, id int64) (models.ProductDescription, error) {
	if id <= 0 {
		return models.ProductDescription{}, ErrInvalidProductID
	}

	return p.productRepository.GetProductDescription(ctx, id)
}

func (p *productService) UpdateProductDescription(ctx context.Context, id int64, req models.UpdateProductRequest) (models.ExecResult, error) {
	if id <= 0 {
		return models.ExecResult{}, ErrInvalidProductID
	}
	if err := p.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).Int64("id", id).Msg("invalid product description provided")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return p.productRepository.UpdateProductDescription(ctx, id, req.Model)
}

func (p *productService) DeleteProduct(ctx context.Context, id int64) (models.ExecResult, error) {
	if id <= 0 {
		return models.ExecResult{}, ErrInvalidProductID
	}

	return p.productRepository.DeleteProduct(ctx, id)
}
