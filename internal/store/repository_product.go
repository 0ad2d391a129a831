// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

type productRepository struct {
	sessions SessionSource
	logger   *logger.Logger
}

func NewProductRepository(sessions SessionSource, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		sessions: sessions,
		logger:   logger,
	}
}

func (r *productRepository) CreateProduct(ctx context.Context, product models.ProductInput) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := withSession(ctx, r.sessions, func(s Session) error {
		return s.NamedGetContext(ctx, &id, createProduct, product)
	})
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error inserting product")
		return models.ExecResult{}, err
	}

	return models.ExecResult{InsertID: id, AffectedRows: 1}, nil
}

func (r *productRepository) GetProductDescription(ctx context.Context, id int64) (models.ProductDescription, error) {
	log := logger.FromContext(ctx)

	var description models.ProductDescription
	err := withSession(ctx, r.sessions, func(s Session) error {
		return s.NamedGetContext(ctx, &description, getProductDescription, map[string]any{"id": id})
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ProductDescription{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productRepository.GetProductDescription").Msg("error selecting product")
		return models.ProductDescription{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return description, nil
}

// UpdateProductDescription replaces the description of product id. Zero
// affected rows is reported as [ErrProductNotFound].
func (r *productRepository) UpdateProductDescription(ctx context.Context, id int64, description string) (models.ExecResult, error) {
	args := map[string]any{"id": id, "description": description}
	return r.exec(ctx, "*productRepository.UpdateProductDescription", updateProductDescription, args)
}

// DeleteProduct removes product id. Zero affected rows is reported as
// [ErrProductNotFound].
func (r *productRepository) DeleteProduct(ctx context.Context, id int64) (models.ExecResult, error) {
	return r.exec(ctx, "*productRepository.DeleteProduct", deleteProduct, map[string]any{"id": id})
}

func (r *productRepository) exec(ctx context.Context, funcName, query string, args map[string]any) (models.ExecResult, error) {
	log := logger.FromContext(ctx)

	var res sql.Result
	err := withSession(ctx, r.sessions, func(s Session) error {
		var execErr error
		res, execErr = s.NamedExecContext(ctx, query, args)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return models.ExecResult{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.ExecResult{}, ErrProductNotFound
	}

	return models.ExecResult{AffectedRows: affected}, nil
}
