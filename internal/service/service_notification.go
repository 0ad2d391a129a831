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
	"golang.org/x/sync/errgroup"
)

// maxConcurrentAlerts bounds the inserts in flight for one notify batch.
// They share the request's connection, so more would only queue in the driver.
const maxConcurrentAlerts = 4

type notificationService struct {
	messageCenterRepository store.MessageCenterRepository
	validator               validators.Validator

	logger *logger.Logger
}

func NewNotificationService(messageCenterRepository store.MessageCenterRepository, validator validators.Validator, logger *logger.Logger) NotificationService {
	return &notificationService{
		messageCenterRepository: messageCenterRepository,
		validator:               validator,
		logger:                  logger,
	}
}

func (n *notificationService) AddSaleAlerts(ctx context.Context, req models.NotifyRequest) (models.NotifyResponse, error) {
	log := logger.FromContext(ctx)

	if err := n.validator.Validate(ctx, req); err != nil {
		log.Err(err).Int("alerts", len(req.SaleAlert)).Msg("invalid sale alerts provided")
		return models.NotifyResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	results := make([]models.ExecResult, len(req.SaleAlert))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentAlerts)
	for i, alert := range req.SaleAlert {
		g.Go(func() error {
			res, err := n.messageCenterRepository.CreateEntry(gctx, alert)
			if err != nil {
				return fmt.Errorf("sale alert %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Err(err).Int("alerts", len(req.SaleAlert)).Msg("storing sale alerts failed")
		return models.NotifyResponse{}, err
	}

	return models.NotifyResponse{
		Message: models.NotifySuccessMessage,
		Data:    results,
	}, nil
}
