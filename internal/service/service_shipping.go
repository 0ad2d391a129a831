package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/validators"
	"github.com/MKhiriev/go-storefront/models"
)

type shippingService struct {
	shippingAddressRepository store.ShippingAddressRepository
	validator                 validators.Validator

	logger *logger.Logger
}

func NewShippingService(shippingAddressRepository store.ShippingAddressRepository, validator validators.Validator, logger *logger.Logger) ShippingService {
	return &shippingService{
		shippingAddressRepository: shippingAddressRepository,
		validator:                 validator,
		logger:                    logger,
	}
}

func (s *shippingService) CreateShippingAddress(ctx context.Context, req models.ShippingRequest) (models.ExecResult, error) {
	if err := s.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Err(err).Msg("invalid customer data provided")
		return models.ExecResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.shippingAddressRepository.CreateShippingAddress(ctx, *req.CustomerData)
}
