package store

import (
	"context"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/models"
)

type shippingAddressRepository struct {
	sessions SessionSource
	logger   *logger.Logger
}

func NewShippingAddressRepository(sessions SessionSource, logger *logger.Logger) ShippingAddressRepository {
	logger.Debug().Msg("creating shipping address repository")
	return &shippingAddressRepository{
		sessions: sessions,
		logger:   logger,
	}
}

func (r *shippingAddressRepository) CreateShippingAddress(ctx context.Context, address models.ShippingAddress) (models.ExecResult, error) {
	var id int64
	err := withSession(ctx, r.sessions, func(s Session) error {
		return s.NamedGetContext(ctx, &id, createShippingAddress, address)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*shippingAddressRepository.CreateShippingAddress").
			Msg("error inserting shipping address")
		return models.ExecResult{}, err
	}

	return models.ExecResult{InsertID: id, AffectedRows: 1}, nil
}
