package service

import (
	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/validators"
)

type Services struct {
	AuthService         AuthService
	ProductService      ProductService
	ShippingService     ShippingService
	NotificationService NotificationService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewStructValidator()

	return &Services{
		AuthService:         NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		ProductService:      NewProductService(storages.ProductRepository, validator, logger),
		ShippingService:     NewShippingService(storages.ShippingAddressRepository, validator, logger),
		NotificationService: NewNotificationService(storages.MessageCenterRepository, validator, logger),
	}
}
