package store

import "github.com/MKhiriev/go-storefront/internal/logger"

// Storages groups every repository together with the session source the
// HTTP layer checks sessions out of.
type Storages struct {
	Sessions                  SessionSource
	UserRepository            UserRepository
	ProductRepository         ProductRepository
	ShippingAddressRepository ShippingAddressRepository
	MessageCenterRepository   MessageCenterRepository
}

// NewStorages wires all repositories to sessions.
func NewStorages(sessions SessionSource, log *logger.Logger) *Storages {
	return &Storages{
		Sessions:                  sessions,
		UserRepository:            NewUserRepository(sessions, log),
		ProductRepository:         NewProductRepository(sessions, log),
		ShippingAddressRepository: NewShippingAddressRepository(sessions, log),
		MessageCenterRepository:   NewMessageCenterRepository(sessions, log),
	}
}
