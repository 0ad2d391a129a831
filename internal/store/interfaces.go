package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Session is one connection checked out of the pool for the lifetime of a
// request. Statements use :name placeholders bound from struct db tags or
// map keys.
type Session interface {
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
	NamedGetContext(ctx context.Context, dest any, query string, arg any) error
	// Release returns the connection to the pool. It is safe to call more
	// than once.
	Release() error
}

// SessionSource hands out configured sessions.
type SessionSource interface {
	Acquire(ctx context.Context) (Session, error)
}

// ErrorClassificator translates driver errors into the sentinel errors of
// this package.
type ErrorClassificator interface {
	Classify(err error) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.ProductInput) (models.ExecResult, error)
	GetProductDescription(ctx context.Context, id int64) (models.ProductDescription, error)
	UpdateProductDescription(ctx context.Context, id int64, description string) (models.ExecResult, error)
	DeleteProduct(ctx context.Context, id int64) (models.ExecResult, error)
}

type ShippingAddressRepository interface {
	CreateShippingAddress(ctx context.Context, address models.ShippingAddress) (models.ExecResult, error)
}

type MessageCenterRepository interface {
	CreateEntry(ctx context.Context, entry models.MessageCenterEntry) (models.ExecResult, error)
}
