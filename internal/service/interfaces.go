package service

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

type AuthService interface {
	// RegisterUser stores a new user and returns a token whose claims carry
	// the whole registration payload.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	// Login checks the credentials and returns a token with the identity
	// claims and the default role.
	Login(ctx context.Context, req models.AuthRequest) (models.Token, error)
	CreateToken(ctx context.Context, claims models.Claims) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.ExecResult, error)
	GetProductDescription(ctx context.Context, id int64) (models.ProductDescription, error)
	UpdateProductDescription(ctx context.Context, id int64, req models.UpdateProductRequest) (models.ExecResult, error)
	DeleteProduct(ctx context.Context, id int64) (models.ExecResult, error)
}

type ShippingService interface {
	CreateShippingAddress(ctx context.Context, req models.ShippingRequest) (models.ExecResult, error)
}

type NotificationService interface {
	// AddSaleAlerts stores every alert of the batch and returns once all
	// inserts have finished. Results keep the order of the request.
	AddSaleAlerts(ctx context.Context, req models.NotifyRequest) (models.NotifyResponse, error)
}
