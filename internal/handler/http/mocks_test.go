package http

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"sync/atomic"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

// ─────────────────────────────────────────────
// Service mocks
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, req models.RegisterRequest) (models.Token, error)
	loginFn        func(ctx context.Context, req models.AuthRequest) (models.Token, error)
	createTokenFn  func(ctx context.Context, claims models.Claims) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.Token, error) {
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.AuthRequest) (models.Token, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, claims models.Claims) (models.Token, error) {
	return m.createTokenFn(ctx, claims)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockProductService struct {
	createFn func(ctx context.Context, req models.CreateProductRequest) (models.ExecResult, error)
	getFn    func(ctx context.Context, id int64) (models.ProductDescription, error)
	updateFn func(ctx context.Context, id int64, req models.UpdateProductRequest) (models.ExecResult, error)
	deleteFn func(ctx context.Context, id int64) (models.ExecResult, error)
}

func (m *mockProductService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.ExecResult, error) {
	return m.createFn(ctx, req)
}

func (m *mockProductService) GetProductDescription(ctx context.Context, id int64) (models.ProductDescription, error) {
	return m.getFn(ctx, id)
}

func (m *mockProductService) UpdateProductDescription(ctx context.Context, id int64, req models.UpdateProductRequest) (models.ExecResult, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockProductService) DeleteProduct(ctx context.Context, id int64) (models.ExecResult, error) {
	return m.deleteFn(ctx, id)
}

type mockShippingService struct {
	createFn func(ctx context.Context, req models.ShippingRequest) (models.ExecResult, error)
}

func (m *mockShippingService) CreateShippingAddress(ctx context.Context, req models.ShippingRequest) (models.ExecResult, error) {
	return m.createFn(ctx, req)
}

type mockNotificationService struct {
	addFn func(ctx context.Context, req models.NotifyRequest) (models.NotifyResponse, error)
}

func (m *mockNotificationService) AddSaleAlerts(ctx context.Context, req models.NotifyRequest) (models.NotifyResponse, error) {
	return m.addFn(ctx, req)
}

// ─────────────────────────────────────────────
// Session fakes
// ─────────────────────────────────────────────

type fakeSession struct {
	released *atomic.Int32
}

func (s *fakeSession) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	return nil, errors.New("fakeSession: no database")
}

func (s *fakeSession) NamedGetContext(context.Context, any, string, any) error {
	return errors.New("fakeSession: no database")
}

func (s *fakeSession) Release() error {
	s.released.Add(1)
	return nil
}

// fakeSessionSource counts checkouts and releases. When err is set every
// Acquire fails with it.
type fakeSessionSource struct {
	acquired atomic.Int32
	released atomic.Int32
	err      error
}

func (f *fakeSessionSource) Acquire(context.Context) (store.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.acquired.Add(1)
	return &fakeSession{released: &f.released}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		Server: config.Server{MaxBodyBytes: 1 << 20},
		CORS: config.CORS{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
			MaxAge:         300,
		},
	}
}

// newTestHandler builds a Handler around svcs with a fresh session source.
func newTestHandler(svcs *service.Services) (*Handler, *fakeSessionSource) {
	sessions := &fakeSessionSource{}
	return NewHandler(svcs, sessions, testConfig(), logger.Nop()), sessions
}

// acceptingAuth is an AuthService whose ParseToken accepts "good-token".
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "good-token" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{Claims: models.Claims{UserID: 7, Email: "a@b.com"}}, nil
		},
	}
}
