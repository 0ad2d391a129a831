package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/service"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/internal/utils"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// ─────────────────────────────────────────────
// In-memory repositories
// ─────────────────────────────────────────────

type memoryStore struct {
	mu       sync.Mutex
	nextID   int64
	users    map[string]models.User
	products map[int64]models.ProductInput
	shipping []models.ShippingAddress
	alerts   []models.MessageCenterEntry
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]models.User),
		products: make(map[int64]models.ProductInput),
	}
}

func (m *memoryStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Email]; ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	user.UserID = m.id()
	m.users[user.Email] = user
	return user, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[email]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return user, nil
}

func (m *memoryStore) CreateProduct(_ context.Context, product models.ProductInput) (models.ExecResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.id()
	m.products[id] = product
	return models.ExecResult{InsertID: id, AffectedRows: 1}, nil
}

func (m *memoryStore) GetProductDescription(_ context.Context, id int64) (models.ProductDescription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return models.ProductDescription{}, store.ErrProductNotFound
	}
	return models.ProductDescription{Description: p.Name}, nil
}

func (m *memoryStore) UpdateProductDescription(_ context.Context, id int64, description string) (models.ExecResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return models.ExecResult{}, store.ErrProductNotFound
	}
	p.Name = description
	m.products[id] = p
	return models.ExecResult{AffectedRows: 1}, nil
}

func (m *memoryStore) DeleteProduct(_ context.Context, id int64) (models.ExecResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id]; !ok {
		return models.ExecResult{}, store.ErrProductNotFound
	}
	delete(m.products, id)
	return models.ExecResult{AffectedRows: 1}, nil
}

func (m *memoryStore) CreateShippingAddress(_ context.Context, address models.ShippingAddress) (models.ExecResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.shipping = append(m.shipping, address)
	return models.ExecResult{InsertID: m.id(), AffectedRows: 1}, nil
}

func (m *memoryStore) CreateEntry(_ context.Context, entry models.MessageCenterEntry) (models.ExecResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.alerts = append(m.alerts, entry)
	return models.ExecResult{InsertID: m.id(), AffectedRows: 1}, nil
}

// ─────────────────────────────────────────────
// Server
// ─────────────────────────────────────────────

const e2eSignKey = "e2e-sign-key"

func newE2EServer(t *testing.T) *resty.Client {
	t.Helper()

	mem := newMemoryStore()
	sessions := &fakeSessionSource{}
	storages := &store.Storages{
		Sessions:                  sessions,
		UserRepository:            mem,
		ProductRepository:         mem,
		ShippingAddressRepository: mem,
		MessageCenterRepository:   mem,
	}

	cfg := testConfig()
	cfg.App = config.App{
		TokenSignKey:     e2eSignKey,
		TokenIssuer:      "go-storefront",
		TokenDuration:    time.Hour,
		PasswordHashCost: bcrypt.MinCost,
	}

	h := NewHandler(service.NewServices(storages, cfg, logger.Nop()), sessions, cfg, logger.Nop())
	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return resty.New().SetBaseURL(srv.URL).SetTimeout(5 * time.Second)
}

func register(t *testing.T, client *resty.Client, body models.RegisterRequest) *resty.Response {
	t.Helper()
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/register")
	require.NoError(t, err)
	return resp
}

func login(t *testing.T, client *resty.Client, email, password string) (*resty.Response, string) {
	t.Helper()
	var token string
	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(models.AuthRequest{Email: email, Password: password}).
		SetResult(&token).
		Post("/auth")
	require.NoError(t, err)
	return resp, token
}

func TestE2E_RegisterAndLogin(t *testing.T) {
	client := newE2EServer(t)

	resp := register(t, client, models.RegisterRequest{Email: "a@b.com", FName: "A", LName: "B", Password: "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	registerToken, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	require.NoError(t, err)
	assert.JSONEq(t, strconv.Quote(registerToken), resp.String())

	parsed, err := utils.ValidateAndParseJWTToken(registerToken, e2eSignKey, "go-storefront")
	require.NoError(t, err)
	assert.NotZero(t, parsed.Claims.UserID)
	assert.Equal(t, "a@b.com", parsed.Claims.Email)
	assert.Equal(t, "A", parsed.Claims.FName)
	assert.Equal(t, "B", parsed.Claims.LName)
	assert.Equal(t, "pw", parsed.Claims.Password)

	t.Run("same credentials", func(t *testing.T) {
		resp, token := login(t, client, "a@b.com", "pw")
		require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
		require.NotEmpty(t, token)

		parsed, err := utils.ValidateAndParseJWTToken(token, e2eSignKey, "go-storefront")
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", parsed.Claims.Email)
		assert.Equal(t, models.DefaultRole, parsed.Claims.Role)
	})

	t.Run("wrong password", func(t *testing.T) {
		resp, token := login(t, client, "a@b.com", "nope")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		assert.Empty(t, token)
		assert.Empty(t, resp.Header().Get("Authorization"))
		assert.JSONEq(t, `{"error":"invalid email/password"}`, resp.String())
	})

	t.Run("unknown email", func(t *testing.T) {
		resp, token := login(t, client, "x@b.com", "pw")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())
		assert.Empty(t, token)
		assert.JSONEq(t, `{"error":"invalid email/password"}`, resp.String())
	})

	t.Run("duplicate email", func(t *testing.T) {
		resp := register(t, client, models.RegisterRequest{Email: "a@b.com", FName: "A", LName: "B", Password: "pw"})
		assert.Equal(t, http.StatusConflict, resp.StatusCode())
	})

	t.Run("missing fields", func(t *testing.T) {
		resp := register(t, client, models.RegisterRequest{Email: "c@b.com"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
	})
}

func TestE2E_ProductLifecycle(t *testing.T) {
	client := newE2EServer(t)

	resp, token := login(t, client, "nobody@b.com", "pw")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode())
	require.Empty(t, token)

	resp = register(t, client, models.RegisterRequest{Email: "a@b.com", FName: "A", LName: "B", Password: "pw"})
	require.Equal(t, http.StatusOK, resp.StatusCode())
	_, token = login(t, client, "a@b.com", "pw")
	require.NotEmpty(t, token)

	authed := func() *resty.Request {
		return client.R().SetAuthToken(token).SetHeader("Content-Type", "application/json")
	}

	// rejected before any handler runs
	resp, err := client.R().Get("/1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode())

	var created models.ExecResult
	resp, err = authed().
		SetBody(models.CreateProductRequest{Product: &models.ProductInput{Brand: "Acme", Name: "Phone X", Price: 199}}).
		SetResult(&created).
		Post("/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	require.NotZero(t, created.InsertID)
	assert.Equal(t, int64(1), created.AffectedRows)

	productPath := "/" + strconv.FormatInt(created.InsertID, 10)

	var desc models.ProductDescription
	resp, err = authed().SetResult(&desc).Get(productPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Phone X", desc.Description)

	resp, err = authed().SetBody(models.UpdateProductRequest{Model: "Phone Y"}).Put(productPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())

	resp, err = authed().SetResult(&desc).Get(productPath)
	require.NoError(t, err)
	assert.Equal(t, "Phone Y", desc.Description)

	resp, err = authed().Delete(productPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.JSONEq(t, `{"insertId":0,"affectedRows":1}`, resp.String())

	resp, err = authed().Get(productPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = authed().Delete(productPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestE2E_ShippingAndNotify(t *testing.T) {
	client := newE2EServer(t)

	register(t, client, models.RegisterRequest{Email: "a@b.com", FName: "A", LName: "B", Password: "pw"})
	_, token := login(t, client, "a@b.com", "pw")
	require.NotEmpty(t, token)

	var shipped models.ExecResult
	resp, err := client.R().
		SetAuthToken(token).
		SetBody(models.ShippingRequest{CustomerData: &models.ShippingAddress{Name: "Jo", Address: "1 Main St"}}).
		SetResult(&shipped).
		Post("/shipping")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.NotZero(t, shipped.InsertID)

	var notified models.NotifyResponse
	resp, err = client.R().
		SetAuthToken(token).
		SetBody(models.NotifyRequest{SaleAlert: []models.MessageCenterEntry{
			{Subject: "s1", Message: "m1"},
			{Subject: "s2", Message: "m2"},
			{Subject: "s3", Message: "m3"},
		}}).
		SetResult(&notified).
		Post("/notify")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.Equal(t, models.NotifySuccessMessage, notified.Message)
	assert.Len(t, notified.Data, 3)

	resp, err = client.R().
		SetAuthToken(token).
		SetBody(`{"saleAlert":[]}`).
		SetHeader("Content-Type", "application/json").
		Post("/notify")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode())
}
