package wire

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"secure-it/internal/data/entity"
	"secure-it/internal/data/repository"
	"secure-it/pkg/events"
	"secure-it/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memCustomers is just enough of a customer store to drive the router.
type memCustomers struct {
	mu   sync.Mutex
	rows []entity.Customer
}

func (m *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == c.Email {
			return repository.ErrDuplicateEmail
		}
	}
	c.ID = int64(len(m.rows) + 1)
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memCustomers) FindByID(_ context.Context, id int64) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.ID == id {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) FindByEmail(_ context.Context, email string) (*entity.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.Email == email {
			out := row
			return &out, nil
		}
	}
	return nil, nil
}

func (m *memCustomers) UpdateProvider(_ context.Context, id int64, provider string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			p := provider
			m.rows[i].Provider = &p
			return nil
		}
	}
	return repository.ErrCustomerNotFound
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	repo := &repository.Repository{
		Customer: &memCustomers{},
		SiteMode: repository.NewMemorySiteModeRepository(entity.SiteModeEcommerce),
	}
	config := &utils.Config{
		Auth: utils.AuthConfig{
			SessionTTLHours:     72,
			DefaultRole:         entity.RoleBasic,
			DefaultProviderRole: entity.RoleBasic,
			RoleCodes:           entity.RoleCodes{entity.RoleAdmin: "letmein"},
			BcryptRounds:        utils.MinBcryptCost,
		},
	}
	return Wiring(repo, config, events.NewNoopPublisher(), zap.NewNop())
}

func serve(app *App, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	rec := serve(newTestApp(t), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_NotFoundAndMethodNotAllowed(t *testing.T) {
	app := newTestApp(t)

	rec := serve(app, http.MethodGet, "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Not found"}`, rec.Body.String())

	rec = serve(app, http.MethodGet, "/api/auth/signup", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Method not allowed"}`, rec.Body.String())

	rec = serve(app, http.MethodOptions, "/api/auth/signup", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_AuthFlow(t *testing.T) {
	app := newTestApp(t)

	rec := serve(app, http.MethodPost, "/api/auth/signup",
		`{"name":"Jane","email":"jane@x.com","password":"password123","role":"admin"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var signup struct {
		OK       bool `json:"ok"`
		Customer struct {
			ID   int64  `json:"id"`
			Role string `json:"role"`
		} `json:"customer"`
		Session struct {
			Token     string `json:"token"`
			CreatedAt string `json:"createdAt"`
			ExpiresAt string `json:"expiresAt"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signup))
	assert.True(t, signup.OK)
	assert.Equal(t, "basic", signup.Customer.Role)
	assert.Len(t, signup.Session.Token, 64)
	assert.NotEmpty(t, signup.Session.ExpiresAt)
	assert.NotContains(t, rec.Body.String(), "password")
	assert.NotContains(t, rec.Body.String(), "salt")

	rec = serve(app, http.MethodPost, "/api/auth/signup",
		`{"name":"Jane","email":"jane@x.com","password":"password123"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(app, http.MethodPost, "/api/auth/login", `{"email":"jane@x.com","password":"wrongpass"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Incorrect password. Please try again."}`, rec.Body.String())

	rec = serve(app, http.MethodPost, "/api/auth/login", `{"email":"jane@x.com","password":"password123"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodPost, "/api/auth/provider", `{"email":"jane@x.com","provider":"github"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"provider":"github"`)

	rec = serve(app, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = serve(app, http.MethodPost, "/api/auth/login", `{"email":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Invalid JSON payload"}`, rec.Body.String())
}

func TestRouter_SiteMode(t *testing.T) {
	app := newTestApp(t)

	rec := serve(app, http.MethodPost, "/api/site/mode/toggle", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true,"mode":"basic","ecommerceEnabled":false}`, rec.Body.String())

	rec = serve(app, http.MethodGet, "/api/site/contact", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"mode":"basic"`)

	rec = serve(app, http.MethodPut, "/api/site/mode", `{"mode":"ecommerce"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(app, http.MethodGet, "/api/site/mode", "")
	assert.JSONEq(t, `{"ok":true,"mode":"ecommerce","ecommerceEnabled":true}`, rec.Body.String())
}
