package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"secure-it/internal/data/entity"
	"secure-it/internal/dto/request"
	"secure-it/internal/dto/response"
	"secure-it/internal/usecase"
	"secure-it/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubAuthService struct {
	gotSignup   *request.SignupRequest
	gotLogin    *request.LoginRequest
	gotProvider *request.ProviderLoginRequest
	resp        *response.AuthResponse
	err         error
}

func (s *stubAuthService) Signup(_ context.Context, req *request.SignupRequest) (*response.AuthResponse, error) {
	s.gotSignup = req
	return s.resp, s.err
}

func (s *stubAuthService) Login(_ context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	s.gotLogin = req
	return s.resp, s.err
}

func (s *stubAuthService) ProviderLogin(_ context.Context, req *request.ProviderLoginRequest) (*response.AuthResponse, error) {
	s.gotProvider = req
	return s.resp, s.err
}

func (s *stubAuthService) Logout(context.Context) error { return s.err }

func okAuthResponse() *response.AuthResponse {
	return &response.AuthResponse{
		OK:       true,
		Customer: response.CustomerResponse{ID: 1, Name: "Jane", Email: "jane@x.com", Role: entity.RoleBasic},
		Session:  &entity.Session{Token: "tok", Customer: entity.CustomerProfile{ID: 1}},
	}
}

func doRequest(h http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) utils.ErrorResponse {
	t.Helper()
	var body utils.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{resp: okAuthResponse()}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := doRequest(h.Signup, http.MethodPost, "/api/auth/signup",
		`{"name":"Jane","email":"jane@x.com","password":"password123","role":"loyalty","accessCode":"abc"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	require.NotNil(t, svc.gotSignup)
	assert.Equal(t, "loyalty", svc.gotSignup.Role)
	assert.Equal(t, "abc", svc.gotSignup.AccessCode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.Contains(t, body, "customer")
	assert.Contains(t, body, "session")
}

func TestAuthHandler_InvalidJSON(t *testing.T) {
	svc := &stubAuthService{resp: okAuthResponse()}
	h := NewAuthHandler(svc, zap.NewNop())

	for name, fn := range map[string]http.HandlerFunc{"signup": h.Signup, "login": h.Login, "provider": h.Provider} {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(fn, http.MethodPost, "/", `{"email":`)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, utils.ErrorResponse{OK: false, Error: "Invalid JSON payload"}, decodeError(t, rec))
		})
	}
}

func TestAuthHandler_TrailingDataRejected(t *testing.T) {
	for _, body := range []string{`{}xyz`, `{"email":"a@b.com"}{}`, `{}}`} {
		t.Run(body, func(t *testing.T) {
			svc := &stubAuthService{resp: okAuthResponse()}
			h := NewAuthHandler(svc, zap.NewNop())

			rec := doRequest(h.Login, http.MethodPost, "/api/auth/login", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Invalid JSON payload", decodeError(t, rec).Error)
			assert.Nil(t, svc.gotLogin)
		})
	}
}

func TestAuthHandler_TrailingWhitespaceAccepted(t *testing.T) {
	svc := &stubAuthService{resp: okAuthResponse()}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := doRequest(h.Login, http.MethodPost, "/api/auth/login", "{\"email\":\"a@b.com\",\"password\":\"password123\"}\n  ")
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotLogin)
	assert.Equal(t, "a@b.com", svc.gotLogin.Email)
}

func TestAuthHandler_WrongFieldType(t *testing.T) {
	svc := &stubAuthService{resp: okAuthResponse()}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := doRequest(h.Signup, http.MethodPost, "/api/auth/signup", `{"email":123}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `Field "email" must be a string.`, decodeError(t, rec).Error)
	assert.Nil(t, svc.gotSignup)
}

func TestAuthHandler_EmptyBodyReachesService(t *testing.T) {
	svc := &stubAuthService{err: &usecase.AppError{Kind: usecase.KindValidation, Message: "Email and password are required."}}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := doRequest(h.Login, http.MethodPost, "/api/auth/login", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, svc.gotLogin)
	assert.Equal(t, "Email and password are required.", decodeError(t, rec).Error)
}

func TestAuthHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"validation", &usecase.AppError{Kind: usecase.KindValidation, Message: "Enter a valid email address."}, http.StatusBadRequest, "Enter a valid email address."},
		{"conflict", &usecase.AppError{Kind: usecase.KindConflict, Message: "An account with that email already exists."}, http.StatusConflict, "An account with that email already exists."},
		{"not found", &usecase.AppError{Kind: usecase.KindNotFound, Message: "No account found for that email."}, http.StatusUnauthorized, "No account found for that email."},
		{"authentication", &usecase.AppError{Kind: usecase.KindAuthentication, Message: "Incorrect password. Please try again."}, http.StatusUnauthorized, "Incorrect password. Please try again."},
		{"persistence", &usecase.AppError{Kind: usecase.KindPersistence, Message: "Failed to create the account.", Err: errors.New("pq: relation missing")}, http.StatusInternalServerError, "Failed to create the account."},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAuthHandler(&stubAuthService{err: tt.err}, zap.NewNop())
			rec := doRequest(h.Signup, http.MethodPost, "/api/auth/signup", `{}`)

			assert.Equal(t, tt.code, rec.Code)
			body := decodeError(t, rec)
			assert.False(t, body.OK)
			assert.Equal(t, tt.message, body.Error)
			assert.NotContains(t, rec.Body.String(), "relation missing")
		})
	}
}

func TestAuthHandler_Provider(t *testing.T) {
	svc := &stubAuthService{resp: okAuthResponse()}
	h := NewAuthHandler(svc, zap.NewNop())

	rec := doRequest(h.Provider, http.MethodPost, "/api/auth/provider", `{"email":"sam@example.com","provider":"github"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.gotProvider)
	assert.Equal(t, "github", svc.gotProvider.Provider)
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, zap.NewNop())

	rec := doRequest(h.Logout, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
