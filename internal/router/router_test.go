package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) ChangePassword(ctx context.Context, user *model.User, oldPassword, newPassword string) error {
	args := m.Called(ctx, user, oldPassword, newPassword)
	return args.Error(0)
}

func (m *MockAuthService) Profile(ctx context.Context, userID uint) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func echoHandler(c echo.Context) error {
	user, _ := c.Get("user").(*model.User)
	if user == nil {
		return c.String(http.StatusOK, "anonymous")
	}
	return c.String(http.StatusOK, user.Email)
}

func TestAuthMiddleware(t *testing.T) {
	user := &model.User{Email: "test@example.com", Role: model.RoleCustomer}
	user.ID = 42

	t.Run("missing token is rejected", func(t *testing.T) {
		svc := new(MockAuthService)
		e := echo.New()
		e.GET("/secured", echoHandler, AuthMiddleware(svc))

		req := httptest.NewRequest(http.MethodGet, "/secured", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "Authenticate")
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Authenticate", mock.Anything, "bad-token").Return(nil, apperrors.ErrUnauthorized)

		e := echo.New()
		e.GET("/secured", echoHandler, AuthMiddleware(svc))

		req := httptest.NewRequest(http.MethodGet, "/secured", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token stores resolved user on context", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Authenticate", mock.Anything, "good-token").Return(user, nil)

		e := echo.New()
		e.GET("/secured", echoHandler, AuthMiddleware(svc))

		req := httptest.NewRequest(http.MethodGet, "/secured", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "test@example.com", rec.Body.String())
	})
}

func TestRequireAdmin(t *testing.T) {
	customer := &model.User{Email: "customer@example.com", Role: model.RoleCustomer}
	admin := &model.User{Email: "admin@example.com", Role: model.RoleAdmin}

	t.Run("customer is forbidden", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Authenticate", mock.Anything, "customer-token").Return(customer, nil)

		e := echo.New()
		e.POST("/admin-only", echoHandler, AuthMiddleware(svc), RequireAdmin())

		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer customer-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("admin passes", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Authenticate", mock.Anything, "admin-token").Return(admin, nil)

		e := echo.New()
		e.POST("/admin-only", echoHandler, AuthMiddleware(svc), RequireAdmin())

		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer admin-token")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing user on context is forbidden", func(t *testing.T) {
		e := echo.New()
		e.POST("/admin-only", echoHandler, RequireAdmin())

		req := httptest.NewRequest(http.MethodPost, "/admin-only", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
