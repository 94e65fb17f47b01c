package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/middleware"
	"github.com/ridloal/rodamientos-backoffice/internal/user/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/user/service"
	"github.com/ridloal/rodamientos-backoffice/internal/user/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newRouter(svc *mocks.MockUserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(svc)
	public := r.Group("/api")
	h.RegisterPublicRoutes(public)
	h.RegisterRoutes(r.Group("/api", middleware.Auth(svc)))
	return r
}

func TestUserHandler_Login(t *testing.T) {
	svc := new(mocks.MockUserService)
	r := newRouter(svc)

	t.Run("Success", func(t *testing.T) {
		req := domain.LoginRequest{Username: "caja1", Password: "password123"}
		svc.On("Login", mock.Anything, req).Return(&domain.LoginResponse{
			User: domain.User{ID: 7, Username: "caja1", PasswordHash: "secret-hash"}, Token: "tok",
		}, nil).Once()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"caja1","password":"password123"}`)))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
		assert.NotContains(t, w.Body.String(), "secret-hash")
	})

	t.Run("Invalid credentials", func(t *testing.T) {
		svc.On("Login", mock.Anything, mock.Anything).Return(nil, service.ErrInvalidCredentials).Once()

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login",
			strings.NewReader(`{"username":"caja1","password":"nope"}`)))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Missing password", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"caja1"}`)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
	svc.AssertExpectations(t)
}

func TestUserHandler_Me(t *testing.T) {
	svc := new(mocks.MockUserService)
	r := newRouter(svc)

	svc.On("ParseToken", "tok").Return(int64(7), nil).Once()
	svc.On("Me", mock.Anything, int64(7)).Return(&domain.User{ID: 7, Username: "caja1"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer tok")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"username":"caja1"`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertExpectations(t)
}
