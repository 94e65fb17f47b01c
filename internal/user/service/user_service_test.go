package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ridloal/rodamientos-backoffice/internal/user/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/user/repository"
	"github.com/ridloal/rodamientos-backoffice/internal/user/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testSecret = []byte("test-secret")

func TestUserService_Login(t *testing.T) {
	mockRepo := new(mocks.MockUserRepository)
	svc := NewUserService(mockRepo, testSecret, time.Hour)
	ctx := context.TODO()

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	newUser := func() *domain.User {
		return &domain.User{ID: 7, Username: "caja1", PasswordHash: string(hashedPassword)}
	}

	t.Run("Successful login", func(t *testing.T) {
		mockRepo.On("GetUserByUsername", ctx, "caja1").Return(newUser(), nil).Once()

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: " caja1 ", Password: "password123"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Empty(t, resp.User.PasswordHash)

		userID, err := svc.ParseToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), userID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Wrong password", func(t *testing.T) {
		mockRepo.On("GetUserByUsername", ctx, "caja1").Return(newUser(), nil).Once()

		resp, err := svc.Login(ctx, domain.LoginRequest{Username: "caja1", Password: "wrong"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Nil(t, resp)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo.On("GetUserByUsername", ctx, "ghost").Return(nil, repository.ErrUserNotFound).Once()

		_, err := svc.Login(ctx, domain.LoginRequest{Username: "ghost", Password: "x"})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserService_ParseToken(t *testing.T) {
	svc := NewUserService(new(mocks.MockUserRepository), testSecret, time.Hour)

	sign := func(c claims, key []byte, method jwt.SigningMethod) string {
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		require.NoError(t, err)
		return s
	}
	valid := claims{UserID: 3, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
	expired := claims{UserID: 3, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute))}}
	noExpiry := claims{UserID: 3}

	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"Valid", sign(valid, testSecret, jwt.SigningMethodHS256), false},
		{"Expired", sign(expired, testSecret, jwt.SigningMethodHS256), true},
		{"Missing exp", sign(noExpiry, testSecret, jwt.SigningMethodHS256), true},
		{"Other secret", sign(valid, []byte("other"), jwt.SigningMethodHS256), true},
		{"Other algorithm", sign(valid, testSecret, jwt.SigningMethodHS512), true},
		{"Garbage", "not.a.token", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := svc.ParseToken(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, int64(3), id)
		})
	}
}

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.TODO()

	t.Run("Creates missing admin", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := NewUserService(mockRepo, testSecret, time.Hour)
		mockRepo.On("GetUserByUsername", ctx, "admin").Return(nil, repository.ErrUserNotFound).Once()
		mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Username == "admin" && bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")) == nil
		})).Return(nil).Once()

		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3cret"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Existing admin is left alone", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := NewUserService(mockRepo, testSecret, time.Hour)
		mockRepo.On("GetUserByUsername", ctx, "admin").Return(&domain.User{ID: 1}, nil).Once()

		assert.NoError(t, svc.EnsureAdmin(ctx, "admin", "s3cret"))
		mockRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("Empty username skips seeding", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := NewUserService(mockRepo, testSecret, time.Hour)

		assert.NoError(t, svc.EnsureAdmin(ctx, "", ""))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository failure", func(t *testing.T) {
		mockRepo := new(mocks.MockUserRepository)
		svc := NewUserService(mockRepo, testSecret, time.Hour)
		mockRepo.On("GetUserByUsername", ctx, "admin").Return(nil, errors.New("db down")).Once()

		assert.Error(t, svc.EnsureAdmin(ctx, "admin", "s3cret"))
	})
}

func TestUserService_Me(t *testing.T) {
	mockRepo := new(mocks.MockUserRepository)
	svc := NewUserService(mockRepo, testSecret, time.Hour)
	ctx := context.TODO()

	mockRepo.On("GetUserByID", ctx, int64(7)).Return(&domain.User{ID: 7, Username: "caja1", PasswordHash: "hash"}, nil).Once()

	user, err := svc.Me(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "caja1", user.Username)
	assert.Empty(t, user.PasswordHash)
}
