package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/ridloal/rodamientos-backoffice/internal/platform/logger"
	"github.com/ridloal/rodamientos-backoffice/internal/user/domain"
	"github.com/ridloal/rodamientos-backoffice/internal/user/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type UserService interface {
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
	EnsureAdmin(ctx context.Context, username, password string) error
	ParseToken(token string) (int64, error)
}

type claims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type userService struct {
	repo      repository.UserRepository
	secretKey []byte
	tokenTTL  time.Duration
	now       func() time.Time
}

// NewUserService membuat secret acak jika secretKey kosong; token lama tidak valid setelah restart.
func NewUserService(repo repository.UserRepository, secretKey []byte, tokenTTL time.Duration) UserService {
	if len(secretKey) == 0 {
		logger.Warn("JWT_SECRET_KEY not set, using a random per-process key")
		secretKey = make([]byte, 32)
		if _, err := rand.Read(secretKey); err != nil {
			panic(fmt.Sprintf("failed to generate jwt secret: %v", err))
		}
	}
	return &userService{repo: repo, secretKey: secretKey, tokenTTL: tokenTTL, now: time.Now}
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)

	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			logger.Error("Login: failed to get user by username", err)
		}
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		logger.Error("Login: failed to sign token", err)
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	user.PasswordHash = ""
	return &domain.LoginResponse{User: *user, Token: token}, nil
}

func (s *userService) issueToken(user *domain.User) (string, error) {
	now := s.now()
	c := claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secretKey)
}

// ParseToken dipakai oleh middleware.Auth.
func (s *userService) ParseToken(token string) (int64, error) {
	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if c.UserID <= 0 {
		return 0, ErrInvalidToken
	}
	return c.UserID, nil
}

func (s *userService) Me(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}

// EnsureAdmin membuat operator awal jika username belum ada. Username kosong = dilewati.
func (s *userService) EnsureAdmin(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil
	}
	_, err := s.repo.GetUserByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return fmt.Errorf("lookup admin user: %w", err)
	}
	if password == "" {
		return errors.New("ADMIN_PASSWORD is required to create the admin user")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}
	user := &domain.User{Username: username, PasswordHash: string(hashedPassword)}
	user.Person.FirstName = username
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserConflict) {
			return nil
		}
		return fmt.Errorf("could not save admin user: %w", err)
	}
	logger.Info("Admin user created", zap.String("username", username), zap.Int64("user_id", user.ID))
	return nil
}
