package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/arizon-automation/sales-dashboard/internal/config"
	"github.com/arizon-automation/sales-dashboard/internal/domain"
	"github.com/arizon-automation/sales-dashboard/pkg/apiErrors"
)

const tokenTTL = 24 * time.Hour

type Authenticator interface {
	// Login checks a username/password pair against the configured
	// credential list and returns a signed session token.
	Login(username, password string) (string, error)

	// ValidateToken parses and verifies a session token.
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	users  map[string]domain.User
	secret string
}

// NewService builds an authenticator over the statically configured
// dashboard accounts.
func NewService(cfg *config.Config) Authenticator {
	users := make(map[string]domain.User, len(cfg.Users))
	for _, user := range cfg.Users {
		users[user.Username] = user
	}

	return &Service{
		users:  users,
		secret: cfg.Auth.Secret,
	}
}

func (s *Service) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "username and password are required")
	}

	user, ok := s.users[username]
	if !ok {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, username, "unknown user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, username, "wrong password")
	}

	token, err := generateJWT(user, s.secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "could not generate session token")
	}

	return token, nil
}

func generateJWT(user domain.User, secret string) (string, error) {
	claims := domain.Claims{
		Username: user.Username,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, "")
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}
