package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"printshop-storefront/internal/api"
	"printshop-storefront/internal/models"
)

// AuthService authenticates users against the store API. Passwords are
// never inspected locally; the token returned by the API is the only
// credential this application stores.
type AuthService struct {
	api *api.Client
}

// NewAuthService creates a new authentication service
func NewAuthService(apiClient *api.Client) *AuthService {
	return &AuthService{api: apiClient}
}

// Login exchanges credentials for a token and the resolved user
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	resp, err := s.api.Login(ctx, api.Credentials{Email: email, Password: password})
	if err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}

// Register creates an account and returns its first token
func (s *AuthService) Register(ctx context.Context, name, email, password, phone string) (string, *models.User, error) {
	resp, err := s.api.Register(ctx, api.Registration{
		Name:     name,
		Email:    email,
		Password: password,
		Phone:    phone,
	})
	if err != nil {
		return "", nil, err
	}
	return resp.Token, &resp.User, nil
}

// ResolveToken resolves the user behind a stored token. Tokens are JWTs
// issued by the store API; an already-expired token is rejected locally
// without a round trip. The signature is never verified here, the store
// API remains the authority on every accepted token.
func (s *AuthService) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	if tokenExpired(token) {
		return nil, models.ErrSessionExpired
	}
	return s.api.Me(ctx, token)
}

func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		// Not parseable as a JWT; let the store API decide
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
