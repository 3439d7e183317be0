package api

import (
	"context"

	"printshop-storefront/internal/models"
)

// Credentials is the login request payload
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the account creation request payload
type Registration struct {
	Name     string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"telefono,omitempty"`
}

// AuthResponse carries the credential token and the resolved user
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"usuario"`
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/login", "", creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account and returns its first token
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	var resp AuthResponse
	if err := c.post(ctx, "/auth/register", "", reg, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me resolves the user behind a stored token
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.get(ctx, "/auth/me", token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
