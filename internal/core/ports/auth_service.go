package ports

import "context"

// TokenResult carries a freshly signed bearer token.
type TokenResult struct {
	AccessToken string `json:"access_token"`
}

// AuthService defines the signup/login use cases.
type AuthService interface {
	Signup(ctx context.Context, email, password string) (*TokenResult, error)
	Login(ctx context.Context, email, password string) (*TokenResult, error)
}
