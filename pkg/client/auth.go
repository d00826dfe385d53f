package client

import "context"

// AuthClient groups the authentication endpoints
type AuthClient struct {
	c *Client
}

// Register creates an account and stores the session token on the client
func (a *AuthClient) Register(ctx context.Context, email, name, password string) (*AuthResult, error) {
	var out AuthResult
	err := a.c.doRequest(ctx, "POST", "/auth/register", map[string]string{
		"email":    email,
		"name":     name,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	a.c.SetToken(out.AccessToken)
	return &out, nil
}

// Login authenticates and stores the session token on the client
func (a *AuthClient) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	var out AuthResult
	err := a.c.doRequest(ctx, "POST", "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	if err != nil {
		return nil, err
	}
	a.c.SetToken(out.AccessToken)
	return &out, nil
}

// Me returns the authenticated user
func (a *AuthClient) Me(ctx context.Context) (*User, error) {
	var out User
	if err := a.c.doRequest(ctx, "GET", "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout ends the session server-side and clears the stored token
func (a *AuthClient) Logout(ctx context.Context) error {
	if err := a.c.doRequest(ctx, "POST", "/auth/logout", nil, nil); err != nil {
		return err
	}
	a.c.SetToken("")
	return nil
}
