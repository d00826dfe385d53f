package client

import "context"

// UserClient groups the authenticated user's own endpoints
type UserClient struct {
	c *Client
}

// Profile returns the caller's profile
func (u *UserClient) Profile(ctx context.Context) (*User, error) {
	var out User
	if err := u.c.doRequest(ctx, "GET", "/user/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProfile changes the caller's display name
func (u *UserClient) UpdateProfile(ctx context.Context, name string) (*User, error) {
	var out User
	if err := u.c.doRequest(ctx, "PUT", "/user/profile", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preferences returns the caller's preferences
func (u *UserClient) Preferences(ctx context.Context) (*Preferences, error) {
	var out Preferences
	if err := u.c.doRequest(ctx, "GET", "/user/preferences", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePreferences replaces the caller's preferences
func (u *UserClient) UpdatePreferences(ctx context.Context, prefs Preferences) (*Preferences, error) {
	var out Preferences
	if err := u.c.doRequest(ctx, "PUT", "/user/preferences", prefs, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AvailableModels returns the models the caller's plan can chat with
func (u *UserClient) AvailableModels(ctx context.Context) ([]Model, error) {
	var out []Model
	if err := u.c.doRequest(ctx, "GET", "/user/available-models", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
