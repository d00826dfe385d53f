package client

import (
	"context"
	"fmt"
)

// AdminClient groups the back-office endpoints. All calls require a
// session with the administrator role.
type AdminClient struct {
	c *Client
}

// Users returns a page of user accounts
func (a *AdminClient) Users(ctx context.Context, page, pageSize int) (*Paginated[User], error) {
	var out Paginated[User]
	path := fmt.Sprintf("/admin/users/?page=%d&page_size=%d", page, pageSize)
	if err := a.c.doRequest(ctx, "GET", path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetUser returns one user account
func (a *AdminClient) GetUser(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := a.c.doRequest(ctx, "GET", fmt.Sprintf("/admin/users/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserRole changes a user's role
func (a *AdminClient) SetUserRole(ctx context.Context, id int64, role string) (*User, error) {
	var out User
	if err := a.c.doRequest(ctx, "PUT", fmt.Sprintf("/admin/users/%d/role", id), map[string]string{"role": role}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserPlan changes a user's plan tier
func (a *AdminClient) SetUserPlan(ctx context.Context, id int64, plan string) (*User, error) {
	var out User
	if err := a.c.doRequest(ctx, "PUT", fmt.Sprintf("/admin/users/%d/plan", id), map[string]string{"plan": plan}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SetUserStatus changes a user's account status
func (a *AdminClient) SetUserStatus(ctx context.Context, id int64, status string) (*User, error) {
	var out User
	if err := a.c.doRequest(ctx, "PUT", fmt.Sprintf("/admin/users/%d/status", id), map[string]string{"status": status}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser removes a user account
func (a *AdminClient) DeleteUser(ctx context.Context, id int64) error {
	return a.c.doRequest(ctx, "DELETE", fmt.Sprintf("/admin/users/%d", id), nil, nil)
}

// Plans returns all plans, including inactive ones
func (a *AdminClient) Plans(ctx context.Context) ([]Plan, error) {
	var out []Plan
	if err := a.c.doRequest(ctx, "GET", "/admin/plans/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePlan adds a plan to the catalog
func (a *AdminClient) CreatePlan(ctx context.Context, p Plan) (*Plan, error) {
	var out Plan
	if err := a.c.doRequest(ctx, "POST", "/admin/plans/", p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePlan replaces a plan definition
func (a *AdminClient) UpdatePlan(ctx context.Context, p Plan) (*Plan, error) {
	var out Plan
	if err := a.c.doRequest(ctx, "PUT", "/admin/plans/"+p.ID, p, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePlan removes a plan from the catalog
func (a *AdminClient) DeletePlan(ctx context.Context, id string) error {
	return a.c.doRequest(ctx, "DELETE", "/admin/plans/"+id, nil, nil)
}

// Models returns the full model catalog
func (a *AdminClient) Models(ctx context.Context) ([]Model, error) {
	var out []Model
	if err := a.c.doRequest(ctx, "GET", "/admin/models/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateModel registers a catalog model
func (a *AdminClient) CreateModel(ctx context.Context, m Model) (*Model, error) {
	var out Model
	if err := a.c.doRequest(ctx, "POST", "/admin/models/", m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateModel replaces a catalog model definition
func (a *AdminClient) UpdateModel(ctx context.Context, m Model) (*Model, error) {
	var out Model
	if err := a.c.doRequest(ctx, "PUT", "/admin/models/"+m.ID, m, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteModel removes a catalog model
func (a *AdminClient) DeleteModel(ctx context.Context, id string) error {
	return a.c.doRequest(ctx, "DELETE", "/admin/models/"+id, nil, nil)
}

// Selections returns the chat-exposure selection
func (a *AdminClient) Selections(ctx context.Context) ([]Selection, error) {
	var out []Selection
	if err := a.c.doRequest(ctx, "GET", "/admin/models/selection", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceSelections swaps the full chat-exposure selection
func (a *AdminClient) ReplaceSelections(ctx context.Context, sels []Selection) error {
	return a.c.doRequest(ctx, "PUT", "/admin/models/selection", map[string]interface{}{"selections": sels}, nil)
}

// Providers returns all LLM provider settings
func (a *AdminClient) Providers(ctx context.Context) ([]ProviderSetting, error) {
	var out []ProviderSetting
	if err := a.c.doRequest(ctx, "GET", "/admin/llm/providers/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateProvider configures one LLM provider
func (a *AdminClient) UpdateProvider(ctx context.Context, provider string, enabled bool, apiKey, baseURL string) (*ProviderSetting, error) {
	var out ProviderSetting
	err := a.c.doRequest(ctx, "PUT", "/admin/llm/providers/"+provider, map[string]interface{}{
		"enabled":  enabled,
		"api_key":  apiKey,
		"base_url": baseURL,
	}, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Subscriptions returns all subscription records
func (a *AdminClient) Subscriptions(ctx context.Context) ([]Subscription, error) {
	var out []Subscription
	if err := a.c.doRequest(ctx, "GET", "/admin/subscriptions/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Settings returns the platform settings
func (a *AdminClient) Settings(ctx context.Context) (*Settings, error) {
	var out Settings
	if err := a.c.doRequest(ctx, "GET", "/admin/settings", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces the platform settings
func (a *AdminClient) UpdateSettings(ctx context.Context, s Settings) (*Settings, error) {
	var out Settings
	if err := a.c.doRequest(ctx, "PUT", "/admin/settings", s, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
