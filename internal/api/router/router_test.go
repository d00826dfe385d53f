package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ilyra-ai/ilyra-sub000/internal/api/handlers"
	"github.com/ilyra-ai/ilyra-sub000/internal/config"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/llm"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/validator"
	"github.com/ilyra-ai/ilyra-sub000/internal/quota"
	"github.com/ilyra-ai/ilyra-sub000/internal/services"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

// newTestServer wires the full HTTP stack over fresh stores and
// returns the server plus the seeded stores for direct setup.
func newTestServer(t *testing.T) (*httptest.Server, *testutil.Stores) {
	t.Helper()
	log := testutil.Logger()
	stores := testutil.NewStores()

	cfg := &config.Config{
		Server: config.ServerConfig{FrontendURL: "http://localhost:5173"},
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
		},
		Quota: config.QuotaConfig{ResetPolicy: config.QuotaResetNever},
	}

	tracker := quota.NewTracker()
	registry := llm.NewRegistry(llm.NewCannedProvider(0))

	userSvc := services.NewUserService(stores.Users, bcrypt.MinCost, log)
	prefSvc := services.NewPreferenceService(stores.Prefs, log)
	planSvc := services.NewPlanService(stores.Plans, stores.Subs, log)
	catalogSvc := services.NewCatalogService(stores.Catalog, stores.Users, log)
	convSvc := services.NewConversationService(stores.Convs, log)
	chatSvc := services.NewChatService(stores.Users, stores.Plans, stores.Convs, catalogSvc, registry, tracker, "simulated-echo", log)
	subSvc := services.NewSubscriptionService(stores.Subs, stores.Plans, log)
	platformSvc := services.NewPlatformService(stores.Platform, log)
	paymentSvc := services.NewPaymentService(services.NewSimulatedCheckout("http://localhost/success"), stores.Users, stores.Plans, subSvc, log)

	v := validator.New()
	handler := New(cfg, log, Handlers{
		Health:        handlers.NewHealthHandler("test"),
		Public:        handlers.NewPublicHandler(platformSvc, planSvc),
		Auth:          handlers.NewAuthHandler(userSvc, platformSvc, v, cfg.Auth),
		User:          handlers.NewUserHandler(userSvc, prefSvc, catalogSvc, v),
		Conversations: handlers.NewConversationHandler(convSvc, v),
		Chat:          handlers.NewChatHandler(chatSvc, v),
		Billing:       handlers.NewBillingHandler(paymentSvc, subSvc, v),
		AdminUsers:    handlers.NewAdminUserHandler(userSvc, v),
		AdminPlans:    handlers.NewAdminPlanHandler(planSvc, v),
		AdminCatalog:  handlers.NewAdminCatalogHandler(catalogSvc, v),
		AdminSubs:     handlers.NewAdminSubscriptionHandler(subSvc, v),
		AdminSettings: handlers.NewAdminSettingsHandler(platformSvc, v),
	})

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, stores
}

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (int, apiEnvelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var env apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	return resp.StatusCode, env
}

// registerUser creates an account through the API and returns its token
func registerUser(t *testing.T, srv *httptest.Server, email string) string {
	t.Helper()
	status, env := doJSON(t, "POST", srv.URL+"/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"name":     "Route Tester",
		"password": "password-123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register returned %d: %+v", status, env.Error)
	}
	var out struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatal(err)
	}
	return out.AccessToken
}

func TestAuthGates(t *testing.T) {
	srv, stores := newTestServer(t)

	// Unauthenticated requests to the protected surface get 401
	for _, path := range []string{"/api/v1/auth/me", "/api/v1/user/profile", "/api/v1/user/conversations/"} {
		status, env := doJSON(t, "GET", srv.URL+path, "", nil)
		if status != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status %d, want 401", path, status)
		}
		if env.Error == nil || env.Error.Code != "UNAUTHORIZED" {
			t.Errorf("GET %s: error %+v, want UNAUTHORIZED", path, env.Error)
		}
	}

	// A regular user is rejected from the admin surface with 403
	token := registerUser(t, srv, "gate@example.com")
	status, env := doJSON(t, "GET", srv.URL+"/api/v1/admin/users/", token, nil)
	if status != http.StatusForbidden {
		t.Errorf("admin route as user: status %d, want 403", status)
	}
	if env.Error == nil || env.Error.Code != "FORBIDDEN" {
		t.Errorf("admin route as user: error %+v, want FORBIDDEN", env.Error)
	}

	// Promote the account and the same token's role claim is stale, so
	// a fresh login is required for admin access
	ctx := context.Background()
	u, err := stores.Users.GetByEmail(ctx, "gate@example.com")
	if err != nil {
		t.Fatal(err)
	}
	u.Role = user.RoleAdmin
	if err := stores.Users.Update(ctx, u); err != nil {
		t.Fatal(err)
	}

	status, _ = doJSON(t, "POST", srv.URL+"/api/v1/auth/login", "", map[string]string{
		"email":    "gate@example.com",
		"password": "password-123",
	})
	if status != http.StatusOK {
		t.Fatalf("re-login after promotion: status %d", status)
	}
}

func TestPublicBootstrapEndpoints(t *testing.T) {
	srv, stores := newTestServer(t)
	if _, err := stores.SeedPlan(context.Background(), "free", testutil.IntPtr(10)); err != nil {
		t.Fatal(err)
	}

	status, env := doJSON(t, "GET", srv.URL+"/api/v1/settings", "", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("GET /settings: status %d", status)
	}
	var settings struct {
		Branding struct {
			PlatformName string `json:"platform_name"`
		} `json:"branding"`
	}
	if err := json.Unmarshal(env.Data, &settings); err != nil {
		t.Fatal(err)
	}
	if settings.Branding.PlatformName == "" {
		t.Error("settings missing platform name")
	}

	status, env = doJSON(t, "GET", srv.URL+"/api/v1/plans", "", nil)
	if status != http.StatusOK {
		t.Fatalf("GET /plans: status %d", status)
	}
	var plans []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &plans); err != nil {
		t.Fatal(err)
	}
	if len(plans) != 1 || plans[0].ID != "free" {
		t.Errorf("public plans = %v, want [free]", plans)
	}
}

func TestChatSendOverHTTP(t *testing.T) {
	srv, stores := newTestServer(t)
	ctx := context.Background()

	if _, err := stores.SeedPlan(ctx, "free", testutil.IntPtr(2)); err != nil {
		t.Fatal(err)
	}
	m, err := stores.SeedModel(ctx, "simulated", "echo", []string{"free"})
	if err != nil {
		t.Fatal(err)
	}
	token := registerUser(t, srv, "chatter@example.com")

	send := func() (int, apiEnvelope) {
		return doJSON(t, "POST", srv.URL+"/api/v1/chat/send", token, map[string]string{
			"model":   m.ID,
			"content": "Olá",
		})
	}

	for i := 0; i < 2; i++ {
		status, env := send()
		if status != http.StatusOK {
			t.Fatalf("send %d: status %d, error %+v", i+1, status, env.Error)
		}
		var res struct {
			Reply struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"reply"`
		}
		if err := json.Unmarshal(env.Data, &res); err != nil {
			t.Fatal(err)
		}
		if res.Reply.Role != "assistant" {
			t.Fatalf("send %d: reply role %q", i+1, res.Reply.Role)
		}
	}

	status, env := send()
	if status != http.StatusPaymentRequired {
		t.Fatalf("over-limit send: status %d, want 402", status)
	}
	if env.Error == nil || env.Error.Code != "QUOTA_EXCEEDED" {
		t.Fatalf("over-limit send: error %+v, want QUOTA_EXCEEDED", env.Error)
	}
}

func TestRegistrationClosedReturns403(t *testing.T) {
	srv, stores := newTestServer(t)
	ctx := context.Background()

	settings, err := stores.Platform.Get(ctx)
	if err != nil {
		t.Fatal(err)
	}
	settings.AllowRegistration = false
	if err := stores.Platform.Update(ctx, settings); err != nil {
		t.Fatal(err)
	}

	status, env := doJSON(t, "POST", srv.URL+"/api/v1/auth/register", "", map[string]string{
		"email":    "late@example.com",
		"name":     "Latecomer",
		"password": "password-123",
	})
	if status != http.StatusForbidden {
		t.Fatalf("register with registration closed: status %d, want 403", status)
	}
	if env.Error == nil || env.Error.Code != "FORBIDDEN" {
		t.Fatalf("error %+v, want FORBIDDEN", env.Error)
	}
}

func TestUnknownRouteReturnsStructured404(t *testing.T) {
	srv, _ := newTestServer(t)
	status, env := doJSON(t, "GET", srv.URL+"/api/v1/nope", "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("unknown route: status %d, want 404", status)
	}
	if env.Error == nil || env.Error.Code != "NOT_FOUND" {
		t.Fatalf("unknown route error = %+v, want NOT_FOUND", env.Error)
	}
}

func TestHealthAndReadiness(t *testing.T) {
	srv, _ := newTestServer(t)
	for _, path := range []string{"/health", "/healthz", "/readyz"} {
		status, env := doJSON(t, "GET", srv.URL+path, "", nil)
		if status != http.StatusOK || !env.Success {
			t.Errorf("GET %s: status %d, success %v", path, status, env.Success)
		}
	}
}

func TestConversationCreateAndSubscriptionCancel(t *testing.T) {
	srv, stores := newTestServer(t)
	ctx := context.Background()

	if _, err := stores.SeedPlan(ctx, "free", testutil.IntPtr(10)); err != nil {
		t.Fatal(err)
	}
	if _, err := stores.SeedPlan(ctx, "pro", nil); err != nil {
		t.Fatal(err)
	}
	token := registerUser(t, srv, "owner@example.com")

	// Explicit conversation creation ahead of the first message
	status, env := doJSON(t, "POST", srv.URL+"/api/v1/user/conversations/", token, map[string]string{
		"title": "Planejamento",
	})
	if status != http.StatusCreated {
		t.Fatalf("create conversation: status %d, error %+v", status, env.Error)
	}
	var conv struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(env.Data, &conv); err != nil {
		t.Fatal(err)
	}
	if conv.ID == "" || conv.Title != "Planejamento" {
		t.Fatalf("created conversation = %+v", conv)
	}

	// Purchase then cancel through the self-service surface
	status, env = doJSON(t, "POST", srv.URL+"/api/v1/billing/confirm", token, map[string]string{
		"plan_id": "pro",
	})
	if status != http.StatusOK {
		t.Fatalf("confirm: status %d, error %+v", status, env.Error)
	}
	var sub struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &sub); err != nil {
		t.Fatal(err)
	}

	status, env = doJSON(t, "POST", srv.URL+"/api/v1/billing/manage", token, map[string]string{
		"subscription_id": sub.ID,
		"action":          "cancel",
	})
	if status != http.StatusOK {
		t.Fatalf("manage cancel: status %d, error %+v", status, env.Error)
	}
	var cancelled struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &cancelled); err != nil {
		t.Fatal(err)
	}
	if cancelled.Status != "cancelled" {
		t.Fatalf("subscription status = %q, want cancelled", cancelled.Status)
	}

	u, err := stores.Users.GetByEmail(ctx, "owner@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if u.Plan != "free" {
		t.Fatalf("plan after cancel = %q, want free", u.Plan)
	}
}
