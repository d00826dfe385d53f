package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/conversation"
	"github.com/ilyra-ai/ilyra-sub000/internal/domain/user"
	"github.com/ilyra-ai/ilyra-sub000/internal/llm"
	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/quota"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

type chatFixture struct {
	stores  *testutil.Stores
	tracker *quota.Tracker
	chat    *ChatService
	user    *user.User
	modelID string
}

// newChatFixture wires a chat service over fresh stores: one user on a
// plan with the given limit, one available model backed by provider.
func newChatFixture(t *testing.T, limit *int, provider llm.Provider) *chatFixture {
	t.Helper()
	ctx := context.Background()
	log := testutil.Logger()
	stores := testutil.NewStores()

	if _, err := stores.SeedPlan(ctx, "free", limit); err != nil {
		t.Fatalf("seeding plan: %v", err)
	}
	u, err := stores.SeedUser(ctx, "user@example.com", "free")
	if err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	m, err := stores.SeedModel(ctx, provider.Name(), "test-model", []string{"free"})
	if err != nil {
		t.Fatalf("seeding model: %v", err)
	}

	tracker := quota.NewTracker()
	catalogSvc := NewCatalogService(stores.Catalog, stores.Users, log)
	chat := NewChatService(stores.Users, stores.Plans, stores.Convs, catalogSvc, llm.NewRegistry(provider), tracker, m.ID, log)

	return &chatFixture{stores: stores, tracker: tracker, chat: chat, user: u, modelID: m.ID}
}

func TestSendEnforcesMessageLimit(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t, testutil.IntPtr(5), llm.NewCannedProvider(0))

	convID := ""
	for i := 1; i <= 5; i++ {
		res, err := f.chat.Send(ctx, f.user.ID, convID, f.modelID, "Olá")
		if err != nil {
			t.Fatalf("send %d: unexpected error: %v", i, err)
		}
		if res.Reply.Role != conversation.RoleAssistant {
			t.Fatalf("send %d: reply role = %q, want assistant", i, res.Reply.Role)
		}
		if !strings.Contains(res.Reply.Content, "Olá") {
			t.Fatalf("send %d: reply %q is not the greeting", i, res.Reply.Content)
		}
		if res.Used != i {
			t.Fatalf("send %d: used = %d, want %d", i, res.Used, i)
		}
		convID = res.Conversation.ID
	}

	_, err := f.chat.Send(ctx, f.user.ID, convID, f.modelID, "Olá")
	if err == nil {
		t.Fatal("sixth send succeeded, want quota denial")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeQuotaExceeded {
		t.Fatalf("sixth send error = %v, want code %s", err, errors.ErrCodeQuotaExceeded)
	}
	if used := f.tracker.Used(f.user.ID); used != 5 {
		t.Fatalf("counter after denial = %d, want 5 (denied send must not consume)", used)
	}

	msgs, err := f.stores.Convs.ListMessages(ctx, convID)
	if err != nil {
		t.Fatalf("listing messages: %v", err)
	}
	if len(msgs) != 10 {
		t.Fatalf("stored messages = %d, want 10 (five user/assistant pairs)", len(msgs))
	}
}

func TestSendAdminBypassesQuota(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t, testutil.IntPtr(1), llm.NewCannedProvider(0))

	admin := &user.User{
		Email:        "admin@example.com",
		Name:         "Admin",
		PasswordHash: "x",
		Role:         user.RoleAdmin,
		Plan:         user.PlanAdmin,
		Status:       user.StatusActive,
	}
	if err := f.stores.Users.Create(ctx, admin); err != nil {
		t.Fatalf("creating admin: %v", err)
	}
	// Expose the model to the admin pseudo-plan as well
	if _, err := f.stores.SeedModel(ctx, "simulated", "admin-model", []string{user.PlanAdmin}); err != nil {
		t.Fatalf("seeding admin model: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := f.chat.Send(ctx, admin.ID, "", "simulated-admin-model", "oi"); err != nil {
			t.Fatalf("admin send %d: %v", i+1, err)
		}
	}
	if used := f.tracker.Used(admin.ID); used != 0 {
		t.Fatalf("admin counter = %d, want 0", used)
	}
}

func TestSendFailedGenerationReturnsErrorAndRollsBack(t *testing.T) {
	ctx := context.Background()
	provider := testutil.NewFakeProvider("simulated")
	provider.Err = fmt.Errorf("upstream unavailable")
	f := newChatFixture(t, testutil.IntPtr(5), provider)

	_, err := f.chat.Send(ctx, f.user.ID, "", f.modelID, "Olá")
	if err == nil {
		t.Fatal("send with failing provider succeeded, want provider error")
	}
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeProviderAPI {
		t.Fatalf("send error = %v, want code %s", err, errors.ErrCodeProviderAPI)
	}
	if used := f.tracker.Used(f.user.ID); used != 0 {
		t.Fatalf("counter after failed generation = %d, want 0 (rolled back)", used)
	}

	// The user message and a system failure notice are both persisted
	convs, err := f.stores.Convs.ListByUser(ctx, f.user.ID)
	if err != nil || len(convs) != 1 {
		t.Fatalf("conversations = %d (err %v), want 1", len(convs), err)
	}
	msgs, err := f.stores.Convs.ListMessages(ctx, convs[0].ID)
	if err != nil {
		t.Fatalf("listing messages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("stored messages = %d, want user message plus system notice", len(msgs))
	}
	if msgs[0].Role != conversation.RoleUser || msgs[1].Role != conversation.RoleSystem {
		t.Fatalf("message roles = %q,%q, want user,system", msgs[0].Role, msgs[1].Role)
	}

	// A later successful send starts back at one
	provider.Err = nil
	res, err := f.chat.Send(ctx, f.user.ID, convs[0].ID, f.modelID, "Olá")
	if err != nil {
		t.Fatalf("recovery send: %v", err)
	}
	if res.Used != 1 {
		t.Fatalf("used after recovery = %d, want 1", res.Used)
	}
}

func TestSendFallsBackToDefaultAndConversationModel(t *testing.T) {
	ctx := context.Background()
	provider := testutil.NewFakeProvider("simulated")
	f := newChatFixture(t, nil, provider)

	// No model: the configured default applies
	res, err := f.chat.Send(ctx, f.user.ID, "", "", "oi")
	if err != nil {
		t.Fatalf("send without model: %v", err)
	}
	if res.Conversation.Model != f.modelID {
		t.Fatalf("conversation model = %q, want default %q", res.Conversation.Model, f.modelID)
	}
	if got := provider.LastRequest().Model; got != "test-model" {
		t.Fatalf("provider model = %q, want %q", got, "test-model")
	}

	// An existing conversation keeps its own model over the default
	other, err := f.stores.SeedModel(ctx, "simulated", "other-model", []string{"free"})
	if err != nil {
		t.Fatalf("seeding second model: %v", err)
	}
	res2, err := f.chat.Send(ctx, f.user.ID, "", other.ID, "oi")
	if err != nil {
		t.Fatalf("send with explicit model: %v", err)
	}
	if _, err := f.chat.Send(ctx, f.user.ID, res2.Conversation.ID, "", "oi"); err != nil {
		t.Fatalf("continuing without model: %v", err)
	}
	if got := provider.LastRequest().Model; got != "other-model" {
		t.Fatalf("provider model = %q, want conversation's %q", got, "other-model")
	}
}

func TestSendCreatesConversationLazily(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t, nil, llm.NewCannedProvider(0))

	res, err := f.chat.Send(ctx, f.user.ID, "", f.modelID, "primeira mensagem da conversa que é bem longa mesmo para testar o título")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if res.Conversation.ID == "" {
		t.Fatal("no conversation created")
	}
	if res.Conversation.Title == "" || len([]rune(res.Conversation.Title)) > 49 {
		t.Fatalf("derived title %q has unexpected length", res.Conversation.Title)
	}

	// A stale ID is replaced with a fresh conversation rather than failing
	res2, err := f.chat.Send(ctx, f.user.ID, "00000000-0000-0000-0000-000000000000", f.modelID, "oi")
	if err != nil {
		t.Fatalf("send with stale conversation ID: %v", err)
	}
	if res2.Conversation.ID == res.Conversation.ID {
		t.Fatal("stale ID reused the old conversation")
	}
}

func TestSendRejectsUnavailableModel(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t, nil, llm.NewCannedProvider(0))

	_, err := f.chat.Send(ctx, f.user.ID, "", "openai-gpt-4o", "Olá")
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeForbidden {
		t.Fatalf("send with unknown model: error = %v, want code %s", err, errors.ErrCodeForbidden)
	}
	if used := f.tracker.Used(f.user.ID); used != 0 {
		t.Fatalf("counter after rejected send = %d, want 0", used)
	}
}

func TestSendRejectsForeignConversation(t *testing.T) {
	ctx := context.Background()
	f := newChatFixture(t, nil, llm.NewCannedProvider(0))

	other, err := f.stores.SeedUser(ctx, "other@example.com", "free")
	if err != nil {
		t.Fatalf("seeding second user: %v", err)
	}
	res, err := f.chat.Send(ctx, other.ID, "", f.modelID, "oi")
	if err != nil {
		t.Fatalf("seeding other conversation: %v", err)
	}

	_, err = f.chat.Send(ctx, f.user.ID, res.Conversation.ID, f.modelID, "oi")
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeForbidden {
		t.Fatalf("cross-user send: error = %v, want code %s", err, errors.ErrCodeForbidden)
	}
}
