package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/ilyra-ai/ilyra-sub000/internal/pkg/errors"
	"github.com/ilyra-ai/ilyra-sub000/internal/testutil"
)

func TestCreateConversationExplicitly(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewConversationService(stores.Convs, testutil.Logger())

	conv, err := svc.Create(ctx, 1, "", "simulated-echo")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if conv.ID == "" {
		t.Fatal("created conversation has no ID")
	}
	if conv.Title != defaultConversationTitle {
		t.Fatalf("title = %q, want default %q", conv.Title, defaultConversationTitle)
	}
	if conv.Model != "simulated-echo" {
		t.Fatalf("model = %q, want simulated-echo", conv.Model)
	}

	msgs, err := svc.Messages(ctx, 1, conv.ID)
	if err != nil {
		t.Fatalf("listing messages: %v", err)
	}
	if len(msgs) != 0 {
		t.Fatalf("new conversation has %d messages, want 0", len(msgs))
	}

	named, err := svc.Create(ctx, 1, "Planejamento", "")
	if err != nil {
		t.Fatalf("create with title: %v", err)
	}
	if named.Title != "Planejamento" {
		t.Fatalf("title = %q, want the given one", named.Title)
	}

	convs, err := svc.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(convs) != 2 {
		t.Fatalf("conversations = %d, want 2", len(convs))
	}
}

func TestGetRejectsForeignConversation(t *testing.T) {
	ctx := context.Background()
	stores := testutil.NewStores()
	svc := NewConversationService(stores.Convs, testutil.Logger())

	conv, err := svc.Create(ctx, 1, "minha", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.Get(ctx, 2, conv.ID)
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) || appErr.Code != errors.ErrCodeForbidden {
		t.Fatalf("cross-user get error = %v, want code %s", err, errors.ErrCodeForbidden)
	}
}
