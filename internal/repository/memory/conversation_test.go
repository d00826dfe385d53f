package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ilyra-ai/ilyra-sub000/internal/domain/conversation"
)

func seedConversation(t *testing.T, repo *ConversationRepository, userID int64, msgs int) *conversation.Conversation {
	t.Helper()
	ctx := context.Background()

	conv := &conversation.Conversation{
		ID:     uuid.NewString(),
		UserID: userID,
		Title:  "test",
		Model:  "simulated-echo",
	}
	if err := repo.Create(ctx, conv); err != nil {
		t.Fatalf("creating conversation: %v", err)
	}
	for i := 0; i < msgs; i++ {
		if err := repo.AppendMessage(ctx, &conversation.Message{
			ID:             uuid.NewString(),
			ConversationID: conv.ID,
			Role:           conversation.RoleUser,
			Content:        "msg",
		}); err != nil {
			t.Fatalf("appending message %d: %v", i, err)
		}
	}
	return conv
}

func TestDeleteCascadesMessages(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository()

	conv := seedConversation(t, repo, 1, 4)
	other := seedConversation(t, repo, 1, 2)

	if err := repo.Delete(ctx, conv.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.GetByID(ctx, conv.ID); err == nil {
		t.Fatal("conversation still present after delete")
	}
	msgs, err := repo.ListMessages(ctx, conv.ID)
	if err == nil && len(msgs) > 0 {
		t.Fatalf("%d orphaned messages survived the delete", len(msgs))
	}

	// Unrelated conversations keep their messages
	msgs, err = repo.ListMessages(ctx, other.ID)
	if err != nil {
		t.Fatalf("listing other conversation: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("other conversation has %d messages, want 2", len(msgs))
	}
}

func TestAppendMessageBumpsConversation(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository()

	conv := seedConversation(t, repo, 1, 0)
	before, err := repo.GetByID(ctx, conv.ID)
	if err != nil {
		t.Fatal(err)
	}

	time.Sleep(2 * time.Millisecond)
	if err := repo.AppendMessage(ctx, &conversation.Message{
		ID:             uuid.NewString(),
		ConversationID: conv.ID,
		Role:           conversation.RoleUser,
		Content:        "bump",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	after, err := repo.GetByID(ctx, conv.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !after.UpdatedAt.After(before.UpdatedAt) {
		t.Fatal("UpdatedAt not bumped by append")
	}
}

func TestAppendToMissingConversation(t *testing.T) {
	repo := NewConversationRepository()
	err := repo.AppendMessage(context.Background(), &conversation.Message{
		ID:             uuid.NewString(),
		ConversationID: uuid.NewString(),
		Role:           conversation.RoleUser,
		Content:        "orphan",
	})
	if err == nil {
		t.Fatal("append to missing conversation succeeded")
	}
}

func TestListByUserOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewConversationRepository()

	first := seedConversation(t, repo, 1, 0)
	time.Sleep(2 * time.Millisecond)
	second := seedConversation(t, repo, 1, 0)
	seedConversation(t, repo, 2, 0)

	time.Sleep(2 * time.Millisecond)
	if err := repo.AppendMessage(ctx, &conversation.Message{
		ID:             uuid.NewString(),
		ConversationID: first.ID,
		Role:           conversation.RoleUser,
		Content:        "brings first back to the top",
	}); err != nil {
		t.Fatal(err)
	}

	convs, err := repo.ListByUser(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(convs) != 2 {
		t.Fatalf("user 1 has %d conversations, want 2", len(convs))
	}
	if convs[0].ID != first.ID || convs[1].ID != second.ID {
		t.Fatalf("order = [%s %s], want most recently active first", convs[0].ID, convs[1].ID)
	}
}
