package llm

import (
	"context"
	"strings"
	"testing"
)

func TestCannedProviderRules(t *testing.T) {
	p := NewCannedProvider(0)
	ctx := context.Background()

	tests := []struct {
		name    string
		prompt  string
		want    string
		literal bool
	}{
		{name: "greeting lowercase", prompt: "olá, tudo bem?", want: "Olá! Como posso ajudar você hoje?", literal: true},
		{name: "greeting uppercase", prompt: "OI", want: "Olá! Como posso ajudar você hoje?", literal: true},
		{name: "greeting embedded", prompt: "bom dia, oi gente", want: "Olá! Como posso ajudar você hoje?", literal: true},
		{name: "help keyword", prompt: "preciso de ajuda com uma coisa", want: "Estou aqui para ajudar"},
		{name: "thanks", prompt: "obrigado!", want: "De nada"},
		{name: "fallback echoes prompt", prompt: "qual a capital da França?", want: "qual a capital da França?"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := p.Complete(ctx, Request{
				Model:    "simulated-echo",
				Messages: []Message{{Role: "user", Content: tt.prompt}},
			})
			if err != nil {
				t.Fatalf("complete: %v", err)
			}
			if tt.literal && resp.Content != tt.want {
				t.Errorf("reply = %q, want %q", resp.Content, tt.want)
			}
			if !tt.literal && !strings.Contains(resp.Content, tt.want) {
				t.Errorf("reply = %q, want it to contain %q", resp.Content, tt.want)
			}
		})
	}
}

func TestCannedProviderUsesLastUserMessage(t *testing.T) {
	p := NewCannedProvider(0)
	resp, err := p.Complete(context.Background(), Request{
		Model: "simulated-echo",
		Messages: []Message{
			{Role: "user", Content: "olá"},
			{Role: "assistant", Content: "Olá! Como posso ajudar você hoje?"},
			{Role: "user", Content: "me fale sobre Go"},
		},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !strings.Contains(resp.Content, "me fale sobre Go") {
		t.Errorf("reply %q did not answer the last user message", resp.Content)
	}
}
