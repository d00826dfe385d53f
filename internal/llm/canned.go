package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Canned ruleset mirroring the assistant's scripted replies. Patterns
// are checked in order; the first match wins.
var cannedRules = []struct {
	pattern *regexp.Regexp
	reply   string
}{
	{
		pattern: regexp.MustCompile(`(?i)olá|oi`),
		reply:   "Olá! Como posso ajudar você hoje?",
	},
	{
		pattern: regexp.MustCompile(`(?i)ajuda|help`),
		reply:   "Claro! Estou aqui para ajudar. Pode me contar o que você precisa?",
	},
	{
		pattern: regexp.MustCompile(`(?i)obrigad[oa]|valeu`),
		reply:   "De nada! Se precisar de mais alguma coisa, é só chamar.",
	},
}

// CannedProvider is the simulated backend: it answers from a small
// ruleset with an artificial delay, standing in for a real vendor.
type CannedProvider struct {
	delay time.Duration
}

// NewCannedProvider creates the simulated provider. delay is applied
// per completion; pass 0 in tests.
func NewCannedProvider(delay time.Duration) *CannedProvider {
	return &CannedProvider{delay: delay}
}

// Name returns the vendor identifier
func (p *CannedProvider) Name() string {
	return "simulated"
}

// ListModels returns the single simulated model
func (p *CannedProvider) ListModels(ctx context.Context) ([]string, error) {
	return []string{"simulated-echo"}, nil
}

// Complete answers the last user message from the canned ruleset,
// falling back to an echo of the prompt.
func (p *CannedProvider) Complete(ctx context.Context, req Request) (*Response, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	prompt := lastUserContent(req.Messages)
	for _, rule := range cannedRules {
		if rule.pattern.MatchString(prompt) {
			return &Response{Content: rule.reply, Model: req.Model}, nil
		}
	}

	return &Response{
		Content: fmt.Sprintf("Entendi sua mensagem: %q. Esta é uma resposta simulada.", strings.TrimSpace(prompt)),
		Model:   req.Model,
	}, nil
}

func lastUserContent(msgs []Message) string {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == "user" {
			return msgs[i].Content
		}
	}
	if len(msgs) > 0 {
		return msgs[len(msgs)-1].Content
	}
	return ""
}
