// Package chat answers free-form questions about phishing awareness
// and password security. The assistant persona is pinned by a fixed
// opening exchange prepended to every conversation; the server keeps
// no conversation state, so callers resend their history each turn.
package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/phishguard/phishguard/internal/llm"
)

const systemPrompt = `You are a helpful cybersecurity education assistant specializing in phishing awareness and password security. Your role is to:

1. Answer questions about phishing attacks, how to identify them, and how to protect against them
2. Provide guidance on password security best practices
3. Explain cybersecurity concepts in simple, easy-to-understand language
4. Give practical, actionable advice for staying safe online
5. Be encouraging and supportive while educating users

Keep your responses concise, friendly, and educational. Focus on practical tips and real-world examples. If asked about topics outside of phishing and password security, politely redirect the conversation back to these core topics.`

const acknowledgment = `I understand. I'm here to help users learn about phishing awareness and password security. I'll provide clear, practical, and encouraging guidance on these topics.`

// Turn is one prior exchange resent by the caller.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config holds chat parameters.
type Config struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns chat defaults. Chat uses the heavier model;
// conversational quality matters more here than generation throughput.
func DefaultConfig() Config {
	return Config{
		Model:       "gemini-pro",
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Service answers chat messages through the model provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a chat Service around the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	def := DefaultConfig()
	if cfg.Model == "" {
		cfg.Model = def.Model
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = def.MaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = def.Temperature
	}
	return &Service{provider: provider, cfg: cfg}
}

// Reply answers one user message given the caller-supplied history.
// History entries with unknown roles are dropped rather than rejected;
// the persona exchange always comes first.
func (s *Service) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", &llm.ErrInvalidInput{Reason: "message is required"}
	}

	messages := make([]llm.Message, 0, len(history)+3)
	messages = append(messages,
		llm.Message{Role: llm.RoleUser, Content: systemPrompt},
		llm.Message{Role: llm.RoleAssistant, Content: acknowledgment},
	)
	for _, turn := range history {
		switch turn.Role {
		case "user":
			messages = append(messages, llm.Message{Role: llm.RoleUser, Content: turn.Content})
		case "assistant", "model":
			messages = append(messages, llm.Message{Role: llm.RoleAssistant, Content: turn.Content})
		}
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: message})

	ctx = llm.WithPurpose(ctx, "chat")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    messages,
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}

	return resp.Text, nil
}
