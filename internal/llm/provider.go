package llm

import (
	"context"
)

// Provider is the core abstraction for generative model interaction.
// Consumers build a Request and receive the model's raw text output;
// extracting and validating structured payloads from that text is the
// caller's job (see internal/generate).
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the default model identifier this provider is
	// configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation so far. For single-turn generation
	// (every endpoint except chat) this contains one user message.
	Messages []Message

	// Model overrides the provider's default model for this request.
	// The chat endpoint uses a heavier model than the generators.
	Model string

	// MaxTokens is the maximum number of tokens in the response.
	// Zero means the provider default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single turn in a conversation transcript.
// Transcripts are supplied in full by the caller on every request;
// the server never stores them. Role alternation is not enforced here.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	// Text is the raw text returned by the model. It may contain prose
	// around any JSON payload the prompt asked for.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// model returns the effective model for a request.
func (r Request) model(fallback string) string {
	if r.Model != "" {
		return r.Model
	}
	return fallback
}
