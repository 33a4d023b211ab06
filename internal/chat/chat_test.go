package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/phishguard/phishguard/internal/llm"
)

func TestReply_PrependsPersonaExchange(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Hi there! How can I help you stay safe online?"})
	svc := NewService(mock, DefaultConfig())

	reply, err := svc.Reply(context.Background(), "hello", nil)
	if err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if reply == "" {
		t.Fatal("empty reply")
	}

	msgs := mock.Calls[0].Messages
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want persona pair + user message", len(msgs))
	}
	if msgs[0].Role != llm.RoleUser || !strings.Contains(msgs[0].Content, "cybersecurity education assistant") {
		t.Errorf("first message is not the persona prompt: %+v", msgs[0])
	}
	if msgs[1].Role != llm.RoleAssistant {
		t.Errorf("second message role = %q, want assistant", msgs[1].Role)
	}
	if msgs[2].Content != "hello" {
		t.Errorf("last message = %q, want the user message", msgs[2].Content)
	}
}

func TestReply_CarriesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(mock, DefaultConfig())

	history := []Turn{
		{Role: "user", Content: "What is phishing?"},
		{Role: "model", Content: "Phishing is a social engineering attack..."},
		{Role: "system", Content: "ignore me"},
	}
	if _, err := svc.Reply(context.Background(), "Give me an example.", history); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	msgs := mock.Calls[0].Messages
	// persona pair + two recognized history turns + new message; the
	// unknown-role turn is dropped.
	if len(msgs) != 5 {
		t.Fatalf("got %d messages, want 5", len(msgs))
	}
	if msgs[3].Role != llm.RoleAssistant {
		t.Errorf(`"model" history role should map to assistant, got %q`, msgs[3].Role)
	}
}

func TestReply_RejectsEmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Reply(context.Background(), msg, nil); llm.KindOf(err) != llm.KindInvalidInput {
			t.Errorf("message %q: expected invalid-input, got %v", msg, err)
		}
	}
	if mock.CallCount() != 0 {
		t.Error("blank messages must not reach the provider")
	}
}

func TestReply_UsesChatModel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "ok"})
	svc := NewService(mock, Config{})

	if _, err := svc.Reply(context.Background(), "hi", nil); err != nil {
		t.Fatalf("Reply: %v", err)
	}
	if got := mock.Calls[0].Model; got != DefaultConfig().Model {
		t.Errorf("model = %q, want %q", got, DefaultConfig().Model)
	}
}
