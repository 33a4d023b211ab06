package config

import (
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got := cfg.HTTP.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("default addr = %q", got)
	}
	if len(cfg.HTTP.AllowOrigins) != 1 || cfg.HTTP.AllowOrigins[0] != "*" {
		t.Errorf("default origins = %v", cfg.HTTP.AllowOrigins)
	}
	if cfg.LLM.Provider != "gemini" {
		t.Errorf("default provider = %q", cfg.LLM.Provider)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PHISHGUARD_HOST", "127.0.0.1")
	t.Setenv("PHISHGUARD_PORT", "9000")
	t.Setenv("PHISHGUARD_CORS_ORIGINS", "https://train.example.com, https://staging.example.com")
	t.Setenv("PHISHGUARD_GENERATE_MODEL", "gemini-flash-lite")
	t.Setenv("PHISHGUARD_CHAT_MODEL", "gemini-flash")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if got := cfg.HTTP.Addr(); got != "127.0.0.1:9000" {
		t.Errorf("addr = %q", got)
	}
	if len(cfg.HTTP.AllowOrigins) != 2 {
		t.Errorf("origins = %v", cfg.HTTP.AllowOrigins)
	}
	if cfg.Generate.Model != "gemini-flash-lite" {
		t.Errorf("generate model = %q", cfg.Generate.Model)
	}
	if cfg.Chat.Model != "gemini-flash" {
		t.Errorf("chat model = %q", cfg.Chat.Model)
	}
}

func TestFromEnv_RejectsBadPort(t *testing.T) {
	for _, p := range []string{"abc", "0", "70000", "-1"} {
		t.Setenv("PHISHGUARD_PORT", p)
		if _, err := FromEnv(); err == nil {
			t.Errorf("port %q: expected error", p)
		}
	}
}

func TestFromEnv_RejectsUnknownProvider(t *testing.T) {
	t.Setenv("PHISHGUARD_LLM_PROVIDER", "llama-at-home")
	if _, err := FromEnv(); err == nil {
		t.Error("unknown provider: expected error")
	}
}
