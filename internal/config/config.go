// Package config assembles process configuration from the environment.
// Every setting has a working default; a bare `phishguard serve` comes
// up listening on :8080 with permissive CORS and whatever model
// credential the environment carries.
package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/phishguard/phishguard/internal/chat"
	"github.com/phishguard/phishguard/internal/generate"
	"github.com/phishguard/phishguard/internal/llm"
)

// Config is the full process configuration.
type Config struct {
	HTTP     HTTPConfig
	LLM      llm.Config
	Generate generate.Config
	Chat     chat.Config
}

// HTTPConfig holds the listener and CORS settings.
type HTTPConfig struct {
	Host string
	Port int

	// AllowOrigins lists the origins permitted by CORS. The training
	// frontend is served from a different origin in every deployment,
	// so the default is wide open.
	AllowOrigins []string

	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		HTTP: HTTPConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			AllowOrigins:    []string{"*"},
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    120 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		LLM:      llm.DefaultConfig(),
		Generate: generate.DefaultConfig(),
		Chat:     chat.DefaultConfig(),
	}
}

// FromEnv builds the configuration from environment variables, falling
// back to defaults for unset values.
func FromEnv() (Config, error) {
	cfg := Default()
	cfg.LLM = llm.ConfigFromEnv()

	if h := os.Getenv("PHISHGUARD_HOST"); h != "" {
		cfg.HTTP.Host = h
	}
	if p := os.Getenv("PHISHGUARD_PORT"); p != "" {
		port, err := strconv.Atoi(p)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PHISHGUARD_PORT %q", p)
		}
		cfg.HTTP.Port = port
	}
	if o := os.Getenv("PHISHGUARD_CORS_ORIGINS"); o != "" {
		cfg.HTTP.AllowOrigins = splitOrigins(o)
	}

	if m := os.Getenv("PHISHGUARD_GENERATE_MODEL"); m != "" {
		cfg.Generate.Model = m
	}
	if m := os.Getenv("PHISHGUARD_TUTOR_MODEL"); m != "" {
		cfg.Generate.TutorModel = m
	}
	if m := os.Getenv("PHISHGUARD_CHAT_MODEL"); m != "" {
		cfg.Chat.Model = m
	}

	if err := cfg.LLM.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Addr returns the host:port listen address.
func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
