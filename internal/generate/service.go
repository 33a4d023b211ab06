// Package generate builds prompts for the generative endpoints, invokes
// the model provider, and turns its free-form text replies into
// validated, typed payloads. Every operation is stateless: one outbound
// call, no retries, no caching. Repeat calls produce different
// content; variety is the point.
package generate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/phishguard/phishguard/internal/llm"
	"github.com/phishguard/phishguard/internal/quiz"
	"github.com/phishguard/phishguard/internal/scenario"
)

// QuizLength is the number of questions every generated quiz carries.
const QuizLength = 10

// Config holds generation parameters.
type Config struct {
	// Model is the generation-grade model for scenarios and quizzes.
	Model string

	// TutorModel is the heavier model used for tutor feedback.
	TutorModel string

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults mirroring the site's
// historical model split: a light model for bulk generation, a heavier
// one for tutoring.
func DefaultConfig() Config {
	return Config{
		Model:       "gemini-flash",
		TutorModel:  "gemini-pro",
		MaxTokens:   4096,
		Temperature: 0.9,
	}
}

// Detection is the validated result of a phishing analysis. All fields
// are required; a model reply missing any of them is rejected.
type Detection struct {
	IsPhishing     bool     `json:"isPhishing"`
	Confidence     string   `json:"confidence"`
	RiskLevel      string   `json:"riskLevel"`
	RedFlags       []string `json:"redFlags"`
	Analysis       string   `json:"analysis"`
	Recommendation string   `json:"recommendation"`
}

// TutorInput describes one answered exercise for feedback.
type TutorInput struct {
	Scenario      scenario.Email
	UserAnswer    string
	CorrectAnswer string
	Context       string
}

// Service is the generative content proxy. It holds no state beyond
// its provider handle and is safe for concurrent use.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a Service around the given provider.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.TutorModel == "" {
		cfg.TutorModel = DefaultConfig().TutorModel
	}
	return &Service{provider: provider, cfg: cfg}
}

// EmailScenario generates one phishing-or-legitimate training email.
// difficulty is easy, medium, or hard; empty defaults to medium.
func (s *Service) EmailScenario(ctx context.Context, difficulty string) (*scenario.Email, error) {
	difficulty, err := normalizeDifficulty(difficulty)
	if err != nil {
		return nil, err
	}

	span, err := s.generate(ctx, "email-scenario", buildEmailScenarioPrompt(difficulty), emailScenarioSchema)
	if err != nil {
		return nil, err
	}

	// The model may label ground truth as a "type" string, a boolean,
	// or both. Normalize to the canonical boolean here and drop the
	// string for good.
	var raw struct {
		From        string   `json:"from"`
		Subject     string   `json:"subject"`
		Body        string   `json:"body"`
		Type        string   `json:"type"`
		IsPhishing  *bool    `json:"isPhishing"`
		RedFlags    []string `json:"redFlags"`
		Explanation string   `json:"explanation"`
	}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, &llm.ErrMalformed{Raw: span, Err: err}
	}

	isPhishing := strings.EqualFold(raw.Type, "phishing")
	if raw.IsPhishing != nil {
		isPhishing = *raw.IsPhishing
	}

	return &scenario.Email{
		ID:          uuid.NewString(),
		From:        raw.From,
		Subject:     raw.Subject,
		Body:        raw.Body,
		IsPhishing:  isPhishing,
		RedFlags:    raw.RedFlags,
		Explanation: raw.Explanation,
	}, nil
}

// URLScenario generates one training URL.
func (s *Service) URLScenario(ctx context.Context) (*scenario.URL, error) {
	span, err := s.generate(ctx, "url-scenario", urlScenarioPrompt, urlScenarioSchema)
	if err != nil {
		return nil, err
	}

	var out scenario.URL
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, &llm.ErrMalformed{Raw: span, Err: err}
	}
	out.ID = uuid.NewString()
	return &out, nil
}

// LoginScenario generates one training login page.
func (s *Service) LoginScenario(ctx context.Context) (*scenario.LoginPage, error) {
	span, err := s.generate(ctx, "login-scenario", loginScenarioPrompt, loginScenarioSchema)
	if err != nil {
		return nil, err
	}

	var out scenario.LoginPage
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, &llm.ErrMalformed{Raw: span, Err: err}
	}
	out.ID = uuid.NewString()
	return &out, nil
}

// PasswordQuiz generates a fresh 10-question password-security quiz.
func (s *Service) PasswordQuiz(ctx context.Context) ([]quiz.Question, error) {
	return s.quiz(ctx, "password-quiz", passwordQuizPrompt)
}

// PhishingQuiz generates a fresh 10-question phishing-awareness quiz.
func (s *Service) PhishingQuiz(ctx context.Context) ([]quiz.Question, error) {
	return s.quiz(ctx, "phishing-quiz", phishingQuizPrompt)
}

func (s *Service) quiz(ctx context.Context, purpose, prompt string) ([]quiz.Question, error) {
	span, err := s.generate(ctx, purpose, prompt, quizSchema)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Questions []quiz.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(span), &payload); err != nil {
		return nil, &llm.ErrMalformed{Raw: span, Err: err}
	}

	for i := range payload.Questions {
		if payload.Questions[i].ID == 0 {
			payload.Questions[i].ID = i + 1
		}
	}
	return payload.Questions, nil
}

// Detect analyzes caller-submitted content for phishing indicators.
// contentType is "email" or "url".
func (s *Service) Detect(ctx context.Context, content, contentType string) (*Detection, error) {
	if content == "" {
		return nil, &llm.ErrInvalidInput{Reason: "content is required"}
	}
	if contentType != "email" && contentType != "url" {
		return nil, &llm.ErrInvalidInput{Reason: `type must be "email" or "url"`}
	}

	span, err := s.generate(ctx, "detect-phishing", buildDetectionPrompt(content, contentType), detectionSchema)
	if err != nil {
		return nil, err
	}

	var out Detection
	if err := json.Unmarshal([]byte(span), &out); err != nil {
		return nil, &llm.ErrMalformed{Raw: span, Err: err}
	}
	return &out, nil
}

// Tutor produces free-text feedback on an answered exercise. The reply
// is plain prose, not JSON; correctness is computed locally by
// case-insensitive comparison, not by the model.
func (s *Service) Tutor(ctx context.Context, in TutorInput) (feedback string, isCorrect bool, err error) {
	if in.UserAnswer == "" || in.CorrectAnswer == "" {
		return "", false, &llm.ErrInvalidInput{Reason: "userAnswer and correctAnswer are required"}
	}

	isCorrect = strings.EqualFold(in.UserAnswer, in.CorrectAnswer)

	ctx = llm.WithPurpose(ctx, "ai-tutor")
	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildTutorPrompt(in, isCorrect)}},
		Model:       s.cfg.TutorModel,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", false, fmt.Errorf("tutor feedback: %w", err)
	}

	return resp.Text, isCorrect, nil
}

// generate runs the shared pipeline: one model call, JSON span
// extraction, strict schema validation. It returns the validated span
// for the caller's typed decode.
func (s *Service) generate(ctx context.Context, purpose, prompt string, schema *payloadSchema) (string, error) {
	ctx = llm.WithPurpose(ctx, purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Model:       s.cfg.Model,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", purpose, err)
	}

	span, err := ExtractObject(resp.Text)
	if err != nil {
		return "", fmt.Errorf("%s: %w", purpose, err)
	}

	if err := schema.validate(span); err != nil {
		return "", fmt.Errorf("%s: %w", purpose, err)
	}

	return span, nil
}

func normalizeDifficulty(d string) (string, error) {
	switch d {
	case "":
		return "medium", nil
	case "easy", "medium", "hard":
		return d, nil
	default:
		return "", &llm.ErrInvalidInput{Reason: fmt.Sprintf("unknown difficulty %q", d)}
	}
}
