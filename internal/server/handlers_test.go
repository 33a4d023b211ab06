package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phishguard/phishguard/internal/chat"
	"github.com/phishguard/phishguard/internal/config"
	"github.com/phishguard/phishguard/internal/generate"
	"github.com/phishguard/phishguard/internal/llm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, provider llm.Provider) *Server {
	t.Helper()
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	return New(
		config.Default().HTTP,
		log,
		generate.NewService(provider, generate.DefaultConfig()),
		chat.NewService(provider, chat.DefaultConfig()),
	)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func quizReply() string {
	out := `{"questions":[`
	for i := range 10 {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"question":"Question %d?","options":["a","b","c","d"],"correctAnswer":1,"explanation":"because"}`, i+1)
	}
	return out + `]}`
}

func TestGeneratePasswordQuiz_ProseWrappedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Text: "Of course! Here is your quiz:\n" + quizReply() + "\nLet me know if you need more.",
	})
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/generate-password-quiz", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Questions []json.RawMessage `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Questions, 10)
}

func TestChat_Hello(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Hi there"})
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/chat", map[string]any{
		"message": "hello",
		"history": []any{},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"response":"Hi there"}`, w.Body.String())
}

func TestChat_EmptyMessage(t *testing.T) {
	mock := llm.NewMockProvider()
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/chat", map[string]any{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mock.CallCount())
}

func TestDetectPhishing_UnconfiguredCredential(t *testing.T) {
	cfg := llm.DefaultConfig()
	cfg.Gemini.APIKey = ""
	provider, err := llm.NewProvider(context.Background(), cfg)
	require.NoError(t, err)
	srv := newTestServer(t, provider)

	w := doJSON(t, srv, http.MethodPost, "/detect-phishing", map[string]any{
		"content": "Dear customer, verify your account now",
		"type":    "email",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "configuration")
}

func TestDetectPhishing_InvalidType(t *testing.T) {
	mock := llm.NewMockProvider()
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/detect-phishing", map[string]any{
		"content": "hello",
		"type":    "sms",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, mock.CallCount())
}

func TestGenerateScenario_NetworkFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrUnavailable{}})
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/generate-scenario", map[string]any{"difficulty": "medium"})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Unable to connect to AI service")
}

func TestGenerateScenario_MalformedReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "I cannot produce JSON today, sorry."})
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/generate-scenario", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to generate scenario")
}

func TestAITutor(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Great catch! The sender domain gave it away."})
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/ai-tutor", map[string]any{
		"scenario": map[string]any{
			"from":    "it-support@acme-helpdesk.net",
			"subject": "Password expiry",
			"body":    "Reset now or lose access.",
		},
		"userAnswer":    "Phishing",
		"correctAnswer": "phishing",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Feedback  string `json:"feedback"`
		IsCorrect bool   `json:"isCorrect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsCorrect)
	assert.NotEmpty(t, resp.Feedback)
}

func TestQuizBanksAndScore(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	w := doJSON(t, srv, http.MethodGet, "/quiz/password", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var bank struct {
		Questions []struct {
			CorrectAnswer int      `json:"correctAnswer"`
			Options       []string `json:"options"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bank))
	require.Len(t, bank.Questions, 10)

	// Submit the bank's own answer key: a perfect score.
	answers := make([]int, len(bank.Questions))
	for i, q := range bank.Questions {
		answers[i] = q.CorrectAnswer
	}
	w = doJSON(t, srv, http.MethodPost, "/quiz/score", map[string]any{
		"bank":    "password",
		"answers": answers,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var result struct {
		Correct    int `json:"correct"`
		Total      int `json:"total"`
		Percentage int `json:"percentage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 10, result.Correct)
	assert.Equal(t, 100, result.Percentage)
}

func TestJudge_LockIn(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	body := map[string]any{"id": "email-1", "isPhishing": true}
	w := doJSON(t, srv, http.MethodPost, "/scenarios/judge", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second guess against the same scenario is rejected.
	w = doJSON(t, srv, http.MethodPost, "/scenarios/judge", body)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, srv, http.MethodPost, "/scenarios/judge", map[string]any{
		"id": "no-such-scenario", "isPhishing": false,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPasswordStrength_Empty(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())

	w := doJSON(t, srv, http.MethodPost, "/password-strength", map[string]any{"password": ""})
	require.Equal(t, http.StatusOK, w.Code)

	var report struct {
		Label      string `json:"label"`
		ColorClass string `json:"colorClass"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, "Enter a password", report.Label)
}

func TestSimulationSet_PartialFailureIs500(t *testing.T) {
	mock := llm.NewMockProvider()
	// Fewer replies than the batch needs; some goroutines hit an empty
	// queue and fail, so the whole batch must fail.
	mock.AddResponse(llm.MockResponse{Text: `{
		"siteName": "Example", "url": "https://example.com", "displayText": "Example",
		"hasHttps": true, "hasSuspiciousDomain": false,
		"isPhishing": false, "explanation": "fine"
	}`})
	srv := newTestServer(t, mock)

	w := doJSON(t, srv, http.MethodPost, "/generate-simulation-set", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider())
	w := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
