package generate

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/phishguard/phishguard/internal/llm"
)

func validQuizPayload(n int, options int) string {
	type q struct {
		ID            int      `json:"id"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	}
	qs := make([]q, n)
	for i := range qs {
		opts := make([]string, options)
		for j := range opts {
			opts[j] = fmt.Sprintf("option %d", j+1)
		}
		qs[i] = q{
			ID:            i + 1,
			Question:      fmt.Sprintf("question %d?", i+1),
			Options:       opts,
			CorrectAnswer: 0,
			Explanation:   "because",
		}
	}
	b, _ := json.Marshal(map[string]any{"questions": qs})
	return string(b)
}

func TestQuizSchema_AcceptsTenByFour(t *testing.T) {
	if err := quizSchema.validate(validQuizPayload(10, 4)); err != nil {
		t.Fatalf("valid payload rejected: %v", err)
	}
}

func TestQuizSchema_RejectsNineQuestions(t *testing.T) {
	err := quizSchema.validate(validQuizPayload(9, 4))
	if llm.KindOf(err) != llm.KindMalformed {
		t.Fatalf("9-question payload: expected malformed-response, got %v", err)
	}
}

func TestQuizSchema_RejectsThreeOptions(t *testing.T) {
	err := quizSchema.validate(validQuizPayload(10, 3))
	if llm.KindOf(err) != llm.KindMalformed {
		t.Fatalf("3-option payload: expected malformed-response, got %v", err)
	}
}

func TestQuizSchema_RejectsMissingCorrectAnswer(t *testing.T) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(validQuizPayload(10, 4)), &doc); err != nil {
		t.Fatal(err)
	}
	qs := doc["questions"].([]any)
	delete(qs[0].(map[string]any), "correctAnswer")
	b, _ := json.Marshal(doc)

	if err := quizSchema.validate(string(b)); llm.KindOf(err) != llm.KindMalformed {
		t.Fatalf("missing correctAnswer: expected malformed-response, got %v", err)
	}
}

func TestDetectionSchema_RequiresAllFields(t *testing.T) {
	full := map[string]any{
		"isPhishing":     true,
		"confidence":     "high",
		"riskLevel":      "critical",
		"redFlags":       []any{"typosquatting"},
		"analysis":       "bad domain",
		"recommendation": "do not click",
	}
	b, _ := json.Marshal(full)
	if err := detectionSchema.validate(string(b)); err != nil {
		t.Fatalf("complete detection rejected: %v", err)
	}

	for field := range full {
		partial := map[string]any{}
		for k, v := range full {
			if k != field {
				partial[k] = v
			}
		}
		pb, _ := json.Marshal(partial)
		if err := detectionSchema.validate(string(pb)); llm.KindOf(err) != llm.KindMalformed {
			t.Errorf("missing %q accepted", field)
		}
	}
}

func TestDetectionSchema_RejectsBadEnums(t *testing.T) {
	b, _ := json.Marshal(map[string]any{
		"isPhishing":     true,
		"confidence":     "certain", // not in {high, medium, low}
		"riskLevel":      "critical",
		"redFlags":       []any{},
		"analysis":       "x",
		"recommendation": "y",
	})
	if err := detectionSchema.validate(string(b)); llm.KindOf(err) != llm.KindMalformed {
		t.Errorf("bad confidence enum accepted")
	}
}

func TestEmailScenarioSchema_TypeOrBooleanRequired(t *testing.T) {
	base := map[string]any{
		"from":        "x@y.com",
		"subject":     "s",
		"body":        "b",
		"redFlags":    []any{"f"},
		"explanation": "e",
	}

	b, _ := json.Marshal(base)
	if err := emailScenarioSchema.validate(string(b)); llm.KindOf(err) != llm.KindMalformed {
		t.Error("scenario without any ground-truth label accepted")
	}

	base["type"] = "Phishing"
	b, _ = json.Marshal(base)
	if err := emailScenarioSchema.validate(string(b)); err != nil {
		t.Errorf("type-labeled scenario rejected: %v", err)
	}

	delete(base, "type")
	base["isPhishing"] = true
	b, _ = json.Marshal(base)
	if err := emailScenarioSchema.validate(string(b)); err != nil {
		t.Errorf("boolean-labeled scenario rejected: %v", err)
	}
}
