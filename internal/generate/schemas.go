package generate

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/phishguard/phishguard/internal/llm"
)

// Each generator promises an exact payload shape; validation is an
// explicit step with an enumerated required-field set per endpoint,
// checked before any typed decode.

var emailScenarioSchema = &payloadSchema{
	name: "email-scenario",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"from", "subject", "body", "redFlags", "explanation"},
		// Ground truth arrives either as a "type" string or an
		// "isPhishing" boolean; at least one must be present. It is
		// normalized to the boolean immediately after validation.
		"anyOf": []any{
			map[string]any{"required": []any{"type"}},
			map[string]any{"required": []any{"isPhishing"}},
		},
		"properties": map[string]any{
			"from":       map[string]any{"type": "string", "minLength": 1},
			"subject":    map[string]any{"type": "string", "minLength": 1},
			"body":       map[string]any{"type": "string", "minLength": 1},
			"type":       map[string]any{"type": "string"},
			"isPhishing": map[string]any{"type": "boolean"},
			"redFlags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"explanation": map[string]any{"type": "string", "minLength": 1},
		},
	},
}

var urlScenarioSchema = &payloadSchema{
	name: "url-scenario",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"url", "displayText", "isPhishing", "explanation"},
		"properties": map[string]any{
			"url":         map[string]any{"type": "string", "minLength": 1},
			"displayText": map[string]any{"type": "string", "minLength": 1},
			"isPhishing":  map[string]any{"type": "boolean"},
			"explanation": map[string]any{"type": "string", "minLength": 1},
		},
	},
}

var loginScenarioSchema = &payloadSchema{
	name: "login-scenario",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"siteName", "url", "hasHttps", "hasSuspiciousDomain", "isPhishing", "explanation"},
		"properties": map[string]any{
			"siteName":            map[string]any{"type": "string", "minLength": 1},
			"url":                 map[string]any{"type": "string", "minLength": 1},
			"hasHttps":            map[string]any{"type": "boolean"},
			"hasSuspiciousDomain": map[string]any{"type": "boolean"},
			"isPhishing":          map[string]any{"type": "boolean"},
			"explanation":         map[string]any{"type": "string", "minLength": 1},
		},
	},
}

// quizSchema demands exactly 10 questions of exactly 4 options each.
var quizSchema = &payloadSchema{
	name: "quiz",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"questions"},
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 10,
				"maxItems": 10,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "options", "correctAnswer", "explanation"},
					"properties": map[string]any{
						"id":       map[string]any{"type": "integer"},
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items":    map[string]any{"type": "string", "minLength": 1},
						},
						"correctAnswer": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation": map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
	},
}

var detectionSchema = &payloadSchema{
	name: "detection",
	definition: map[string]any{
		"type":     "object",
		"required": []any{"isPhishing", "confidence", "riskLevel", "redFlags", "analysis", "recommendation"},
		"properties": map[string]any{
			"isPhishing": map[string]any{"type": "boolean"},
			"confidence": map[string]any{
				"type": "string",
				"enum": []any{"high", "medium", "low"},
			},
			"riskLevel": map[string]any{
				"type": "string",
				"enum": []any{"critical", "high", "medium", "low", "safe"},
			},
			"redFlags": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"analysis":       map[string]any{"type": "string", "minLength": 1},
			"recommendation": map[string]any{"type": "string", "minLength": 1},
		},
	},
}

// payloadSchema is a lazily compiled, cached JSON Schema.
type payloadSchema struct {
	name       string
	definition map[string]any

	once     sync.Once
	compiled *jsonschema.Schema
	compErr  error
}

// validate checks raw JSON against the schema. Failures classify as
// malformed-response: the model replied but broke its contract.
func (s *payloadSchema) validate(raw string) error {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return &llm.ErrMalformed{Raw: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	s.once.Do(s.compile)
	if s.compErr != nil {
		return fmt.Errorf("compile schema %q: %w", s.name, s.compErr)
	}

	if err := s.compiled.Validate(parsed); err != nil {
		return &llm.ErrMalformed{Raw: raw, Err: fmt.Errorf("schema %q: %w", s.name, err)}
	}
	return nil
}

func (s *payloadSchema) compile() {
	// The compiler wants a parsed JSON value, not Go maps with
	// arbitrary nesting; round-trip through encoding/json.
	defBytes, err := json.Marshal(s.definition)
	if err != nil {
		s.compErr = err
		return
	}
	var def any
	if err := json.Unmarshal(defBytes, &def); err != nil {
		s.compErr = err
		return
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", s.name)
	if err := c.AddResource(url, def); err != nil {
		s.compErr = err
		return
	}
	s.compiled, s.compErr = c.Compile(url)
}
