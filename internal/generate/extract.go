package generate

import (
	"fmt"
	"strings"

	"github.com/phishguard/phishguard/internal/llm"
)

// ExtractObject returns the first balanced top-level JSON object in the
// model's text output, ignoring any prose or markdown fencing around
// it. Models regularly wrap the payload they were told to emit alone;
// extraction is a separate, named step so it can be tested without a
// live model.
func ExtractObject(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", &llm.ErrMalformed{
			Raw: text,
			Err: fmt.Errorf("no JSON object in model output"),
		}
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], nil
			}
		}
	}

	return "", &llm.ErrMalformed{
		Raw: text,
		Err: fmt.Errorf("unterminated JSON object in model output"),
	}
}
