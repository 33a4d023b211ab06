// Package strength wraps an external password-strength estimator and
// maps its numeric verdict to display state for the strength meter.
package strength

import (
	"github.com/nbutton23/zxcvbn-go"
	"github.com/nbutton23/zxcvbn-go/match"
)

// Report is the display state for one evaluated password.
type Report struct {
	// Entered is false for the empty-input placeholder state.
	Entered bool `json:"entered"`

	// Score is the estimator's 0-4 rating. Zero for the placeholder.
	Score int `json:"score"`

	Label      string `json:"label"`
	ColorClass string `json:"colorClass"`

	// Warning is present for weak passwords with an identifiable
	// problem; empty otherwise.
	Warning     string   `json:"warning,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`

	// CrackTimeDisplay is the estimator's human-readable crack-time
	// estimate, e.g. "instant" or "centuries".
	CrackTimeDisplay string `json:"crackTimeDisplay"`
}

// level is one entry of the fixed score-to-display lookup table.
type level struct {
	label string
	color string
}

// levels maps the estimator's 0-4 score to a label and a progressively
// more saturated color class.
var levels = [5]level{
	{"Very Weak", "bg-red-500"},
	{"Weak", "bg-orange-500"},
	{"Fair", "bg-yellow-500"},
	{"Strong", "bg-green-500"},
	{"Very Strong", "bg-green-600"},
}

// Evaluate scores a candidate password. The empty string short-circuits
// to the placeholder state without invoking the estimator. Any other
// string, however long, is accepted.
func Evaluate(password string) Report {
	if password == "" {
		return Report{
			Label:      "Enter a password",
			ColorClass: "bg-gray-300",
		}
	}

	est := zxcvbn.PasswordStrength(password, nil)

	score := est.Score
	if score < 0 {
		score = 0
	}
	if score > 4 {
		score = 4
	}

	r := Report{
		Entered:          true,
		Score:            score,
		Label:            levels[score].label,
		ColorClass:       levels[score].color,
		CrackTimeDisplay: est.CrackTimeDisplay,
	}

	// The estimator exposes its match sequence rather than feedback
	// strings; derive the warning and suggestions from it.
	if score <= 2 {
		r.Warning, r.Suggestions = feedback(password, est.MatchSequence)
	}

	return r
}

// feedback translates the estimator's match sequence into the warning
// and suggestion strings the meter displays for weak passwords.
func feedback(password string, matches []match.Match) (string, []string) {
	var warning string
	var suggestions []string

	for _, m := range matches {
		// Only warn about matches that dominate the password.
		if len(m.Token)*2 < len(password) {
			continue
		}
		switch m.Pattern {
		case "dictionary":
			if m.DictionaryName == "passwords" {
				warning = "This is a very common password"
			} else if warning == "" {
				warning = "A word by itself is easy to guess"
			}
		case "spatial":
			if warning == "" {
				warning = "Straight rows of keys are easy to guess"
			}
		case "repeat":
			if warning == "" {
				warning = "Repeated characters are easy to guess"
			}
		case "sequence":
			if warning == "" {
				warning = "Sequences like abc or 123 are easy to guess"
			}
		case "date":
			if warning == "" {
				warning = "Dates are often easy to guess"
			}
		}
	}

	if len(password) < 12 {
		suggestions = append(suggestions, "Use 12 characters or more")
	}
	suggestions = append(suggestions, "Add uncommon words or unrelated word combinations")
	if warning != "" {
		suggestions = append(suggestions, "Avoid common words, patterns, and personal information")
	}

	return warning, suggestions
}
