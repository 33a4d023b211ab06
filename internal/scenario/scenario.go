// Package scenario holds the static training scenarios and the judge
// that scores a learner's phishing/legitimate guesses.
package scenario

// Email is a training email, flagged with its ground truth. Static
// instances live in the compiled-in bank; generated instances are
// request-scoped. The phishing/legitimate label is a single canonical
// boolean; the model's "type" string is folded into it at the parse
// boundary and never stored.
type Email struct {
	ID          string   `json:"id"`
	From        string   `json:"from"`
	Subject     string   `json:"subject"`
	Body        string   `json:"body"`
	IsPhishing  bool     `json:"isPhishing"`
	RedFlags    []string `json:"redFlags"`
	Explanation string   `json:"explanation"`
}

// URL is a training link: the address a link really points at versus
// the text it shows.
type URL struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	DisplayText string `json:"displayText"`
	IsPhishing  bool   `json:"isPhishing"`
	Explanation string `json:"explanation"`
}

// LoginPage is a training login page with its observable security
// indicators.
type LoginPage struct {
	ID                  string `json:"id"`
	SiteName            string `json:"siteName"`
	URL                 string `json:"url"`
	HasHTTPS            bool   `json:"hasHttps"`
	HasSuspiciousDomain bool   `json:"hasSuspiciousDomain"`
	IsPhishing          bool   `json:"isPhishing"`
	Explanation         string `json:"explanation"`
}

// Verdict is the judge's answer to a single guess.
type Verdict struct {
	Correct     bool     `json:"correct"`
	GroundTruth bool     `json:"groundTruth"`
	Explanation string   `json:"explanation"`
	RedFlags    []string `json:"redFlags,omitempty"`
}

// Judge compares a guess against a scenario's ground truth. Pure and
// idempotent; first-answer lock-in is layered on top by Session.
func Judge(groundTruth bool, guess bool, explanation string, redFlags []string) Verdict {
	return Verdict{
		Correct:     guess == groundTruth,
		GroundTruth: groundTruth,
		Explanation: explanation,
		RedFlags:    redFlags,
	}
}
