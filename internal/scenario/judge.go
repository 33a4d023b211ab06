package scenario

import (
	"errors"
	"sync"
)

// ErrAlreadyAnswered signals that a guess was already recorded for a
// scenario instance. The first answer is final.
var ErrAlreadyAnswered = errors.New("scenario already answered")

// ErrUnknownScenario signals a guess against an id the session has
// never seen.
var ErrUnknownScenario = errors.New("unknown scenario id")

// target is anything the session can judge.
type target struct {
	groundTruth bool
	explanation string
	redFlags    []string
}

// Session records guesses against scenario instances and enforces
// first-answer-is-final: a second guess for the same id is rejected
// and the recorded verdict is returned unchanged. Sessions hold no
// durable state; everything is lost on restart.
type Session struct {
	mu       sync.Mutex
	targets  map[string]target
	verdicts map[string]Verdict
}

// NewSession creates an empty judging session.
func NewSession() *Session {
	return &Session{
		targets:  make(map[string]target),
		verdicts: make(map[string]Verdict),
	}
}

// AddEmail registers an email scenario so it can be judged.
func (s *Session) AddEmail(e Email) {
	s.add(e.ID, target{e.IsPhishing, e.Explanation, e.RedFlags})
}

// AddURL registers a URL scenario.
func (s *Session) AddURL(u URL) {
	s.add(u.ID, target{u.IsPhishing, u.Explanation, nil})
}

// AddLoginPage registers a login-page scenario.
func (s *Session) AddLoginPage(p LoginPage) {
	s.add(p.ID, target{p.IsPhishing, p.Explanation, nil})
}

func (s *Session) add(id string, t target) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets[id] = t
}

// Guess records a phishing/legitimate guess for the scenario with the
// given id. A repeat guess returns the original verdict alongside
// ErrAlreadyAnswered and never changes the recorded outcome.
func (s *Session) Guess(id string, isPhishing bool) (Verdict, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.verdicts[id]; ok {
		return v, ErrAlreadyAnswered
	}

	t, ok := s.targets[id]
	if !ok {
		return Verdict{}, ErrUnknownScenario
	}

	v := Judge(t.groundTruth, isPhishing, t.explanation, t.redFlags)
	s.verdicts[id] = v
	return v, nil
}

// Answered reports whether a guess has been recorded for the id.
func (s *Session) Answered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.verdicts[id]
	return ok
}
