package quiz

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned by Submit while any question is unanswered.
var ErrIncomplete = errors.New("quiz has unanswered questions")

// ErrSubmitted is returned when mutating an already-submitted attempt.
var ErrSubmitted = errors.New("quiz already submitted")

// Attempt tracks a single pass through a question list: one selection
// per question plus a submitted flag. Attempts live for a session and
// are never persisted. Not safe for concurrent use; an attempt belongs
// to exactly one client.
type Attempt struct {
	questions []Question
	answers   []int
	submitted bool
	result    Result
}

// NewAttempt starts a fresh attempt over the given questions.
func NewAttempt(questions []Question) *Attempt {
	a := &Attempt{
		questions: questions,
		answers:   make([]int, len(questions)),
	}
	for i := range a.answers {
		a.answers[i] = Unanswered
	}
	return a
}

// Select records the chosen option for a question. Selections can be
// changed freely until the attempt is submitted.
func (a *Attempt) Select(questionIndex, optionIndex int) error {
	if a.submitted {
		return ErrSubmitted
	}
	if questionIndex < 0 || questionIndex >= len(a.questions) {
		return fmt.Errorf("question index %d out of range", questionIndex)
	}
	a.answers[questionIndex] = optionIndex
	return nil
}

// AllAnswered reports whether every question has a selection.
func (a *Attempt) AllAnswered() bool {
	for _, ans := range a.answers {
		if ans == Unanswered {
			return false
		}
	}
	return true
}

// Submit scores the attempt. The score is only defined once every
// question has a selection; submitting early returns ErrIncomplete.
func (a *Attempt) Submit() (Result, error) {
	if a.submitted {
		return a.result, nil
	}
	if !a.AllAnswered() {
		return Result{}, ErrIncomplete
	}
	a.result = Score(a.questions, a.answers)
	a.submitted = true
	return a.result, nil
}

// Submitted reports whether the attempt has been scored.
func (a *Attempt) Submitted() bool {
	return a.submitted
}

// Reset clears all selections and the submitted flag, returning the
// attempt to its initial state.
func (a *Attempt) Reset() {
	for i := range a.answers {
		a.answers[i] = Unanswered
	}
	a.submitted = false
	a.result = Result{}
}
