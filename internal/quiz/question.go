// Package quiz holds the static multiple-choice question banks and the
// scoring engine for the training site's learning modules.
package quiz

// Question is a single multiple-choice question. Instances are
// immutable: banks are defined at process start and never mutated, and
// generated quizzes are request-scoped.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Unanswered is the sentinel for a question with no selection yet.
const Unanswered = -1

// OptionCount is the number of options every question carries.
const OptionCount = 4
