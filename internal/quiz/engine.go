package quiz

import "math"

// Result is the outcome of scoring a completed quiz.
type Result struct {
	Correct     int    `json:"correct"`
	Total       int    `json:"total"`
	Percentage  int    `json:"percentage"`
	PerQuestion []bool `json:"perQuestion"`
}

// Score computes per-question correctness and the overall count for a
// fully answered quiz. answers[i] is the selected option index for
// questions[i], or Unanswered. An out-of-range index is scored as
// incorrect, never as a failure. Missing trailing answers count as
// unanswered. Completeness is the caller's precondition (see
// Attempt.Submit); Score itself only indexes safely.
func Score(questions []Question, answers []int) Result {
	res := Result{
		Total:       len(questions),
		PerQuestion: make([]bool, len(questions)),
	}

	for i, q := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == q.CorrectAnswer {
			res.PerQuestion[i] = true
			res.Correct++
		}
	}

	if res.Total > 0 {
		res.Percentage = int(math.Round(float64(res.Correct) / float64(res.Total) * 100))
	}
	return res
}
