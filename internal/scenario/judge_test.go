package scenario

import (
	"errors"
	"testing"
)

func TestJudge_CorrectIffGuessMatchesGroundTruth(t *testing.T) {
	tests := []struct {
		groundTruth bool
		guess       bool
		correct     bool
	}{
		{true, true, true},
		{true, false, false},
		{false, false, true},
		{false, true, false},
	}
	for _, tt := range tests {
		v := Judge(tt.groundTruth, tt.guess, "because", nil)
		if v.Correct != tt.correct {
			t.Errorf("Judge(%v, %v).Correct = %v, want %v", tt.groundTruth, tt.guess, v.Correct, tt.correct)
		}
		if v.GroundTruth != tt.groundTruth {
			t.Errorf("ground truth not surfaced")
		}
	}
}

func TestJudge_Idempotent(t *testing.T) {
	a := Judge(true, false, "x", []string{"flag"})
	b := Judge(true, false, "x", []string{"flag"})
	if a.Correct != b.Correct || a.GroundTruth != b.GroundTruth || a.Explanation != b.Explanation {
		t.Error("repeated calls with same inputs differ")
	}
}

func TestSession_FirstAnswerIsFinal(t *testing.T) {
	s := NewSession()
	email := EmailBank()[0] // phishing
	s.AddEmail(email)

	first, err := s.Guess(email.ID, true)
	if err != nil {
		t.Fatalf("first guess: %v", err)
	}
	if !first.Correct {
		t.Fatal("correct guess judged wrong")
	}

	// Second guess with the opposite answer must not change the outcome.
	second, err := s.Guess(email.ID, false)
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("expected ErrAlreadyAnswered, got %v", err)
	}
	if second.Correct != first.Correct {
		t.Error("second guess changed the recorded verdict")
	}
	if !s.Answered(email.ID) {
		t.Error("Answered() = false after guess")
	}
}

func TestSession_UnknownID(t *testing.T) {
	s := NewSession()
	if _, err := s.Guess("nope", true); !errors.Is(err, ErrUnknownScenario) {
		t.Errorf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestSession_SurfacesStoredRationale(t *testing.T) {
	s := NewSession()
	email := EmailBank()[0]
	s.AddEmail(email)

	v, err := s.Guess(email.ID, false)
	if err != nil {
		t.Fatal(err)
	}
	if v.Explanation != email.Explanation {
		t.Error("explanation not surfaced")
	}
	if len(v.RedFlags) != len(email.RedFlags) {
		t.Errorf("red flags: got %d, want %d", len(v.RedFlags), len(email.RedFlags))
	}
}

func TestBanks_Shape(t *testing.T) {
	if len(EmailBank()) != 3 || len(URLBank()) != 3 || len(LoginPageBank()) != 3 {
		t.Fatal("bank sizes changed")
	}
	for _, e := range EmailBank() {
		if e.ID == "" || e.Explanation == "" {
			t.Errorf("email %q incomplete", e.Subject)
		}
		if e.IsPhishing && len(e.RedFlags) == 0 {
			t.Errorf("phishing email %q has no red flags", e.ID)
		}
	}
}
