package strength

import (
	"strings"
	"testing"
)

func TestEvaluate_EmptyReturnsPlaceholder(t *testing.T) {
	r := Evaluate("")
	if r.Entered {
		t.Error("empty password marked as entered")
	}
	if r.Label != "Enter a password" {
		t.Errorf("label = %q", r.Label)
	}
	if r.CrackTimeDisplay != "" {
		t.Error("placeholder state carries a crack-time estimate")
	}
}

func TestEvaluate_ScoreMapsToFixedTable(t *testing.T) {
	for score, want := range map[int]string{
		0: "Very Weak",
		1: "Weak",
		2: "Fair",
		3: "Strong",
		4: "Very Strong",
	} {
		if levels[score].label != want {
			t.Errorf("levels[%d] = %q, want %q", score, levels[score].label, want)
		}
	}
}

func TestEvaluate_CommonPasswordIsWeak(t *testing.T) {
	r := Evaluate("password")
	if !r.Entered {
		t.Fatal("not marked entered")
	}
	if r.Score > 1 {
		t.Errorf("common password scored %d", r.Score)
	}
	if r.Label != levels[r.Score].label {
		t.Errorf("label %q does not match score %d", r.Label, r.Score)
	}
	if len(r.Suggestions) == 0 {
		t.Error("weak password produced no suggestions")
	}
}

func TestEvaluate_LongRandomPassphraseIsStrong(t *testing.T) {
	r := Evaluate("quartz-lantern-92-meadow-sprocket")
	if r.Score < 3 {
		t.Errorf("long passphrase scored %d", r.Score)
	}
	if r.Warning != "" {
		t.Errorf("strong password carries warning %q", r.Warning)
	}
	if r.CrackTimeDisplay == "" {
		t.Error("no crack-time estimate")
	}
}

func TestEvaluate_AcceptsVeryLongInput(t *testing.T) {
	r := Evaluate(strings.Repeat("correct-horse-", 50))
	if !r.Entered {
		t.Fatal("long input rejected")
	}
	if r.Score < 0 || r.Score > 4 {
		t.Errorf("score out of range: %d", r.Score)
	}
}
