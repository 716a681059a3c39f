package triage

import (
	"reflect"
	"strings"
	"testing"
)

func TestExtractTextEmpty(t *testing.T) {
	for _, desc := range []string{"", "   ", "\n\t "} {
		ex := ExtractText(desc)
		if len(ex.Matched) != 0 || ex.ScoreBoost != 0 || len(ex.Observations) != 0 {
			t.Errorf("ExtractText(%q) = %+v, want empty extraction", desc, ex)
		}
	}
}

func TestExtractTextCaseInsensitive(t *testing.T) {
	ex := ExtractText("HEAVY BLEEDING from the Hindlimb, cannot Walk")
	want := []string{"heavy bleeding", "cannot walk"}
	if !reflect.DeepEqual(ex.Matched, want) {
		t.Errorf("matched = %v, want %v", ex.Matched, want)
	}
	if ex.ScoreBoost != 6 {
		t.Errorf("score boost = %d, want 6", ex.ScoreBoost)
	}
}

func TestExtractTextTierWeights(t *testing.T) {
	tests := []struct {
		desc  string
		boost int
	}{
		{"seizure just now", 3},
		{"keeps vomiting", 2},
		{"constant sneezing", 1},
		{"very friendly and alert", 0},
		{"seizure and vomiting and sneezing and alert", 6},
	}
	for _, tt := range tests {
		if ex := ExtractText(tt.desc); ex.ScoreBoost != tt.boost {
			t.Errorf("ExtractText(%q).ScoreBoost = %d, want %d", tt.desc, ex.ScoreBoost, tt.boost)
		}
	}
}

func TestExtractTextMatchesOnce(t *testing.T) {
	ex := ExtractText("vomiting in the morning, vomiting again at night")
	if len(ex.Matched) != 1 || ex.ScoreBoost != 2 {
		t.Errorf("repeated phrase must match once, got matched=%v boost=%d", ex.Matched, ex.ScoreBoost)
	}
}

func TestExtractTextZeroWeightStillObserves(t *testing.T) {
	ex := ExtractText("seems thirsty")
	if len(ex.Matched) != 1 || ex.ScoreBoost != 0 {
		t.Fatalf("got matched=%v boost=%d, want one zero-weight match", ex.Matched, ex.ScoreBoost)
	}
	if len(ex.Observations) != 1 {
		t.Fatalf("observations = %v, want exactly one", ex.Observations)
	}
	if !strings.Contains(ex.Observations[0], `"thirsty"`) || !strings.Contains(ex.Observations[0], "low-priority") {
		t.Errorf("observation = %q, want quoted phrase and tier", ex.Observations[0])
	}
}

func TestExtractTextObservationFormat(t *testing.T) {
	ex := ExtractText("was hit by car")
	want := `Free-text NLP detected "hit by car" — classified as critical-priority indicator.`
	if len(ex.Observations) != 1 || ex.Observations[0] != want {
		t.Errorf("observation = %q, want %q", ex.Observations, want)
	}
}

func TestExtractTextCriticalBeforeLow(t *testing.T) {
	// Tier order wins over mention order in the text.
	ex := ExtractText("alert but unconscious moments earlier")
	want := []string{"unconscious", "alert"}
	if !reflect.DeepEqual(ex.Matched, want) {
		t.Errorf("matched = %v, want %v", ex.Matched, want)
	}
}

func TestExtractTextSubstringDoubleCount(t *testing.T) {
	// "scratching" contains no other phrase, but a text covering both an
	// exact phrase and a longer phrase containing it counts both entries.
	// Substring containment is deliberate: no word-boundary logic.
	ex := ExtractText("it is itching and scratching")
	if ex.ScoreBoost != 2 {
		t.Errorf("boost = %d, want 2 (two medium matches)", ex.ScoreBoost)
	}

	// "alert" matches inside unrelated words too.
	ex = ExtractText("owner was alerted")
	if len(ex.Matched) != 1 || ex.Matched[0] != "alert" {
		t.Errorf("matched = %v, want the embedded phrase to count", ex.Matched)
	}
}
