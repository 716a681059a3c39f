package triage

import (
	"fmt"
	"strings"
)

// TextExtraction is the output of the free-text keyword scan.
type TextExtraction struct {
	Matched      []string
	ScoreBoost   int
	Observations []string
}

// ExtractText scans a free-text description for known symptom phrases.
// Matching is case-insensitive substring containment with no word-boundary
// awareness; each lexicon entry matches at most once no matter how often it
// occurs in the text. A blank or whitespace-only description yields an empty
// extraction. Low-tier matches carry zero weight but still produce a matched
// phrase and an observation line.
func ExtractText(description string) TextExtraction {
	ex := TextExtraction{
		Matched:      []string{},
		Observations: []string{},
	}
	if strings.TrimSpace(description) == "" {
		return ex
	}

	lower := strings.ToLower(description)
	for _, kw := range symptomLexicon {
		if !strings.Contains(lower, kw.phrase) {
			continue
		}
		ex.Matched = append(ex.Matched, kw.phrase)
		ex.ScoreBoost += kw.weight
		ex.Observations = append(ex.Observations, fmt.Sprintf(
			"Free-text NLP detected %q — classified as %s-priority indicator.", kw.phrase, kw.tier))
	}
	return ex
}
