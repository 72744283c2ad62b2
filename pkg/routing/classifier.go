package routing

import (
	"fmt"
	"sort"
	"strings"
)

// classification is the outcome of keyword scoring for one message.
type classification struct {
	Intent     string
	Score      float64
	RunnerUp   string
	RunnerUpSc float64
	Confidence float64
	Reasoning  string
}

// classify scores the message against the static intent keyword tables.
// Purely lexical: no network, no model call, so latency stays bounded.
func classify(message string) classification {
	lowered := strings.ToLower(message)

	type scored struct {
		intent string
		score  float64
	}
	var scores []scored
	for intent, keywords := range intentKeywords {
		var total float64
		for kw, weight := range keywords {
			if matchKeyword(lowered, kw) {
				total += weight
			}
		}
		if total > 0 {
			scores = append(scores, scored{intent: intent, score: total})
		}
	}

	if len(scores) == 0 {
		return classification{
			Intent:     IntentGeneral,
			Confidence: 0.3,
			Reasoning:  "classifier: no intent keywords matched, defaulting to general chat",
		}
	}

	// Sort by score descending, intent name as a deterministic tie-break.
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].score != scores[j].score {
			return scores[i].score > scores[j].score
		}
		return scores[i].intent < scores[j].intent
	})

	win := scores[0]
	result := classification{
		Intent: win.intent,
		Score:  win.score,
	}
	if len(scores) > 1 {
		result.RunnerUp = scores[1].intent
		result.RunnerUpSc = scores[1].score
	}

	// Confidence from the classification margin: a clear winner scores
	// near 1.0, a photo finish stays near 0.5.
	margin := (win.score - result.RunnerUpSc) / win.score
	result.Confidence = 0.5 + 0.5*margin
	if result.Confidence > 1.0 {
		result.Confidence = 1.0
	}

	result.Reasoning = fmt.Sprintf(
		"classifier: matched intent %s (keyword score %.1f vs runner-up %.1f)",
		result.Intent, result.Score, result.RunnerUpSc,
	)
	return result
}

// matchKeyword reports whether the keyword occurs in the lowered message.
// Short single words are matched on word boundaries so that e.g. "tam"
// does not fire inside unrelated words.
func matchKeyword(lowered, keyword string) bool {
	if len(keyword) <= 4 && !strings.Contains(keyword, " ") {
		padded := " " + lowered + " "
		for _, sep := range []string{" ", ".", ",", "?", "!"} {
			if strings.Contains(padded, " "+keyword+sep) {
				return true
			}
		}
		return false
	}
	return strings.Contains(lowered, keyword)
}
