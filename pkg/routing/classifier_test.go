package routing

import (
	"math"
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		message        string
		wantIntent     string
		wantConfidence float64
	}{
		{
			name:           "empty message defaults to general",
			message:        "",
			wantIntent:     IntentGeneral,
			wantConfidence: 0.3,
		},
		{
			name:           "no keywords defaults to general",
			message:        "hello, how are you today?",
			wantIntent:     IntentGeneral,
			wantConfidence: 0.3,
		},
		{
			name:           "single clear valuation keyword",
			message:        "help me with my valuation",
			wantIntent:     IntentValuation,
			wantConfidence: 1.0,
		},
		{
			name:           "financial modeling phrases",
			message:        "what is our burn rate and runway?",
			wantIntent:     IntentFinancialModel,
			wantConfidence: 1.0,
		},
		{
			name:           "pitch deck phrasing",
			message:        "review my pitch deck please",
			wantIntent:     IntentPitchNarrative,
			wantConfidence: 1.0,
		},
		{
			name:           "market sizing",
			message:        "what is the market size and who are the competitors?",
			wantIntent:     IntentMarketResearch,
			wantConfidence: 1.0,
		},
		{
			name:           "business model design",
			message:        "sketch a lean canvas for my business model",
			wantIntent:     IntentVentureDesign,
			wantConfidence: 1.0,
		},
		{
			name:           "exact tie breaks deterministically by intent name",
			message:        "dcf runway",
			wantIntent:     IntentFinancialModel,
			wantConfidence: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classify(tt.message)

			if result.Intent != tt.wantIntent {
				t.Errorf("Intent = %q, want %q", result.Intent, tt.wantIntent)
			}
			if math.Abs(result.Confidence-tt.wantConfidence) > 1e-9 {
				t.Errorf("Confidence = %v, want %v", result.Confidence, tt.wantConfidence)
			}
		})
	}
}

func TestClassifyConfidenceBounds(t *testing.T) {
	messages := []string{
		"",
		"valuation",
		"pitch deck market size burn rate lean canvas",
		"dcf runway",
		"随便说点什么",
	}
	for _, m := range messages {
		result := classify(m)
		if result.Confidence < 0 || result.Confidence > 1 {
			t.Errorf("classify(%q).Confidence = %v, out of [0,1]", m, result.Confidence)
		}
	}
}

func TestMatchKeywordWordBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		message string
		keyword string
		want    bool
	}{
		{"short word standalone", "what is our tam?", "tam", true},
		{"short word inside larger word", "do not tamper with the data", "tam", false},
		{"short word at end", "estimate the sam", "sam", true},
		{"phrase matches as substring", "our burn rate is high", "burn rate", true},
		{"long word matches as substring", "several competitors emerged", "competitor", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchKeyword(tt.message, tt.keyword)
			if got != tt.want {
				t.Errorf("matchKeyword(%q, %q) = %v, want %v", tt.message, tt.keyword, got, tt.want)
			}
		})
	}
}
