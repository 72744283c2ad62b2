package routing

import (
	"testing"
)

func TestParseMention(t *testing.T) {
	tests := []struct {
		name            string
		message         string
		wantMention     string
		wantCleanPrompt string
	}{
		{
			name:            "no mention",
			message:         "What is our runway?",
			wantMention:     "",
			wantCleanPrompt: "What is our runway?",
		},
		{
			name:            "leading mention",
			message:         "@val what is the company worth?",
			wantMention:     "val",
			wantCleanPrompt: "what is the company worth?",
		},
		{
			name:            "mention is lowercased",
			message:         "@Pitch polish my deck",
			wantMention:     "pitch",
			wantCleanPrompt: "polish my deck",
		},
		{
			name:            "leading whitespace is tolerated",
			message:         "   @fin update the projections",
			wantMention:     "fin",
			wantCleanPrompt: "update the projections",
		},
		{
			name:            "mid-message at sign is prose",
			message:         "email me @ the office about the deck",
			wantMention:     "",
			wantCleanPrompt: "email me @ the office about the deck",
		},
		{
			name:            "unknown token is still extracted",
			message:         "@bogus help me out",
			wantMention:     "bogus",
			wantCleanPrompt: "help me out",
		},
		{
			name:            "bare at sign",
			message:         "@",
			wantMention:     "",
			wantCleanPrompt: "@",
		},
		{
			name:            "mention only",
			message:         "@market",
			wantMention:     "market",
			wantCleanPrompt: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseMention(tt.message)

			if result.Mention != tt.wantMention {
				t.Errorf("Mention = %q, want %q", result.Mention, tt.wantMention)
			}
			if result.CleanPrompt != tt.wantCleanPrompt {
				t.Errorf("CleanPrompt = %q, want %q", result.CleanPrompt, tt.wantCleanPrompt)
			}
		})
	}
}
