package interview

import "testing"

func TestParseReply(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantFeedback string
		wantNext     string
	}{
		{
			name:         "both sections",
			raw:          "FEEDBACK: Strong answer with good examples.\nNEXT QUESTION: How do you handle conflict?",
			wantFeedback: "Strong answer with good examples.",
			wantNext:     "How do you handle conflict?",
		},
		{
			name:         "multiline feedback",
			raw:          "FEEDBACK: Good structure.\nYou covered the key points.\nNEXT QUESTION: What motivates you?",
			wantFeedback: "Good structure.\nYou covered the key points.",
			wantNext:     "What motivates you?",
		},
		{
			name:         "feedback only",
			raw:          "FEEDBACK: Solid response overall.",
			wantFeedback: "Solid response overall.",
			wantNext:     "",
		},
		{
			name:         "missing feedback label",
			raw:          "Here is some unlabeled text.\nNEXT QUESTION: Why this company?",
			wantFeedback: DefaultEncouragement,
			wantNext:     "Why this company?",
		},
		{
			name:         "empty feedback section",
			raw:          "FEEDBACK:\nNEXT QUESTION: Describe a challenge you faced.",
			wantFeedback: DefaultEncouragement,
			wantNext:     "Describe a challenge you faced.",
		},
		{
			name:         "no labels at all",
			raw:          "The model went off script entirely.",
			wantFeedback: DefaultEncouragement,
			wantNext:     "",
		},
		{
			name:         "empty reply",
			raw:          "",
			wantFeedback: DefaultEncouragement,
			wantNext:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseReply(tt.raw)
			if got.Feedback != tt.wantFeedback {
				t.Errorf("Feedback = %q, want %q", got.Feedback, tt.wantFeedback)
			}
			if got.NextQuestion != tt.wantNext {
				t.Errorf("NextQuestion = %q, want %q", got.NextQuestion, tt.wantNext)
			}
		})
	}
}
