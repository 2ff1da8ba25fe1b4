package interview

import (
	"regexp"
	"strings"
)

// DefaultEncouragement replaces an absent or empty FEEDBACK section so the
// caller never receives empty feedback.
const DefaultEncouragement = "Good response. Keep up the good work!"

var (
	feedbackPattern     = regexp.MustCompile(`(?s)FEEDBACK:\s*(.*?)(?:NEXT QUESTION:|$)`)
	nextQuestionPattern = regexp.MustCompile(`(?s)NEXT QUESTION:\s*(.*)$`)
)

// ParsedReply is the result of extracting the two labeled sections from an
// AI reply. An empty NextQuestion means the reply carried none.
type ParsedReply struct {
	Feedback     string
	NextQuestion string
}

// ParseReply extracts the FEEDBACK and NEXT QUESTION sections from a
// free-text AI reply. This is best-effort: the model is asked for the
// two-section format but nothing enforces that it complied, so missing
// sections degrade gracefully instead of erroring.
func ParseReply(raw string) ParsedReply {
	var parsed ParsedReply

	if m := feedbackPattern.FindStringSubmatch(raw); m != nil {
		parsed.Feedback = strings.TrimSpace(m[1])
	}
	if parsed.Feedback == "" {
		parsed.Feedback = DefaultEncouragement
	}

	if m := nextQuestionPattern.FindStringSubmatch(raw); m != nil {
		parsed.NextQuestion = strings.TrimSpace(m[1])
	}
	return parsed
}
