package interview

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// GeneralRole is the fallback role for any job role without its own
// question list.
const GeneralRole = "General"

// TotalTurns is the fixed number of question/answer cycles per session.
const TotalTurns = 5

//go:embed bank.yaml
var bankYAML []byte

// Bank holds the canned interview questions used whenever the AI
// collaborator is unavailable.
type Bank struct {
	roles map[string][]string
}

// LoadBank parses the embedded question bank. Every role must carry exactly
// TotalTurns questions and a General list must be present.
func LoadBank() (*Bank, error) {
	var roles map[string][]string
	if err := yaml.Unmarshal(bankYAML, &roles); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}
	if _, ok := roles[GeneralRole]; !ok {
		return nil, fmt.Errorf("question bank missing %q role", GeneralRole)
	}
	for role, qs := range roles {
		if len(qs) != TotalTurns {
			return nil, fmt.Errorf("role %q has %d questions, want %d", role, len(qs), TotalTurns)
		}
	}
	return &Bank{roles: roles}, nil
}

// QuestionsFor returns the ordered question list for a role. Unknown, empty,
// or unmatched roles resolve to the General list.
func (b *Bank) QuestionsFor(jobRole string) []string {
	if qs, ok := b.roles[jobRole]; ok {
		return qs
	}
	return b.roles[GeneralRole]
}
