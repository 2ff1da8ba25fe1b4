package interview

import (
	"math/rand"
	"strings"
	"testing"
)

func TestFeedbackComesFromTemplates(t *testing.T) {
	g := NewFeedbackGenerator(rand.New(rand.NewSource(1)))

	templates := make(map[string]bool, len(feedbackTemplates))
	for _, tmpl := range feedbackTemplates {
		templates[tmpl] = true
	}

	for i := 0; i < 100; i++ {
		got := g.Feedback("some answer", false)
		if !templates[got] {
			t.Fatalf("feedback %q is not one of the templates", got)
		}
	}
}

func TestFeedbackVoiceRemark(t *testing.T) {
	g := NewFeedbackGenerator(rand.New(rand.NewSource(2)))

	got := g.Feedback("some answer", true)
	if !strings.HasSuffix(got, voiceRemark) {
		t.Errorf("voice feedback %q missing speech remark", got)
	}

	got = g.Feedback("some answer", false)
	if strings.Contains(got, voiceRemark) {
		t.Errorf("text feedback %q should not carry the speech remark", got)
	}
}
