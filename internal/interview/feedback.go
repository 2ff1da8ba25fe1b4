package interview

import (
	"math/rand"
	"sync"
	"time"
)

var feedbackTemplates = []string{
	"Good response! Your answer shows relevant experience. Try to provide more specific examples to strengthen your response.",
	"Well articulated! You demonstrated good knowledge. Consider elaborating on the impact of your actions.",
	"Nice answer! You covered the key points. Adding quantifiable results would make your response even stronger.",
	"Solid response! Your experience is relevant. Try to structure your answer using the STAR method (Situation, Task, Action, Result).",
	"Great insight! Your answer shows good understanding. Consider providing a brief example to illustrate your point.",
}

const voiceRemark = " Your speech was clear and confident. Remember to pause briefly between points for better emphasis."

// FeedbackGenerator produces templated feedback for the non-AI path. The
// template choice is uniformly random and independent of the answer text.
type FeedbackGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFeedbackGenerator builds a generator around the given randomness
// source; pass nil for a time-seeded one.
func NewFeedbackGenerator(rng *rand.Rand) *FeedbackGenerator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &FeedbackGenerator{rng: rng}
}

// Feedback picks a template and, for voice answers, appends the fixed
// speech-delivery remark. It never fails.
func (g *FeedbackGenerator) Feedback(answer string, isVoice bool) string {
	g.mu.Lock()
	feedback := feedbackTemplates[g.rng.Intn(len(feedbackTemplates))]
	g.mu.Unlock()

	if isVoice {
		feedback += voiceRemark
	}
	return feedback
}
