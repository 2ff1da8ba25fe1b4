package interview

import "fmt"

const speechAnalysisRemark = "\n\nSpeech Analysis: Your response was clear and well-paced. Try to minimize filler words like \"um\" and \"uh\" for better impact."

func firstQuestionPrompt(jobRole string) string {
	return fmt.Sprintf(`You are an experienced interviewer conducting a professional job interview for a %s position.

Your task:
1. Ask ONE well-crafted, relevant interview question
2. Make it appropriate for the %s role
3. Keep it professional and engaging
4. Don't provide instructions - just ask the question

Ask the first question now:`, jobRole, jobRole)
}

// turnPrompt asks for the two-section FEEDBACK / NEXT QUESTION reply that
// ParseReply consumes.
func turnPrompt(jobRole, question, answer string, isVoice bool) string {
	prompt := fmt.Sprintf(`As an experienced interviewer for a %s position, analyze this response and continue the interview.

Question: %s
Answer: %s

Provide:
1. Constructive feedback on the answer (2-3 sentences)
2. One follow-up question that's relevant to %s

Format:
FEEDBACK: [your feedback]
NEXT QUESTION: [your next question]`, jobRole, question, answer, jobRole)
	if isVoice {
		prompt += speechAnalysisRemark
	}
	return prompt
}

// finalTurnPrompt requests consolidated feedback; the whole reply becomes
// the last feedback entry.
func finalTurnPrompt(jobRole, question, answer string, isVoice bool) string {
	prompt := fmt.Sprintf(`As an experienced interviewer, provide final feedback for this %s interview.

Question: %s
Answer: %s

Provide:
1. Specific feedback on this answer (strengths and areas for improvement)
2. Overall interview summary
3. Final recommendations for the candidate

Format your response professionally.`, jobRole, question, answer)
	if isVoice {
		prompt += speechAnalysisRemark
	}
	return prompt
}
