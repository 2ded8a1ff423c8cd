package quiz

// drawQuestionMsg asks the quiz screen to draw a fresh question.
type drawQuestionMsg struct{}
