package dto

import "time"

// QuestionResponse is the verse the user must recite.
type QuestionResponse struct {
	VerseID   string `json:"verse_id"`
	Reference string `json:"reference"`
}

// QuizSessionResponse represents a quiz session in the API response
// @Description Quiz session with its current question
type QuizSessionResponse struct {
	SessionID string            `json:"session_id"`
	State     string            `json:"state"`
	Question  *QuestionResponse `json:"question,omitempty"`
}

// AnswerRequest represents a user's answer in the API request
// @Description Request body for submitting a recitation
type AnswerRequest struct {
	Answer string `json:"answer"`
}

// AnswerResponse represents the grading result in the API response
type AnswerResponse struct {
	Score      float64 `json:"score"` // 0.0 ~ 1.0
	Tier       string  `json:"tier"`
	Message    string  `json:"message"`
	Reference  string  `json:"reference"`
	Correction string  `json:"correction,omitempty"` // verse text, shown unless excellent
}

// RevealResponse carries the full text of the current verse.
type RevealResponse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

type QuizAttemptResponse struct {
	ID          string    `json:"id"`
	VerseID     string    `json:"verse_id"`
	Reference   string    `json:"reference"`
	Answer      string    `json:"answer"`
	Score       float64   `json:"score"`
	Tier        string    `json:"tier"`
	AttemptedAt time.Time `json:"attempted_at"`
}

// QuizAttemptsResponse is a page of the user's attempt history.
type QuizAttemptsResponse struct {
	Attempts       []QuizAttemptResponse `json:"attempts"`
	PaginationInfo PaginationInfo        `json:"pagination_info"`
}
