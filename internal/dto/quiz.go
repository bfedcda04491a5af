package dto

import "learntendo/internal/domain"

// GenerateQuestionsResponse is the success envelope for question
// generation. The record objects are emitted exactly as validated.
type GenerateQuestionsResponse struct {
	QuestionData []domain.QuestionRecord `json:"questionData"`
}

// ErrorResponse is the error envelope shared by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ChatRequest is one turn of a tutor conversation. SessionID is empty
// on the first turn; the response echoes back the identifier to use on
// subsequent turns.
type ChatRequest struct {
	UserInput string `json:"user_input"`
	SessionID string `json:"session_id"`
}

// ChatResponse carries the tutor's reply for one turn.
type ChatResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// TTSRequest asks for one synthesized utterance.
type TTSRequest struct {
	Text string `json:"text"`
}
