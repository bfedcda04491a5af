package domain

import (
	"io"
	"strings"
)

// SourceType tells the pipeline where the source text comes from.
type SourceType string

const (
	SourceTypeText SourceType = "TEXT"
	SourceTypeFile SourceType = "FILE"
)

// DefaultLanguage is used when the caller does not specify one.
const DefaultLanguage = "English"

// UploadedDocument is the transient byte stream a FILE request carries.
// It is owned by the orchestrator for the duration of one request.
type UploadedDocument struct {
	Filename string
	Content  io.Reader
}

// GenerationRequest holds the inputs of one question-generation run.
// DifficultyLevel and TypeOfQuestions are free-form labels and are
// passed to the model verbatim, never validated against a closed set.
type GenerationRequest struct {
	SourceType      SourceType
	RawText         string
	Upload          *UploadedDocument
	NumOfQuestions  int
	DifficultyLevel string
	TypeOfQuestions string
	Language        string
}

// NormalizedLanguage returns the requested language, defaulting to English.
func (r *GenerationRequest) NormalizedLanguage() string {
	if strings.TrimSpace(r.Language) == "" {
		return DefaultLanguage
	}
	return r.Language
}

// QuestionRecord is one generated quiz item. Records are created by the
// normalizer and never mutated afterwards. QuestionNumber sequence and
// CorrectAnswer membership in Options are caller-observable but not
// enforced here.
type QuestionRecord struct {
	QuestionNumber int      `json:"questionNumber"`
	Question       string   `json:"question"`
	Options        []string `json:"options"`
	CorrectAnswer  string   `json:"correctAnswer"`
	Explanation    string   `json:"explanation"`
}

// ChatMessage is one turn of a tutor chat session.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	ChatRoleUser  = "user"
	ChatRoleModel = "model"
)
