// Package normalizer turns the model's free-form reply into validated
// question records. The reply may arrive wrapped in markdown fences,
// with missing fields, or as outright invalid JSON. Normalization is
// all-or-nothing: either every record validates or the batch fails.
package normalizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"learntendo/internal/domain"

	"go.uber.org/zap"
)

// FallbackExplanation replaces a missing, non-string, or blank
// explanation. It is the only field repaired rather than rejected.
const FallbackExplanation = "Explanation not provided by the AI."

// fenceRE matches a reply wholly wrapped in one markdown code fence,
// optionally tagged (```json). Anchored to both ends on purpose: a
// fence-like substring mid-text must be left untouched.
var fenceRE = regexp.MustCompile("(?s)\\A```[a-zA-Z0-9]*[ \t]*\r?\n?(.*?)\r?\n?```[ \t]*\\z")

type Normalizer struct {
	logger          *zap.Logger
	answerInOptions bool
}

type Option func(*Normalizer)

// WithAnswerInOptions enables the opt-in check that correctAnswer
// equals one of the options. Off by default: the upstream model is not
// held to it, and callers who want the guarantee must ask for it.
func WithAnswerInOptions() Option {
	return func(n *Normalizer) {
		n.answerInOptions = true
	}
}

func New(logger *zap.Logger, opts ...Option) *Normalizer {
	n := &Normalizer{logger: logger}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// rawRecord uses pointers so an absent field is distinguishable from a
// zero value, and raw JSON for explanation so a non-string one can be
// repaired instead of failing the parse.
type rawRecord struct {
	QuestionNumber *int            `json:"questionNumber"`
	Question       *string         `json:"question"`
	Options        []string        `json:"options"`
	CorrectAnswer  *string         `json:"correctAnswer"`
	Explanation    json.RawMessage `json:"explanation"`
}

// Normalize parses the reply into question records. expectedCount is
// advisory: a mismatch is logged, never failed, because the upstream
// contract does not reconcile requested and returned counts.
func (n *Normalizer) Normalize(reply string, expectedCount int) ([]domain.QuestionRecord, error) {
	body := stripFence(reply)

	var elements []json.RawMessage
	if err := json.Unmarshal([]byte(body), &elements); err != nil {
		n.logger.Warn("model reply is not a JSON array",
			zap.Error(err),
			zap.Int("reply_len", len(reply)),
		)
		return nil, domain.NewParseError(err)
	}

	records := make([]domain.QuestionRecord, 0, len(elements))
	for i, element := range elements {
		var raw rawRecord
		if err := json.Unmarshal(element, &raw); err != nil {
			return nil, domain.NewError(domain.CodeValidation,
				fmt.Sprintf("question record %d is malformed", i+1), err)
		}

		if missing := missingField(&raw); missing != "" {
			return nil, domain.NewError(domain.CodeValidation,
				fmt.Sprintf("question record %d is missing required field %q", i+1, missing), nil)
		}

		record := domain.QuestionRecord{
			QuestionNumber: *raw.QuestionNumber,
			Question:       *raw.Question,
			Options:        raw.Options,
			CorrectAnswer:  *raw.CorrectAnswer,
			Explanation:    explanationOrFallback(raw.Explanation),
		}

		if n.answerInOptions && !contains(record.Options, record.CorrectAnswer) {
			return nil, domain.NewError(domain.CodeValidation,
				fmt.Sprintf("question record %d has a correctAnswer that is not one of its options", i+1), nil)
		}

		records = append(records, record)
	}

	if expectedCount > 0 && len(records) != expectedCount {
		n.logger.Warn("model returned a different number of questions than requested",
			zap.Int("requested", expectedCount),
			zap.Int("returned", len(records)),
		)
	}

	return records, nil
}

// stripFence removes one leading and one trailing markdown code fence
// when the whole reply is wrapped in them.
func stripFence(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if m := fenceRE.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}

func missingField(raw *rawRecord) string {
	switch {
	case raw.QuestionNumber == nil:
		return "questionNumber"
	case raw.Question == nil || strings.TrimSpace(*raw.Question) == "":
		return "question"
	case raw.Options == nil:
		return "options"
	case raw.CorrectAnswer == nil:
		return "correctAnswer"
	}
	return ""
}

func explanationOrFallback(raw json.RawMessage) string {
	if len(raw) == 0 {
		return FallbackExplanation
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		// Present but not a string; repair rather than reject.
		return FallbackExplanation
	}
	if strings.TrimSpace(s) == "" {
		return FallbackExplanation
	}
	return s
}

func contains(options []string, answer string) bool {
	for _, o := range options {
		if o == answer {
			return true
		}
	}
	return false
}
