package normalizer

import (
	"errors"
	"testing"

	"learntendo/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const validReply = `[
  {
    "questionNumber": 1,
    "question": "What is the capital of France?",
    "options": ["Paris", "London", "Berlin", "Madrid"],
    "correctAnswer": "Paris",
    "explanation": "Paris is the capital of France."
  }
]`

func domainCode(t *testing.T, err error) domain.ErrorCode {
	t.Helper()
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr), "expected a domain error, got %v", err)
	return derr.Code
}

func TestNormalizeValidReply(t *testing.T) {
	n := New(zap.NewNop())

	records, err := n.Normalize(validReply, 1)
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, 1, records[0].QuestionNumber)
	assert.Equal(t, "What is the capital of France?", records[0].Question)
	assert.Equal(t, []string{"Paris", "London", "Berlin", "Madrid"}, records[0].Options)
	assert.Equal(t, "Paris", records[0].CorrectAnswer)
	assert.Equal(t, "Paris is the capital of France.", records[0].Explanation)
}

func TestNormalizeStripsSurroundingFence(t *testing.T) {
	n := New(zap.NewNop())

	for name, reply := range map[string]string{
		"tagged":    "```json\n" + validReply + "\n```",
		"untagged":  "```\n" + validReply + "\n```",
		"padded":    "  \n```json\n" + validReply + "\n```  \n",
		"crlf":      "```json\r\n" + validReply + "\r\n```",
		"same_line": "```json" + validReply + "```",
	} {
		t.Run(name, func(t *testing.T) {
			records, err := n.Normalize(reply, 1)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "Paris", records[0].CorrectAnswer)
		})
	}
}

func TestNormalizeLeavesInteriorFenceAlone(t *testing.T) {
	n := New(zap.NewNop())

	// A fence-like substring inside a field value must survive intact.
	reply := `[{"questionNumber": 1, "question": "What does ` + "```" + ` start in markdown?", "options": ["A code fence", "A table"], "correctAnswer": "A code fence", "explanation": "Triple backticks open a code block."}]`

	records, err := n.Normalize(reply, 1)
	require.NoError(t, err)
	assert.Contains(t, records[0].Question, "```")
}

func TestNormalizeInvalidJSONIsParseError(t *testing.T) {
	n := New(zap.NewNop())

	for name, reply := range map[string]string{
		"prose":        "Sure! Here are your questions:",
		"truncated":    validReply[:40],
		"object":       `{"questionNumber": 1}`,
		"fenced_prose": "```json\nnot json at all\n```",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := n.Normalize(reply, 1)
			assert.Equal(t, domain.CodeParseError, domainCode(t, err))
		})
	}
}

func TestNormalizeFillsMissingExplanation(t *testing.T) {
	n := New(zap.NewNop())

	for name, explanation := range map[string]string{
		"absent":     ``,
		"null":       `, "explanation": null`,
		"empty":      `, "explanation": ""`,
		"blank":      `, "explanation": "   "`,
		"non_string": `, "explanation": 42`,
	} {
		t.Run(name, func(t *testing.T) {
			reply := `[{"questionNumber": 2, "question": "Q?", "options": ["a", "b"], "correctAnswer": "a"` + explanation + `}]`

			records, err := n.Normalize(reply, 1)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, FallbackExplanation, records[0].Explanation)

			// Repair must not touch the other fields.
			assert.Equal(t, 2, records[0].QuestionNumber)
			assert.Equal(t, "Q?", records[0].Question)
			assert.Equal(t, []string{"a", "b"}, records[0].Options)
			assert.Equal(t, "a", records[0].CorrectAnswer)
		})
	}
}

func TestNormalizeMissingFieldAbortsWholeBatch(t *testing.T) {
	n := New(zap.NewNop())

	good := `{"questionNumber": 1, "question": "Q1?", "options": ["a"], "correctAnswer": "a", "explanation": "e"}`
	for name, bad := range map[string]string{
		"no_question_number": `{"question": "Q2?", "options": ["a"], "correctAnswer": "a", "explanation": "e"}`,
		"no_question":        `{"questionNumber": 2, "options": ["a"], "correctAnswer": "a", "explanation": "e"}`,
		"blank_question":     `{"questionNumber": 2, "question": "  ", "options": ["a"], "correctAnswer": "a", "explanation": "e"}`,
		"no_options":         `{"questionNumber": 2, "question": "Q2?", "correctAnswer": "a", "explanation": "e"}`,
		"no_correct_answer":  `{"questionNumber": 2, "question": "Q2?", "options": ["a"], "explanation": "e"}`,
	} {
		t.Run(name, func(t *testing.T) {
			records, err := n.Normalize(`[`+good+`,`+bad+`]`, 2)
			assert.Equal(t, domain.CodeValidation, domainCode(t, err))
			assert.Nil(t, records, "no partial list on validation failure")
		})
	}
}

func TestNormalizePreservesOrderAndNumbering(t *testing.T) {
	n := New(zap.NewNop())

	// Out-of-sequence and duplicated numbers pass through untouched.
	reply := `[
	  {"questionNumber": 3, "question": "Q-first?", "options": ["x"], "correctAnswer": "x", "explanation": "e"},
	  {"questionNumber": 3, "question": "Q-second?", "options": ["y"], "correctAnswer": "y", "explanation": "e"},
	  {"questionNumber": 1, "question": "Q-third?", "options": ["z"], "correctAnswer": "z", "explanation": "e"}
	]`

	records, err := n.Normalize(reply, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []int{3, 3, 1}, []int{records[0].QuestionNumber, records[1].QuestionNumber, records[2].QuestionNumber})
	assert.Equal(t, "Q-first?", records[0].Question)
	assert.Equal(t, "Q-third?", records[2].Question)
}

func TestNormalizeTrueFalseOptionsPassThrough(t *testing.T) {
	n := New(zap.NewNop())

	reply := `[{"questionNumber": 1, "question": "The sky is green.", "options": ["True", "False"], "correctAnswer": "False", "explanation": "The sky is blue."}]`

	records, err := n.Normalize(reply, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"True", "False"}, records[0].Options)
}

func TestNormalizeCountMismatchIsNotAnError(t *testing.T) {
	n := New(zap.NewNop())

	records, err := n.Normalize(validReply, 5)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestNormalizeAnswerInOptionsHook(t *testing.T) {
	reply := `[{"questionNumber": 1, "question": "Q?", "options": ["a", "b"], "correctAnswer": "c", "explanation": "e"}]`

	// Default: membership is not enforced.
	records, err := New(zap.NewNop()).Normalize(reply, 1)
	require.NoError(t, err)
	assert.Equal(t, "c", records[0].CorrectAnswer)

	// Opt-in: it is.
	_, err = New(zap.NewNop(), WithAnswerInOptions()).Normalize(reply, 1)
	assert.Equal(t, domain.CodeValidation, domainCode(t, err))
}

func TestStripFence(t *testing.T) {
	assert.Equal(t, `[1]`, stripFence("```json\n[1]\n```"))
	assert.Equal(t, `[1]`, stripFence("[1]"))
	assert.Equal(t, "a ``` b", stripFence("a ``` b"))
	assert.Equal(t, "```json\n[1]", stripFence("```json\n[1]"))
}
