// Package prompt assembles the generation request sent to the model.
// The entire contract with the model (output schema, formatting rules,
// language) is carried inside this text; nothing is negotiated through
// structured API parameters.
package prompt

import (
	"fmt"
	"strings"

	"learntendo/internal/domain"
)

const schemaExample = `[{
  "questionNumber": 1,
  "question": "What is the capital of France?",
  "options": ["Paris", "London", "Berlin", "Madrid"],
  "correctAnswer": "Paris",
  "explanation": "Paris is the capital of France."
}]`

// arabicExample anchors formatting for the right-to-left case: models
// drift back to English field values without a worked example in the
// target language.
const arabicExample = `[{
  "questionNumber": 1,
  "question": "ما هي عاصمة فرنسا؟",
  "options": ["باريس", "لندن", "برلين", "مدريد"],
  "correctAnswer": "باريس",
  "explanation": "باريس هي عاصمة فرنسا."
}]`

// Build produces the full instruction block for one generation request.
// It is a pure function; it never calls the model.
func Build(req *domain.GenerationRequest, sourceText string) string {
	language := req.NormalizedLanguage()

	var b strings.Builder
	fmt.Fprintf(&b, "Generate %d %s %s questions in %s based on this text:\n\n",
		req.NumOfQuestions, req.DifficultyLevel, req.TypeOfQuestions, language)
	b.WriteString(sourceText)
	b.WriteString("\n\n")

	b.WriteString("Provide the response as a JSON array, following this structure:\n\n")
	b.WriteString(schemaExample)
	b.WriteString("\n\n")

	b.WriteString("Follow this schema in every record:\n")
	b.WriteString("    questionNumber: integer\n")
	b.WriteString("    question: string\n")
	b.WriteString("    options: list of strings\n")
	b.WriteString("    correctAnswer: string\n")
	b.WriteString("    explanation: non-empty string\n")
	b.WriteString(`In true and false questions provide the options as exactly "options": ["True","False"].` + "\n")

	if !strings.EqualFold(language, domain.DefaultLanguage) {
		fmt.Fprintf(&b, "Translate everything (questions, options, correct answers and explanations) fully into %s.\n", language)
		if strings.EqualFold(language, "Arabic") {
			b.WriteString("Format every record exactly like this worked example:\n")
			b.WriteString(arabicExample)
			b.WriteString("\n")
		}
	}

	b.WriteString("Only return valid JSON without extra explanation or Markdown.\n")
	return b.String()
}
