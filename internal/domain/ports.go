package domain

import (
	"context"
	"io"
)

// QuestionGenerator is the port to the external text-generation
// service. It takes one finished prompt and returns the model's raw
// textual reply. Implementations make a single attempt; retrying is
// the caller's decision, not the client's.
type QuestionGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatModel is the multi-turn counterpart used by the tutor chat.
type ChatModel interface {
	Converse(ctx context.Context, system string, history []ChatMessage, input string) (string, error)
}

// TextExtractor produces plain text from a stored document. An empty
// string is the extraction-failure signal; Extract never returns an
// error regardless of cause (unsupported format, corrupt file, parser
// crash).
type TextExtractor interface {
	Extract(path string) string
}

// UploadStore is the transient storage an uploaded document passes
// through: written once, read once by the extractor, then deleted
// before the response is produced. Save must key the file uniquely per
// request so concurrent uploads of identically named files cannot
// collide.
type UploadStore interface {
	Save(filename string, content io.Reader) (string, error)
	Remove(path string) error
}
