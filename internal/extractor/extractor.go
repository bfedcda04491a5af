// Package extractor turns documents of unknown format into plain text.
//
// Dispatch is by file extension (case-insensitive): pdf, docx, pptx and
// txt are supported; anything else yields an empty string. Empty output
// is the extraction-failure signal the pipeline consumes: parser
// errors are logged and degraded to "" rather than propagated, so a
// corrupt file and an unsupported one look the same upstream.
package extractor

import (
	"os"
	"path/filepath"
	"strings"

	"learntendo/internal/domain"

	"go.uber.org/zap"
)

type Extractor struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

var _ domain.TextExtractor = (*Extractor)(nil)

// Extract reads the document at path and returns its plain text, or ""
// when the format is unsupported or the file cannot be parsed.
func (e *Extractor) Extract(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	var (
		text string
		err  error
	)
	switch ext {
	case "pdf":
		text, err = extractPDF(path)
	case "docx":
		text, err = extractDOCX(path)
	case "pptx":
		text, err = extractPPTX(path)
	case "txt":
		var data []byte
		data, err = os.ReadFile(path)
		text = string(data)
	default:
		e.logger.Debug("unsupported document extension",
			zap.String("path", path),
			zap.String("ext", ext),
		)
		return ""
	}

	if err != nil {
		e.logger.Warn("failed to extract text from document",
			zap.String("path", path),
			zap.String("ext", ext),
			zap.Error(err),
		)
		return ""
	}
	return text
}
