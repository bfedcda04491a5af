package service

import (
	"context"
	"strings"
	"time"

	"learntendo/internal/domain"
	"learntendo/internal/normalizer"
	"learntendo/internal/prompt"

	"go.uber.org/zap"
)

// Messages surfaced to callers for the two input-stage failures.
const (
	MsgInvalidInput     = "Invalid input. Provide either text or a valid file."
	MsgExtractionFailed = "Could not extract text from the file. Ensure it's a readable PDF, DOCX, PPTX, or TXT."
)

// QuizService runs the document-to-questions pipeline.
type QuizService interface {
	GenerateQuestions(ctx context.Context, req *domain.GenerationRequest) ([]domain.QuestionRecord, error)
}

type quizService struct {
	generator  domain.QuestionGenerator
	extractor  domain.TextExtractor
	store      domain.UploadStore
	normalizer *normalizer.Normalizer
	genTimeout time.Duration
	logger     *zap.Logger
}

func NewQuizService(
	generator domain.QuestionGenerator,
	extractor domain.TextExtractor,
	store domain.UploadStore,
	norm *normalizer.Normalizer,
	genTimeout time.Duration,
	logger *zap.Logger,
) QuizService {
	return &quizService{
		generator:  generator,
		extractor:  extractor,
		store:      store,
		normalizer: norm,
		genTimeout: genTimeout,
		logger:     logger,
	}
}

// GenerateQuestions runs the pipeline: resolve the source text, build
// the prompt, call the model, normalize the reply.
// Every stage failure surfaces as exactly one domain error;
// nothing is retried and no partial list is ever returned.
func (s *quizService) GenerateQuestions(ctx context.Context, req *domain.GenerationRequest) ([]domain.QuestionRecord, error) {
	sourceText, err := s.sourceText(req)
	if err != nil {
		return nil, err
	}

	promptText := prompt.Build(req, sourceText)
	s.logger.Debug("built generation prompt",
		zap.Int("prompt_len", len(promptText)),
		zap.Int("num_questions", req.NumOfQuestions),
		zap.String("language", req.NormalizedLanguage()),
	)

	genCtx, cancel := context.WithTimeout(ctx, s.genTimeout)
	defer cancel()

	start := time.Now()
	reply, err := s.generator.Generate(genCtx, promptText)
	if err != nil {
		s.logger.Error("generation call failed",
			zap.Error(err),
			zap.Duration("elapsed", time.Since(start)),
		)
		return nil, domain.NewLLMServiceError(err)
	}
	s.logger.Info("generation call completed",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("reply_len", len(reply)),
	)

	records, err := s.normalizer.Normalize(reply, req.NumOfQuestions)
	if err != nil {
		return nil, err
	}

	s.logger.Info("questions generated", zap.Int("count", len(records)))
	return records, nil
}

// sourceText resolves the request to non-empty plain text, enforcing
// that exactly one source was supplied. For FILE sources the uploaded
// bytes pass through the transient store and are deleted before this
// function returns, whatever happens afterwards.
func (s *quizService) sourceText(req *domain.GenerationRequest) (string, error) {
	switch req.SourceType {
	case domain.SourceTypeText:
		if req.Upload != nil {
			return "", domain.NewInvalidInputError(MsgInvalidInput)
		}
		if strings.TrimSpace(req.RawText) == "" {
			return "", domain.NewInvalidInputError(MsgInvalidInput)
		}
		return req.RawText, nil

	case domain.SourceTypeFile:
		if req.Upload == nil || strings.TrimSpace(req.RawText) != "" {
			return "", domain.NewInvalidInputError(MsgInvalidInput)
		}

		path, err := s.store.Save(req.Upload.Filename, req.Upload.Content)
		if err != nil {
			return "", domain.NewInternalError("failed to store uploaded document", err)
		}
		defer func() {
			if rmErr := s.store.Remove(path); rmErr != nil {
				s.logger.Warn("transient file not removed", zap.String("path", path), zap.Error(rmErr))
			}
		}()

		text := s.extractor.Extract(path)
		if strings.TrimSpace(text) == "" {
			return "", domain.NewInvalidInputError(MsgExtractionFailed)
		}
		return text, nil

	default:
		return "", domain.NewInvalidInputError(MsgInvalidInput)
	}
}
