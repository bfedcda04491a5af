package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"learntendo/internal/domain"
	"learntendo/internal/extractor"
	"learntendo/internal/normalizer"
	"learntendo/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const exampleReply = `[{
  "questionNumber": 1,
  "question": "What is the capital of France?",
  "options": ["Paris", "London", "Berlin", "Madrid"],
  "correctAnswer": "Paris",
  "explanation": "Paris is the capital of France."
}]`

// MockGenerator is a mock implementation of domain.QuestionGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// generatorFunc adapts a function to domain.QuestionGenerator for
// tests that need per-request behavior.
type generatorFunc func(ctx context.Context, prompt string) (string, error)

func (f generatorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

func newTestService(t *testing.T, gen domain.QuestionGenerator) (QuizService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, zap.NewNop())
	require.NoError(t, err)
	svc := NewQuizService(
		gen,
		extractor.New(zap.NewNop()),
		store,
		normalizer.New(zap.NewNop()),
		5*time.Second,
		zap.NewNop(),
	)
	return svc, dir
}

func textRequest(text string) *domain.GenerationRequest {
	return &domain.GenerationRequest{
		SourceType:      domain.SourceTypeText,
		RawText:         text,
		NumOfQuestions:  1,
		DifficultyLevel: "easy",
		TypeOfQuestions: "MCQ",
		Language:        "English",
	}
}

func fileRequest(name, content string) *domain.GenerationRequest {
	return &domain.GenerationRequest{
		SourceType:      domain.SourceTypeFile,
		Upload:          &domain.UploadedDocument{Filename: name, Content: strings.NewReader(content)},
		NumOfQuestions:  2,
		DifficultyLevel: "hard",
		TypeOfQuestions: "MCQ",
	}
}

func assertDomainCode(t *testing.T, err error, code domain.ErrorCode) {
	t.Helper()
	var derr *domain.DomainError
	require.True(t, errors.As(err, &derr), "expected domain error, got %v", err)
	assert.Equal(t, code, derr.Code)
}

func dirIsEmpty(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "transient files left behind")
}

func TestGenerateQuestionsFromText(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "Paris is the capital of France.")
	})).Return(exampleReply, nil)

	svc, _ := newTestService(t, gen)
	records, err := svc.GenerateQuestions(context.Background(), textRequest("Paris is the capital of France."))

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "What is the capital of France?", records[0].Question)
	assert.Equal(t, "Paris", records[0].CorrectAnswer)
	gen.AssertExpectations(t)
}

func TestGenerateQuestionsEmptyTextRejectedBeforeGeneration(t *testing.T) {
	gen := new(MockGenerator)
	svc, _ := newTestService(t, gen)

	_, err := svc.GenerateQuestions(context.Background(), textRequest("   \n\t"))
	assertDomainCode(t, err, domain.CodeInvalidInput)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateQuestionsRejectsBothSources(t *testing.T) {
	gen := new(MockGenerator)
	svc, _ := newTestService(t, gen)

	req := textRequest("some text")
	req.Upload = &domain.UploadedDocument{Filename: "also.txt", Content: strings.NewReader("conflict")}

	_, err := svc.GenerateQuestions(context.Background(), req)
	assertDomainCode(t, err, domain.CodeInvalidInput)
	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerateQuestionsRejectsFileSourceWithoutUpload(t *testing.T) {
	gen := new(MockGenerator)
	svc, _ := newTestService(t, gen)

	req := fileRequest("x.txt", "ignored")
	req.Upload = nil

	_, err := svc.GenerateQuestions(context.Background(), req)
	assertDomainCode(t, err, domain.CodeInvalidInput)
}

func TestGenerateQuestionsRejectsUnknownSourceType(t *testing.T) {
	gen := new(MockGenerator)
	svc, _ := newTestService(t, gen)

	req := textRequest("text")
	req.SourceType = domain.SourceType("CARRIER_PIGEON")

	_, err := svc.GenerateQuestions(context.Background(), req)
	assertDomainCode(t, err, domain.CodeInvalidInput)
}

func TestGenerateQuestionsFromFile(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.MatchedBy(func(p string) bool {
		return strings.Contains(p, "The Nile is the longest river in Africa.")
	})).Return(exampleReply, nil)

	svc, dir := newTestService(t, gen)
	records, err := svc.GenerateQuestions(context.Background(),
		fileRequest("geography.txt", "The Nile is the longest river in Africa."))

	require.NoError(t, err)
	assert.Len(t, records, 1)
	gen.AssertExpectations(t)
	dirIsEmpty(t, dir)
}

func TestGenerateQuestionsUnextractableFileIsInputError(t *testing.T) {
	gen := new(MockGenerator)
	svc, dir := newTestService(t, gen)

	_, err := svc.GenerateQuestions(context.Background(), fileRequest("photo.png", "\x89PNG"))
	assertDomainCode(t, err, domain.CodeInvalidInput)
	assert.ErrorContains(t, err, "Could not extract text")

	gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	dirIsEmpty(t, dir)
}

func TestGenerateQuestionsUpstreamFailureCleansUpFile(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("", errors.New("connection reset"))

	svc, dir := newTestService(t, gen)
	_, err := svc.GenerateQuestions(context.Background(), fileRequest("doc.txt", "content to quiz"))

	assertDomainCode(t, err, domain.CodeLLMServiceError)
	dirIsEmpty(t, dir)
}

func TestGenerateQuestionsTimeoutIsUpstreamError(t *testing.T) {
	slow := generatorFunc(func(ctx context.Context, _ string) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	})

	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, zap.NewNop())
	require.NoError(t, err)
	svc := NewQuizService(slow, extractor.New(zap.NewNop()), store,
		normalizer.New(zap.NewNop()), 20*time.Millisecond, zap.NewNop())

	_, err = svc.GenerateQuestions(context.Background(), fileRequest("slow.txt", "some content"))
	assertDomainCode(t, err, domain.CodeLLMServiceError)
	dirIsEmpty(t, dir)
}

func TestGenerateQuestionsUnparsableReplyIsParseError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).Return("I could not produce JSON, sorry!", nil)

	svc, _ := newTestService(t, gen)
	_, err := svc.GenerateQuestions(context.Background(), textRequest("source"))
	assertDomainCode(t, err, domain.CodeParseError)
}

func TestGenerateQuestionsInvalidRecordIsValidationError(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(`[{"questionNumber": 1, "options": ["a"], "correctAnswer": "a"}]`, nil)

	svc, _ := newTestService(t, gen)
	_, err := svc.GenerateQuestions(context.Background(), textRequest("source"))
	assertDomainCode(t, err, domain.CodeValidation)
}

func TestConcurrentUploadsWithSameFilenameStayIsolated(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStore(dir, zap.NewNop())
	require.NoError(t, err)

	newSvc := func(prompts *string) QuizService {
		gen := generatorFunc(func(_ context.Context, p string) (string, error) {
			*prompts = p
			return exampleReply, nil
		})
		return NewQuizService(gen, extractor.New(zap.NewNop()), store,
			normalizer.New(zap.NewNop()), 5*time.Second, zap.NewNop())
	}

	var promptA, promptB string
	svcA := newSvc(&promptA)
	svcB := newSvc(&promptB)

	var g errgroup.Group
	g.Go(func() error {
		_, err := svcA.GenerateQuestions(context.Background(), fileRequest("shared.txt", "alpha body only"))
		return err
	})
	g.Go(func() error {
		_, err := svcB.GenerateQuestions(context.Background(), fileRequest("shared.txt", "bravo body only"))
		return err
	})
	require.NoError(t, g.Wait())

	assert.Contains(t, promptA, "alpha body only")
	assert.NotContains(t, promptA, "bravo body only")
	assert.Contains(t, promptB, "bravo body only")
	assert.NotContains(t, promptB, "alpha body only")
	dirIsEmpty(t, dir)
}
